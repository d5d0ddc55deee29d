package driver

import (
	"larch/internal/ast"
	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/parser"
	"larch/internal/source"
	"larch/internal/symbols"
	"larch/internal/token"
)

// TokenizeFile loads and tokenizes a single file. Load failures come back as
// IO errors, lexical failures as Syntax errors.
func TokenizeFile(fs *source.FileSet, path string) (token.Stream, *diag.Error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, diag.IO(path, err)
	}
	return lexer.NewFromFile(fs.Get(id)).Lex()
}

// ParseFile loads, tokenizes, and parses a single file into generic forms.
// Trivia is filtered before parsing.
func ParseFile(fs *source.FileSet, path string) ([]*parser.Form, *diag.Error) {
	stream, err := TokenizeFile(fs, path)
	if err != nil {
		return nil, err
	}
	return parser.ParseUnit(stream.FilterTrivia())
}

// CheckResult is the full front-end output for one file: the recognized
// semantic forms and the symbol table indexed over them.
type CheckResult struct {
	Path  string
	Forms []ast.SemanticForm
	Table *symbols.Table
}

// CheckFile runs the whole front end over a single file: tokenize, parse,
// recognize every form, and build the file's symbol table. The first error
// of any stage stops the run.
func CheckFile(fs *source.FileSet, path string) (*CheckResult, *diag.Error) {
	forms, err := ParseFile(fs, path)
	if err != nil {
		return nil, err
	}
	return checkForms(path, forms)
}

// CheckSource runs the front end over in-memory content, for tests and stdin.
func CheckSource(fs *source.FileSet, name string, content []byte) (*CheckResult, *diag.Error) {
	id := fs.AddVirtual(name, content)
	stream, err := lexer.NewFromFile(fs.Get(id)).Lex()
	if err != nil {
		return nil, err
	}
	forms, err := parser.ParseUnit(stream.FilterTrivia())
	if err != nil {
		return nil, err
	}
	return checkForms(name, forms)
}

func checkForms(path string, forms []*parser.Form) (*CheckResult, *diag.Error) {
	result := &CheckResult{Path: path}
	builder := symbols.NewBuilder(path)
	for _, f := range forms {
		node, err := ast.Recognize(f)
		if err != nil {
			return nil, err
		}
		result.Forms = append(result.Forms, node)
		builder.Add(node)
	}
	result.Table = builder.Table()
	return result, nil
}
