package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// ExportForm lists the names a file makes visible to other modules:
// (export (prod A b)) or (export ()). Symbols are classified into type and
// value buckets by lexical category, preserving order within each bucket.
type ExportForm struct {
	origin
	TypeNames  []token.Token
	ValueNames []token.Token
}

// NewExportForm validates an (export ...) form.
func NewExportForm(f *parser.Form) (*ExportForm, *diag.Error) {
	if err := headKeyword(f, "export"); err != nil {
		return nil, err
	}
	if f.Len() < 1 {
		return nil, missingElem(f, "a symbol product or the empty literal")
	}
	if f.Len() > 1 {
		return nil, extraElem(f, f.At(1))
	}
	exp := &ExportForm{origin: origin{form: f}}
	types, values, err := classifiedSymbols(f.At(0))
	if err != nil {
		return nil, err
	}
	exp.TypeNames, exp.ValueNames = types, values
	return exp, nil
}

// ImportForm pulls names from another module into this file:
// (import mod (prod f G)) or (import mod ()).
type ImportForm struct {
	origin
	Module     token.Token
	TypeNames  []token.Token
	ValueNames []token.Token
}

// NewImportForm validates an (import ...) form.
func NewImportForm(f *parser.Form) (*ImportForm, *diag.Error) {
	if err := headKeyword(f, "import"); err != nil {
		return nil, err
	}
	if f.Len() < 1 {
		return nil, missingElem(f, "a module name")
	}
	modLeaf, ok := f.At(0).(parser.Leaf)
	if !ok || modLeaf.Tok.Kind != token.ValueSymbol {
		return nil, diag.Semantic(f.At(0).Loc(), "module name must be an unqualified value symbol, got %q", f.At(0).String())
	}
	if f.Len() < 2 {
		return nil, missingElem(f, "a symbol product or the empty literal")
	}
	if f.Len() > 2 {
		return nil, extraElem(f, f.At(2))
	}
	imp := &ImportForm{origin: origin{form: f}, Module: modLeaf.Tok}
	types, values, err := classifiedSymbols(f.At(1))
	if err != nil {
		return nil, err
	}
	imp.TypeNames, imp.ValueNames = types, values
	return imp, nil
}

// classifiedSymbols accepts a symbol product or the empty literal and splits
// the symbols into type and value buckets. Exported and imported names must
// be unqualified and must not collide with a reserved keyword.
func classifiedSymbols(n parser.Node) (types, values []token.Token, err *diag.Error) {
	if leaf, ok := n.(parser.Leaf); ok {
		if leaf.Tok.Kind == token.EmptyLiteral {
			return nil, nil, nil
		}
		return nil, nil, diag.Semantic(leaf.Loc(), "expected a symbol product or the empty literal, got %q", leaf.String())
	}
	prodForm, ok := n.(*parser.Form)
	if !ok {
		return nil, nil, diag.Semantic(n.Loc(), "expected a symbol product or the empty literal")
	}
	if herr := headKeyword(prodForm, "prod"); herr != nil {
		return nil, nil, herr
	}
	if prodForm.Len() == 0 {
		return nil, nil, missingElem(prodForm, "at least one symbol")
	}
	for _, item := range prodForm.Items {
		leaf, ok := item.(parser.Leaf)
		if !ok {
			return nil, nil, diag.Semantic(item.Loc(), "expected a symbol, got %q", item.String())
		}
		sym := leaf.Tok
		if sym.Kind == token.Keyword {
			return nil, nil, diag.Semantic(sym.Loc(), "name %q collides with a reserved keyword", sym.Text())
		}
		if sym.Kind == token.PathSymbol {
			return nil, nil, diag.Semantic(sym.Loc(), "name must be unqualified, got %q", sym.Text())
		}
		switch sym.Kind {
		case token.TypeSymbol:
			types = append(types, sym)
		case token.ValueSymbol:
			values = append(values, sym)
		default:
			return nil, nil, diag.Semantic(sym.Loc(), "expected a symbol, got %q", sym.Text())
		}
	}
	return types, values, nil
}
