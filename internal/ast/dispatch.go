package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// Recognize classifies a generic form by its head and runs the matching
// validator. Forms headed by a bare symbol are applications.
func Recognize(f *parser.Form) (SemanticForm, *diag.Error) {
	head := f.HeadToken()
	if head.Kind == token.Keyword {
		switch f.Name() {
		case "type":
			return NewTypeForm(f)
		case "types":
			return NewTypesForm(f)
		case "sig":
			return SigFromForm(f)
		case "fun":
			return NewFunForm(f)
		case token.Wildcard:
			return NewAnonFunForm(f)
		case "prim":
			return PrimFromForm(f)
		case "sum":
			return SumFromForm(f)
		case "prod":
			return NewProdDefForm(f)
		case "let":
			return NewLetForm(f)
		case "def":
			return NewDefForm(f)
		case "case":
			return NewCaseForm(f)
		case "of":
			return NewBranchForm(f)
		case "attrs":
			return AttrsFromForm(f)
		case "export":
			return NewExportForm(f)
		case "import":
			return NewImportForm(f)
		}
		if token.IsTypeKeyword(f.Name()) {
			return NewTypeAppForm(f)
		}
		return nil, diag.Semantic(head.Loc(), "keyword %q cannot start a form", f.Name())
	}
	return NewAppForm(f)
}
