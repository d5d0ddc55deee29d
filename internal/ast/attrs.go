package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// AttrsForm binds a name to a product of attribute symbols:
// (attrs x (prod attr1 attr2)).
type AttrsForm struct {
	origin
	Name  token.Token
	Attrs []token.Token
}

// NewAttrsForm validates an (attrs ...) form with a proper name.
func NewAttrsForm(f *parser.Form) (*AttrsForm, *diag.Error) {
	name, attrs, err := attrsParts(f)
	if err != nil {
		return nil, err
	}
	if name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "attrs form with a wildcard name is anonymous")
	}
	if !name.IsValueCategory() || name.Kind == token.PathSymbol {
		return nil, diag.Semantic(name.Loc(), "attrs name must be an unqualified value symbol, got %q", name.Text())
	}
	return &AttrsForm{origin: origin{form: f}, Name: name, Attrs: attrs}, nil
}

// AnonAttrsForm is the wildcard-named counterpart: (attrs _ (prod inline)).
type AnonAttrsForm struct {
	origin
	Attrs []token.Token
}

// NewAnonAttrsForm validates an (attrs _ ...) form.
func NewAnonAttrsForm(f *parser.Form) (*AnonAttrsForm, *diag.Error) {
	name, attrs, err := attrsParts(f)
	if err != nil {
		return nil, err
	}
	if !name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "anonymous attrs form requires the wildcard name, got %q", name.Text())
	}
	return &AnonAttrsForm{origin: origin{form: f}, Attrs: attrs}, nil
}

// AttrsFromForm dispatches between the named and anonymous attrs variants.
func AttrsFromForm(f *parser.Form) (SemanticForm, *diag.Error) {
	if err := headKeyword(f, "attrs"); err != nil {
		return nil, err
	}
	if f.Len() >= 1 {
		if leaf, ok := f.At(0).(parser.Leaf); ok && leaf.Tok.IsWildcard() {
			return NewAnonAttrsForm(f)
		}
	}
	return NewAttrsForm(f)
}

func attrsParts(f *parser.Form) (token.Token, []token.Token, *diag.Error) {
	if err := headKeyword(f, "attrs"); err != nil {
		return token.Token{}, nil, err
	}
	if f.Len() < 1 {
		return token.Token{}, nil, missingElem(f, "a name")
	}
	leaf, ok := f.At(0).(parser.Leaf)
	if !ok {
		return token.Token{}, nil, diag.Semantic(f.At(0).Loc(), "attrs name must be a symbol, got a form")
	}
	if f.Len() < 2 {
		return token.Token{}, nil, missingElem(f, "an attribute product")
	}
	prodForm, ok := f.At(1).(*parser.Form)
	if !ok {
		return token.Token{}, nil, diag.Semantic(f.At(1).Loc(), "attributes must be a product, got %q", f.At(1).String())
	}
	prod, err := NewSymbolProdForm(prodForm, false)
	if err != nil {
		return token.Token{}, nil, err
	}
	attrs, err := prod.ValueSymbols()
	if err != nil {
		return token.Token{}, nil, err
	}
	if f.Len() > 2 {
		return token.Token{}, nil, extraElem(f, f.At(2))
	}
	return leaf.Tok, attrs, nil
}
