package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// SumForm declares a named sum type over a product of variants:
// (sum Either (prod A B)).
type SumForm struct {
	origin
	Name     token.Token
	Variants []TypeElem
}

// NewSumForm validates a (sum ...) form with a proper name.
func NewSumForm(f *parser.Form) (*SumForm, *diag.Error) {
	name, variants, err := sumParts(f)
	if err != nil {
		return nil, err
	}
	if name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "sum form with a wildcard name is anonymous")
	}
	if _, terr := typeName(parser.Leaf{Tok: name}); terr != nil {
		return nil, terr
	}
	return &SumForm{origin: origin{form: f}, Name: name, Variants: variants}, nil
}

// AnonSumForm is the wildcard-named counterpart: (sum _ (prod A B)).
type AnonSumForm struct {
	origin
	Variants []TypeElem
}

// NewAnonSumForm validates a (sum _ ...) form.
func NewAnonSumForm(f *parser.Form) (*AnonSumForm, *diag.Error) {
	name, variants, err := sumParts(f)
	if err != nil {
		return nil, err
	}
	if !name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "anonymous sum form requires the wildcard name, got %q", name.Text())
	}
	return &AnonSumForm{origin: origin{form: f}, Variants: variants}, nil
}

// SumFromForm dispatches between the named and anonymous sum variants.
func SumFromForm(f *parser.Form) (SemanticForm, *diag.Error) {
	if err := headKeyword(f, "sum"); err != nil {
		return nil, err
	}
	if f.Len() >= 1 {
		if leaf, ok := f.At(0).(parser.Leaf); ok && leaf.Tok.IsWildcard() {
			return NewAnonSumForm(f)
		}
	}
	return NewSumForm(f)
}

func sumParts(f *parser.Form) (token.Token, []TypeElem, *diag.Error) {
	if err := headKeyword(f, "sum"); err != nil {
		return token.Token{}, nil, err
	}
	if f.Len() < 1 {
		return token.Token{}, nil, missingElem(f, "a name")
	}
	leaf, ok := f.At(0).(parser.Leaf)
	if !ok {
		return token.Token{}, nil, diag.Semantic(f.At(0).Loc(), "sum name must be a symbol, got a form")
	}
	if f.Len() < 2 {
		return token.Token{}, nil, missingElem(f, "a variant product")
	}
	prodForm, ok := f.At(1).(*parser.Form)
	if !ok {
		return token.Token{}, nil, diag.Semantic(f.At(1).Loc(), "sum variants must be a product, got %q", f.At(1).String())
	}
	prod, err := NewTypeProdForm(prodForm, false)
	if err != nil {
		return token.Token{}, nil, err
	}
	if f.Len() > 2 {
		return token.Token{}, nil, extraElem(f, f.At(2))
	}
	return leaf.Tok, prod.Elems, nil
}

// ProdDefForm declares a named product type over a product of fields:
// (prod Pair (prod A B)).
type ProdDefForm struct {
	origin
	Name   token.Token
	Fields []TypeElem
}

// NewProdDefForm validates a (prod Name (prod ...)) declaration.
func NewProdDefForm(f *parser.Form) (*ProdDefForm, *diag.Error) {
	if err := headKeyword(f, "prod"); err != nil {
		return nil, err
	}
	if f.Len() < 1 {
		return nil, missingElem(f, "a name")
	}
	name, err := typeName(f.At(0))
	if err != nil {
		return nil, err
	}
	if f.Len() < 2 {
		return nil, missingElem(f, "a field product")
	}
	prodForm, ok := f.At(1).(*parser.Form)
	if !ok {
		return nil, diag.Semantic(f.At(1).Loc(), "product fields must be a product, got %q", f.At(1).String())
	}
	prod, perr := NewTypeProdForm(prodForm, false)
	if perr != nil {
		return nil, perr
	}
	if f.Len() > 2 {
		return nil, extraElem(f, f.At(2))
	}
	return &ProdDefForm{origin: origin{form: f}, Name: name, Fields: prod.Elems}, nil
}
