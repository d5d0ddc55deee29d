package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// SigForm binds a value name to a type: (sig main (Fun IO IO)).
type SigForm struct {
	origin
	Name token.Token
	Type TypeElem
}

// NewSigForm validates a (sig ...) form with a proper name. A wildcard in
// the name position is rejected here; NewAnonSigForm owns that shape.
func NewSigForm(f *parser.Form) (*SigForm, *diag.Error) {
	name, typ, err := sigParts(f)
	if err != nil {
		return nil, err
	}
	if name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "sig form with a wildcard name is anonymous")
	}
	if !name.IsValueCategory() {
		return nil, diag.Semantic(name.Loc(), "sig name must be a value symbol, got %q", name.Text())
	}
	if name.Kind == token.PathSymbol {
		return nil, diag.Semantic(name.Loc(), "sig name must be unqualified, got %q", name.Text())
	}
	return &SigForm{origin: origin{form: f}, Name: name, Type: typ}, nil
}

// AnonSigForm is the wildcard-named counterpart of SigForm: (sig _ T).
type AnonSigForm struct {
	origin
	Type TypeElem
}

// NewAnonSigForm validates a (sig _ ...) form.
func NewAnonSigForm(f *parser.Form) (*AnonSigForm, *diag.Error) {
	name, typ, err := sigParts(f)
	if err != nil {
		return nil, err
	}
	if !name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "anonymous sig form requires the wildcard name, got %q", name.Text())
	}
	return &AnonSigForm{origin: origin{form: f}, Type: typ}, nil
}

// SigFromForm dispatches between the named and anonymous sig variants.
func SigFromForm(f *parser.Form) (SemanticForm, *diag.Error) {
	if err := headKeyword(f, "sig"); err != nil {
		return nil, err
	}
	if f.Len() >= 1 {
		if leaf, ok := f.At(0).(parser.Leaf); ok && leaf.Tok.IsWildcard() {
			return NewAnonSigForm(f)
		}
	}
	return NewSigForm(f)
}

func sigParts(f *parser.Form) (token.Token, TypeElem, *diag.Error) {
	if err := headKeyword(f, "sig"); err != nil {
		return token.Token{}, nil, err
	}
	if f.Len() < 1 {
		return token.Token{}, nil, missingElem(f, "a name")
	}
	leaf, ok := f.At(0).(parser.Leaf)
	if !ok {
		return token.Token{}, nil, diag.Semantic(f.At(0).Loc(), "sig name must be a symbol, got a form")
	}
	if f.Len() < 2 {
		return token.Token{}, nil, missingElem(f, "a type")
	}
	typ, err := typeElem(f.At(1))
	if err != nil {
		return token.Token{}, nil, err
	}
	if f.Len() > 2 {
		return token.Token{}, nil, extraElem(f, f.At(2))
	}
	return leaf.Tok, typ, nil
}
