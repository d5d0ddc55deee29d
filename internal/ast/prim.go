package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// PrimForm binds a new primitive type name to a built-in type keyword:
// (prim Word UInt).
type PrimForm struct {
	origin
	Name token.Token
	Base token.Token
}

// NewPrimForm validates a (prim ...) form with a proper name.
func NewPrimForm(f *parser.Form) (*PrimForm, *diag.Error) {
	name, base, err := primParts(f)
	if err != nil {
		return nil, err
	}
	if name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "prim form with a wildcard name is anonymous")
	}
	if _, terr := typeName(parser.Leaf{Tok: name}); terr != nil {
		return nil, terr
	}
	return &PrimForm{origin: origin{form: f}, Name: name, Base: base}, nil
}

// AnonPrimForm is the wildcard-named counterpart: (prim _ UInt).
type AnonPrimForm struct {
	origin
	Base token.Token
}

// NewAnonPrimForm validates a (prim _ ...) form.
func NewAnonPrimForm(f *parser.Form) (*AnonPrimForm, *diag.Error) {
	name, base, err := primParts(f)
	if err != nil {
		return nil, err
	}
	if !name.IsWildcard() {
		return nil, diag.Semantic(name.Loc(), "anonymous prim form requires the wildcard name, got %q", name.Text())
	}
	return &AnonPrimForm{origin: origin{form: f}, Base: base}, nil
}

// PrimFromForm dispatches between the named and anonymous prim variants.
func PrimFromForm(f *parser.Form) (SemanticForm, *diag.Error) {
	if err := headKeyword(f, "prim"); err != nil {
		return nil, err
	}
	if f.Len() >= 1 {
		if leaf, ok := f.At(0).(parser.Leaf); ok && leaf.Tok.IsWildcard() {
			return NewAnonPrimForm(f)
		}
	}
	return NewPrimForm(f)
}

func primParts(f *parser.Form) (name, base token.Token, err *diag.Error) {
	if herr := headKeyword(f, "prim"); herr != nil {
		return token.Token{}, token.Token{}, herr
	}
	if f.Len() < 1 {
		return token.Token{}, token.Token{}, missingElem(f, "a name")
	}
	nameLeaf, ok := f.At(0).(parser.Leaf)
	if !ok {
		return token.Token{}, token.Token{}, diag.Semantic(f.At(0).Loc(), "prim name must be a symbol, got a form")
	}
	if f.Len() < 2 {
		return token.Token{}, token.Token{}, missingElem(f, "a built-in type")
	}
	baseLeaf, ok := f.At(1).(parser.Leaf)
	if !ok || baseLeaf.Tok.Kind != token.Keyword || !token.IsTypeKeyword(baseLeaf.Tok.Text()) {
		return token.Token{}, token.Token{}, diag.Semantic(f.At(1).Loc(), "prim base must be a built-in type keyword, got %q", f.At(1).String())
	}
	if f.Len() > 2 {
		return token.Token{}, token.Token{}, extraElem(f, f.At(2))
	}
	return nameLeaf.Tok, baseLeaf.Tok, nil
}
