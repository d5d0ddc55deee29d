package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// TypeForm binds a type name to one type expression: (type T (Fun A B)).
type TypeForm struct {
	origin
	Name token.Token
	Expr TypeElem
}

// NewTypeForm validates a (type ...) form.
func NewTypeForm(f *parser.Form) (*TypeForm, *diag.Error) {
	if err := headKeyword(f, "type"); err != nil {
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
		return nil, missingElem(f, "a type expression")
	}
	expr, err := typeElem(f.At(1))
	if err != nil {
		return nil, err
	}
	if f.Len() > 2 {
		return nil, extraElem(f, f.At(2))
	}
	return &TypeForm{origin: origin{form: f}, Name: name, Expr: expr}, nil
}

// TypesForm binds a type name to an ordered sequence of type parameters:
// (types Pair A B). Parameters are type symbols, the Empty keyword, or
// nested type forms.
type TypesForm struct {
	origin
	Name   token.Token
	Params []TypeElem
}

// NewTypesForm validates a (types ...) form.
func NewTypesForm(f *parser.Form) (*TypesForm, *diag.Error) {
	if err := headKeyword(f, "types"); err != nil {
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
		return nil, missingElem(f, "at least one type parameter")
	}
	ts := &TypesForm{origin: origin{form: f}, Name: name}
	for _, item := range f.Items[1:] {
		param, err := typeElem(item)
		if err != nil {
			return nil, err
		}
		ts.Params = append(ts.Params, param)
	}
	return ts, nil
}

// typeName validates the name position of a type declaration: a type keyword
// or a type symbol; value-category tokens are rejected.
func typeName(n parser.Node) (token.Token, *diag.Error) {
	leaf, ok := n.(parser.Leaf)
	if !ok {
		return token.Token{}, diag.Semantic(n.Loc(), "type name must be a symbol, got a form")
	}
	tok := leaf.Tok
	if tok.Kind == token.PathSymbol {
		return token.Token{}, diag.Semantic(tok.Loc(), "type name must be unqualified, got %q", tok.Text())
	}
	if !tok.IsTypeCategory() {
		return token.Token{}, diag.Semantic(tok.Loc(), "expected a type symbol, got %q", tok.Text())
	}
	return tok, nil
}
