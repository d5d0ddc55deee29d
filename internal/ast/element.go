package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/source"
	"larch/internal/token"
)

// TypeElem is an element of a type-category grammar position: a type symbol
// or keyword leaf, or a nested type application.
type TypeElem interface {
	Loc() source.Location
	String() string
	typeElem()
}

// TypeSym is a type keyword, type symbol, or type-category path leaf.
type TypeSym struct {
	Tok token.Token
}

func (s TypeSym) typeElem() {}

// Loc returns the symbol's location.
func (s TypeSym) Loc() source.Location { return s.Tok.Loc() }

func (s TypeSym) String() string { return s.Tok.Text() }

// ValueElem is an element of a value-category grammar position: a primitive
// literal, a value symbol, or a nested function application.
type ValueElem interface {
	Loc() source.Location
	String() string
	valueElem()
}

// ValueSym is a value symbol or value-category path leaf.
type ValueSym struct {
	Tok token.Token
}

func (s ValueSym) valueElem() {}

// Loc returns the symbol's location.
func (s ValueSym) Loc() source.Location { return s.Tok.Loc() }

func (s ValueSym) String() string { return s.Tok.Text() }

// Literal is a primitive literal leaf (numeric, char, string, or empty).
type Literal struct {
	Tok token.Token
}

func (l Literal) valueElem() {}

// Loc returns the literal's location.
func (l Literal) Loc() source.Location { return l.Tok.Loc() }

func (l Literal) String() string { return l.Tok.Text() }

// IsEmpty reports whether the literal is the empty literal.
func (l Literal) IsEmpty() bool { return l.Tok.Kind == token.EmptyLiteral }

// typeElem validates one node in a type-category position.
func typeElem(n parser.Node) (TypeElem, *diag.Error) {
	switch node := n.(type) {
	case parser.Leaf:
		tok := node.Tok
		if tok.IsTypeCategory() {
			return TypeSym{Tok: tok}, nil
		}
		return nil, diag.Semantic(tok.Loc(), "expected a type symbol, got %q", tok.Text())
	case *parser.Form:
		return NewTypeAppForm(node)
	}
	return nil, diag.Semantic(n.Loc(), "expected a type expression")
}

// valueElem validates one node in a value-category position.
func valueElem(n parser.Node) (ValueElem, *diag.Error) {
	switch node := n.(type) {
	case parser.Leaf:
		tok := node.Tok
		if tok.Kind.IsLiteral() {
			return Literal{Tok: tok}, nil
		}
		if tok.IsValueCategory() {
			return ValueSym{Tok: tok}, nil
		}
		return nil, diag.Semantic(tok.Loc(), "expected a value symbol or literal, got %q", tok.Text())
	case *parser.Form:
		return NewFunAppForm(node)
	}
	return nil, diag.Semantic(n.Loc(), "expected a value expression")
}

// missingElem reports a too-short form; the closing parenthesis is the
// smallest token standing where the element should have been.
func missingElem(f *parser.Form, what string) *diag.Error {
	return diag.Semantic(f.Close.Loc(), "%s form is missing %s", f.Name(), what)
}

// extraElem reports a too-long form at the first superfluous element.
func extraElem(f *parser.Form, n parser.Node) *diag.Error {
	return diag.Semantic(n.Loc(), "unexpected element %q in %s form", n.String(), f.Name())
}

// headKeyword checks that the form's head is the given keyword.
func headKeyword(f *parser.Form, kw string) *diag.Error {
	if f.Head.Kind != token.Keyword || f.Name() != kw {
		return diag.Semantic(f.Head.Loc(), "expected %q form, got %q", kw, f.Name())
	}
	return nil
}
