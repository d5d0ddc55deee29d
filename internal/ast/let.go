package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// DefForm binds a value name inside a let scope: (def x (+ 1 2)).
type DefForm struct {
	origin
	Name  token.Token
	Value ValueElem
}

// NewDefForm validates a (def ...) form.
func NewDefForm(f *parser.Form) (*DefForm, *diag.Error) {
	if err := headKeyword(f, "def"); err != nil {
		return nil, err
	}
	if f.Len() < 1 {
		return nil, missingElem(f, "a name")
	}
	leaf, ok := f.At(0).(parser.Leaf)
	if !ok || leaf.Tok.Kind != token.ValueSymbol {
		return nil, diag.Semantic(f.At(0).Loc(), "def name must be an unqualified value symbol, got %q", f.At(0).String())
	}
	if f.Len() < 2 {
		return nil, missingElem(f, "a value")
	}
	value, err := valueElem(f.At(1))
	if err != nil {
		return nil, err
	}
	if f.Len() > 2 {
		return nil, extraElem(f, f.At(2))
	}
	return &DefForm{origin: origin{form: f}, Name: leaf.Tok, Value: value}, nil
}

// LetForm is zero or more definitions followed by exactly one application:
// (let (def x 5) (+ x 1)). Zero definitions collapses to the application.
type LetForm struct {
	origin
	Defs []*DefForm
	App  *FunAppForm
}

// NewLetForm validates a (let ...) form.
func NewLetForm(f *parser.Form) (*LetForm, *diag.Error) {
	if err := headKeyword(f, "let"); err != nil {
		return nil, err
	}
	if f.Len() < 1 {
		return nil, missingElem(f, "an application")
	}

	let := &LetForm{origin: origin{form: f}}
	for i, item := range f.Items {
		sub, ok := item.(*parser.Form)
		if !ok {
			return nil, diag.Semantic(item.Loc(), "let element must be a form, got %q", item.String())
		}
		last := i == f.Len()-1
		if !last {
			def, err := NewDefForm(sub)
			if err != nil {
				return nil, err
			}
			let.Defs = append(let.Defs, def)
			continue
		}
		if sub.Name() == "def" {
			return nil, diag.Semantic(sub.Loc(), "let form must end with an application, got a definition")
		}
		app, err := NewFunAppForm(sub)
		if err != nil {
			return nil, err
		}
		let.App = app
	}
	return let, nil
}
