package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// FunAppForm is a function application: a parenthesized value-category head
// followed by primitives, value symbols, and nested applications.
type FunAppForm struct {
	origin
	HeadSym token.Token
	Args    []ValueElem
}

func (f *FunAppForm) valueElem() {}

// NewFunAppForm validates a generic form as a function application.
func NewFunAppForm(f *parser.Form) (*FunAppForm, *diag.Error) {
	head := f.HeadToken()
	if !head.IsValueCategory() {
		return nil, diag.Semantic(head.Loc(), "function application head must be a value symbol, got %q", head.Text())
	}
	app := &FunAppForm{origin: origin{form: f}, HeadSym: head}
	for _, item := range f.Items {
		arg, err := valueElem(item)
		if err != nil {
			return nil, err
		}
		app.Args = append(app.Args, arg)
	}
	return app, nil
}

// TypeAppForm is a type application: a parenthesized type-category head
// followed by type symbols and nested type applications.
type TypeAppForm struct {
	origin
	HeadSym token.Token
	Args    []TypeElem
}

func (f *TypeAppForm) typeElem() {}

// NewTypeAppForm validates a generic form as a type application.
func NewTypeAppForm(f *parser.Form) (*TypeAppForm, *diag.Error) {
	head := f.HeadToken()
	if !head.IsTypeCategory() {
		return nil, diag.Semantic(head.Loc(), "type application head must be a type symbol, got %q", head.Text())
	}
	app := &TypeAppForm{origin: origin{form: f}, HeadSym: head}
	for _, item := range f.Items {
		arg, err := typeElem(item)
		if err != nil {
			return nil, err
		}
		app.Args = append(app.Args, arg)
	}
	return app, nil
}

// MixedAppForm is an application whose tail mixes value- and type-category
// elements; each element is validated in its own category.
type MixedAppForm struct {
	origin
	HeadSym token.Token
	Values  []ValueElem
	Types   []TypeElem
}

// NewMixedAppForm validates a generic form as a mixed application.
func NewMixedAppForm(f *parser.Form) (*MixedAppForm, *diag.Error) {
	head := f.HeadToken()
	if !head.IsValueCategory() {
		return nil, diag.Semantic(head.Loc(), "mixed application head must be a value symbol, got %q", head.Text())
	}
	app := &MixedAppForm{origin: origin{form: f}, HeadSym: head}
	for _, item := range f.Items {
		if te, err := typeElem(item); err == nil {
			app.Types = append(app.Types, te)
			continue
		}
		ve, err := valueElem(item)
		if err != nil {
			return nil, err
		}
		app.Values = append(app.Values, ve)
	}
	return app, nil
}

// NewAppForm dispatches on the head's category: a type-category head builds
// a type application; a value-category head builds a function application,
// or a mixed application when the tail carries type-category elements.
func NewAppForm(f *parser.Form) (SemanticForm, *diag.Error) {
	if f.HeadToken().IsTypeCategory() {
		return NewTypeAppForm(f)
	}
	for _, item := range f.Items {
		if _, err := typeElem(item); err == nil {
			return NewMixedAppForm(f)
		}
	}
	return NewFunAppForm(f)
}
