package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// Body is a function body: the empty literal, a primitive, a symbol, or a
// nested function application. It is a ValueElem by construction.
type Body = ValueElem

// FunForm is a function definition: (fun (prod a b) (+ a b)). Parameters are
// a possibly-empty product of value symbols.
type FunForm struct {
	origin
	Params []token.Token
	Body   Body
}

// NewFunForm validates a (fun ...) form.
func NewFunForm(f *parser.Form) (*FunForm, *diag.Error) {
	if err := headKeyword(f, "fun"); err != nil {
		return nil, err
	}
	params, body, err := funParts(f)
	if err != nil {
		return nil, err
	}
	return &FunForm{origin: origin{form: f}, Params: params, Body: body}, nil
}

// AnonFunForm is the wildcard-named counterpart of FunForm, constructed only
// from a form whose name is exactly the wildcard: (_ (prod a b) (+ a b)).
type AnonFunForm struct {
	origin
	Params []token.Token
	Body   Body
}

// NewAnonFunForm validates a (_ ...) form.
func NewAnonFunForm(f *parser.Form) (*AnonFunForm, *diag.Error) {
	if !f.HeadToken().IsWildcard() {
		return nil, diag.Semantic(f.HeadToken().Loc(), "anonymous fun form requires the wildcard name, got %q", f.Name())
	}
	params, body, err := funParts(f)
	if err != nil {
		return nil, err
	}
	return &AnonFunForm{origin: origin{form: f}, Params: params, Body: body}, nil
}

// funParts validates the shared shape of named and anonymous functions:
// a parameter product followed by exactly one body element.
func funParts(f *parser.Form) ([]token.Token, Body, *diag.Error) {
	if f.Len() < 1 {
		return nil, nil, missingElem(f, "a parameter product")
	}
	paramsForm, ok := f.At(0).(*parser.Form)
	if !ok {
		return nil, nil, diag.Semantic(f.At(0).Loc(), "function parameters must be a product, got %q", f.At(0).String())
	}
	prod, err := NewSymbolProdForm(paramsForm, true)
	if err != nil {
		return nil, nil, err
	}
	params, err := prod.ValueSymbols()
	if err != nil {
		return nil, nil, err
	}
	for _, p := range params {
		if p.Kind == token.PathSymbol {
			return nil, nil, diag.Semantic(p.Loc(), "function parameter must be unqualified, got %q", p.Text())
		}
	}

	if f.Len() < 2 {
		return nil, nil, missingElem(f, "a body")
	}
	body, err := valueElem(f.At(1))
	if err != nil {
		return nil, nil, err
	}
	if f.Len() > 2 {
		return nil, nil, extraElem(f, f.At(2))
	}
	return params, body, nil
}
