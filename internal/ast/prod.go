package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// ValueProdForm is a homogeneous product of value-category elements:
// primitives, value symbols, and nested function applications.
type ValueProdForm struct {
	origin
	Elems []ValueElem
}

// NewValueProdForm validates a (prod ...) form of value elements.
// allowEmpty permits a product with no elements.
func NewValueProdForm(f *parser.Form, allowEmpty bool) (*ValueProdForm, *diag.Error) {
	if err := headKeyword(f, "prod"); err != nil {
		return nil, err
	}
	if f.Len() == 0 && !allowEmpty {
		return nil, missingElem(f, "at least one element")
	}
	prod := &ValueProdForm{origin: origin{form: f}}
	for _, item := range f.Items {
		elem, err := valueElem(item)
		if err != nil {
			return nil, err
		}
		prod.Elems = append(prod.Elems, elem)
	}
	return prod, nil
}

// SymbolProdForm is a product of plain symbols, value and type category
// alike. Export, import, attribute, and parameter grammars build on it.
type SymbolProdForm struct {
	origin
	Syms []token.Token
}

// NewSymbolProdForm validates a (prod ...) form of bare symbols.
func NewSymbolProdForm(f *parser.Form, allowEmpty bool) (*SymbolProdForm, *diag.Error) {
	if err := headKeyword(f, "prod"); err != nil {
		return nil, err
	}
	if f.Len() == 0 && !allowEmpty {
		return nil, missingElem(f, "at least one symbol")
	}
	prod := &SymbolProdForm{origin: origin{form: f}}
	for _, item := range f.Items {
		leaf, ok := item.(parser.Leaf)
		if !ok || !leaf.Tok.Kind.IsSymbol() {
			return nil, diag.Semantic(item.Loc(), "expected a symbol, got %q", item.String())
		}
		prod.Syms = append(prod.Syms, leaf.Tok)
	}
	return prod, nil
}

// ValueSymbols checks every symbol in the product is value category and
// returns them; the first type-category symbol fails at its own location.
func (p *SymbolProdForm) ValueSymbols() ([]token.Token, *diag.Error) {
	for _, sym := range p.Syms {
		if !sym.IsValueCategory() {
			return nil, diag.Semantic(sym.Loc(), "expected a value symbol, got %q", sym.Text())
		}
	}
	return p.Syms, nil
}

// TypeProdForm is a homogeneous product of type-category elements: type
// symbols and nested type applications.
type TypeProdForm struct {
	origin
	Elems []TypeElem
}

// NewTypeProdForm validates a (prod ...) form of type elements.
func NewTypeProdForm(f *parser.Form, allowEmpty bool) (*TypeProdForm, *diag.Error) {
	if err := headKeyword(f, "prod"); err != nil {
		return nil, err
	}
	if f.Len() == 0 && !allowEmpty {
		return nil, missingElem(f, "at least one element")
	}
	prod := &TypeProdForm{origin: origin{form: f}}
	for _, item := range f.Items {
		elem, err := typeElem(item)
		if err != nil {
			return nil, err
		}
		prod.Elems = append(prod.Elems, elem)
	}
	return prod, nil
}
