package types

import (
	"larch/internal/ast"
	"larch/internal/token"
)

// FromToken builds a type from a single type-category token: a type keyword
// becomes its atom or an empty composite, anything else an Unknown
// placeholder keyed by the token's text.
func FromToken(tok token.Token) *Type {
	if tok.Kind == token.Keyword {
		if k := KindByName(tok.Text()); k != KindUnknown {
			return &Type{Kind: k}
		}
	}
	return Unknown(tok.Text())
}

// FromElem builds a type from a validated type-category element. Construction
// is total: unresolved symbols become Unknown nodes for a later resolution
// pass.
func FromElem(elem ast.TypeElem) *Type {
	switch e := elem.(type) {
	case ast.TypeSym:
		return FromToken(e.Tok)
	case *ast.TypeAppForm:
		return FromApp(e)
	}
	return Unknown(elem.String())
}

// FromApp builds a type from a type application form. A type keyword head
// becomes that constructor over the argument types; a symbol head becomes an
// App over the head's placeholder.
func FromApp(app *ast.TypeAppForm) *Type {
	head := FromToken(app.HeadSym)
	var t *Type
	if head.Kind.IsComposite() && len(head.Subs) == 0 {
		t = head
	} else {
		t = Composite(KindApp, head)
	}
	for _, arg := range app.Args {
		t.Push(FromElem(arg))
	}
	return t
}

// FromProd builds a product type over a validated type product's elements.
func FromProd(prod *ast.TypeProdForm) *Type {
	t := Composite(KindProd)
	for _, elem := range prod.Elems {
		t.Push(FromElem(elem))
	}
	return t
}
