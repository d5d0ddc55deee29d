// Package ast holds the semantic form family: one validator per grammar
// construct, each a fallible conversion from a generic form (or from a
// narrower, already-validated form) to a strongly-typed node. Nodes keep
// their originating form for diagnostics and round-trip printing and are
// never mutated after construction.
package ast

import (
	"larch/internal/parser"
	"larch/internal/source"
)

// SemanticForm is a validated, grammar-specific node derived from a generic
// form.
type SemanticForm interface {
	File() string
	Loc() source.Location
	String() string
	semanticForm()
}

// origin embeds the source form every semantic node was validated from.
type origin struct {
	form *parser.Form
}

func (o origin) semanticForm() {}

// File returns the file the originating form was parsed from.
func (o origin) File() string { return o.form.File() }

// Loc returns the location of the originating form's opening parenthesis.
func (o origin) Loc() source.Location { return o.form.Loc() }

// Origin returns the generic form this node was validated from.
func (o origin) Origin() *parser.Form { return o.form }

func (o origin) String() string { return o.form.String() }
