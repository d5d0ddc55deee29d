package parser

import (
	"strings"

	"larch/internal/source"
	"larch/internal/token"
)

// Node is one element of a generic form's tail: either a simple leaf (a
// primitive literal, keyword, symbol, path, wildcard, or the empty literal)
// or a nested Form.
type Node interface {
	File() string
	Loc() source.Location
	String() string
	node()
}

// Leaf wraps a single token appearing as a form element.
type Leaf struct {
	Tok token.Token
}

func (l Leaf) node() {}

// File returns the file name of the underlying token.
func (l Leaf) File() string { return l.Tok.File() }

// Loc returns the location of the underlying token.
func (l Leaf) Loc() source.Location { return l.Tok.Loc() }

func (l Leaf) String() string { return l.Tok.Text() }

// Form is the untyped S-expression skeleton: a head name plus an ordered
// tail. It owns its originating token range, delimiters included, so
// diagnostics and printing stay faithful to the source.
type Form struct {
	Open  token.Token // FormStart
	Head  token.Token
	Items []Node
	Close token.Token // FormEnd
}

func (f *Form) node() {}

// Name returns the head token's text.
func (f *Form) Name() string { return f.Head.Text() }

// HeadToken returns the head token itself.
func (f *Form) HeadToken() token.Token { return f.Head }

// File returns the file the form was parsed from.
func (f *Form) File() string { return f.Open.File() }

// Loc returns the location of the opening parenthesis.
func (f *Form) Loc() source.Location { return f.Open.Loc() }

// Len returns the number of tail elements.
func (f *Form) Len() int { return len(f.Items) }

// At returns the i-th tail element.
func (f *Form) At(i int) Node { return f.Items[i] }

// String re-serializes the form as surface syntax. For canonical input the
// output is identical to the source text.
func (f *Form) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(f.Head.Text())
	for _, item := range f.Items {
		sb.WriteByte(' ')
		sb.WriteString(item.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
