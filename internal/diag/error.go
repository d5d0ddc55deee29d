package diag

import (
	"fmt"

	"larch/internal/source"
)

// Kind classifies a front-end error.
type Kind uint8

const (
	// KindSyntax is a lexical or structural malformation: a bad literal,
	// unbalanced parentheses, or a wrong token kind at a structural position.
	KindSyntax Kind = iota
	// KindParsing is a stray lexical token that should have been filtered
	// before semantic parsing, e.g. a comment reaching the form stage.
	KindParsing
	// KindSemantic is a structurally well-formed form violating a grammar's
	// category, arity, or keyword rules.
	KindSemantic
	// KindIO wraps a failure from the source-loading collaborator.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindParsing:
		return "parsing"
	case KindSemantic:
		return "semantic"
	case KindIO:
		return "io"
	}
	return "unknown"
}

// Error is the single error value every front-end stage returns. Each stage
// stops at the first error; there is no accumulation inside one unit.
type Error struct {
	Kind Kind
	Loc  *source.Location
	Msg  string
}

func (e *Error) Error() string {
	if e.Loc == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Loc, e.Kind, e.Msg)
}

// Syntax builds a syntax error at the given location.
func Syntax(loc source.Location, format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Loc: &loc, Msg: fmt.Sprintf(format, args...)}
}

// SyntaxAtEnd builds a syntax error with no location, used when the offending
// position is the end of input.
func SyntaxAtEnd(format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Msg: fmt.Sprintf(format, args...)}
}

// Parsing builds a parsing error at the given location.
func Parsing(loc source.Location, format string, args ...any) *Error {
	return &Error{Kind: KindParsing, Loc: &loc, Msg: fmt.Sprintf(format, args...)}
}

// Semantic builds a semantic error at the given location.
func Semantic(loc source.Location, format string, args ...any) *Error {
	return &Error{Kind: KindSemantic, Loc: &loc, Msg: fmt.Sprintf(format, args...)}
}

// IO wraps a loader failure for the given path.
func IO(path string, err error) *Error {
	return &Error{Kind: KindIO, Msg: fmt.Sprintf("%s: %v", path, err)}
}
