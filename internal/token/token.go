package token

import (
	"strings"

	"larch/internal/source"
)

// Token is an ordered, non-empty sequence of string chunks classified under
// one Kind. Tokens are immutable once produced by the lexer.
type Token struct {
	Kind   Kind
	Chunks []source.StringChunk
}

// New builds a token over the given chunks.
func New(kind Kind, chunks ...source.StringChunk) Token {
	return Token{Kind: kind, Chunks: chunks}
}

// Text returns the token's lexeme, the concatenation of its chunks.
func (t Token) Text() string {
	if len(t.Chunks) == 1 {
		return t.Chunks[0].Value
	}
	var sb strings.Builder
	for _, c := range t.Chunks {
		sb.WriteString(c.Value)
	}
	return sb.String()
}

// File returns the file name of the token's first chunk.
func (t Token) File() string {
	if len(t.Chunks) == 0 {
		return ""
	}
	return t.Chunks[0].Loc.File
}

// Loc returns the location of the token's first chunk.
func (t Token) Loc() source.Location {
	if len(t.Chunks) == 0 {
		return source.Location{}
	}
	return t.Chunks[0].Loc
}

// IsWildcard reports whether the token is the reserved ignore symbol.
func (t Token) IsWildcard() bool {
	return t.Kind == Keyword && t.Text() == Wildcard
}

// IsTypeCategory reports whether the token denotes a type: a type keyword, a
// type symbol, or a path whose unqualified suffix is a type name.
func (t Token) IsTypeCategory() bool {
	switch t.Kind {
	case TypeSymbol:
		return true
	case Keyword:
		return IsTypeKeyword(t.Text())
	case PathSymbol:
		return IsTypeName(t.Suffix())
	default:
		return false
	}
}

// IsValueCategory reports whether the token denotes a value symbol, possibly
// qualified.
func (t Token) IsValueCategory() bool {
	switch t.Kind {
	case ValueSymbol:
		return true
	case PathSymbol:
		return !IsTypeName(t.Suffix())
	default:
		return false
	}
}

// Suffix returns the unqualified part of a path symbol (the text after the
// last dot), or the whole text for unqualified tokens.
func (t Token) Suffix() string {
	text := t.Text()
	if i := strings.LastIndexByte(text, '.'); i >= 0 {
		return text[i+1:]
	}
	return text
}

// Qualifier returns the module part of a path symbol, or "" when unqualified.
func (t Token) Qualifier() string {
	text := t.Text()
	if i := strings.LastIndexByte(text, '.'); i >= 0 {
		return text[:i]
	}
	return ""
}
