package lexer

import (
	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/token"
)

// Lexer turns chunked source text into a token stream. It stops at the first
// malformed lexeme; no partial tokens are emitted.
type Lexer struct {
	file   string
	cursor Cursor
}

// New creates a lexer over the given source text.
func New(file string, content []byte) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file, Chunk(file, content)),
	}
}

// NewFromFile creates a lexer over a loaded source file.
func NewFromFile(f *source.File) *Lexer {
	return New(f.Path, f.Content)
}

// Lex tokenizes the whole unit, or fails with a syntax error pinpointing the
// first offending character.
func Lex(file string, content []byte) (token.Stream, *diag.Error) {
	return New(file, content).Lex()
}

// Lex drains the lexer into a stream.
func (lx *Lexer) Lex() (token.Stream, *diag.Error) {
	var stream token.Stream
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return stream, nil
		}
		stream = append(stream, tok)
	}
}

// Next scans the next token. ok is false at end of input.
func (lx *Lexer) Next() (token.Token, bool, *diag.Error) {
	lx.skipWhitespace()
	if lx.cursor.EOF() {
		return token.Token{}, false, nil
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == commentMark:
		return lx.scanComment()

	case ch == formStart:
		if _, r1, ok := lx.cursor.Peek2(); ok && r1 == formEnd {
			mark := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.cursor.Bump()
			return emit(token.EmptyLiteral, lx.cursor.RunFrom(mark)), true, nil
		}
		chunk := lx.cursor.Bump()
		return token.New(token.FormStart, source.Merge([]source.CharChunk{chunk})), true, nil

	case ch == formEnd:
		chunk := lx.cursor.Bump()
		return token.New(token.FormEnd, source.Merge([]source.CharChunk{chunk})), true, nil

	case ch == doubleQuote:
		return lx.scanString()

	case ch == singleQuote:
		return lx.scanChar()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '+' || ch == '-':
		if lx.startsNumberAfterSign() {
			return lx.scanNumber()
		}
		return lx.scanSymbol()

	case ch == '.' && lx.nextIsDigit():
		return lx.scanNumber()

	case isSymbolStart(ch):
		return lx.scanSymbol()
	}

	return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "unrecognized character %q", string(ch))
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isWhitespace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// startsNumberAfterSign checks whether a +/- introduces a numeric literal
// rather than a punctuation symbol.
func (lx *Lexer) startsNumberAfterSign() bool {
	_, r1, ok := lx.cursor.Peek2()
	return ok && (isDec(r1) || r1 == '.')
}

func (lx *Lexer) nextIsDigit() bool {
	_, r1, ok := lx.cursor.Peek2()
	return ok && isDec(r1)
}

// emit builds a single-chunk token from a consumed run.
func emit(kind token.Kind, run []source.CharChunk) token.Token {
	return token.New(kind, source.Merge(run))
}
