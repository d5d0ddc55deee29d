package lexer

import (
	"larch/internal/diag"
	"larch/internal/token"
)

// scanString scans a double-quoted string literal. The lexeme keeps its
// quotes and raw escape sequences so printing round-trips exactly.
func (lx *Lexer) scanString() (token.Token, bool, *diag.Error) {
	mark := lx.cursor.Mark()
	open := lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case doubleQuote:
			lx.cursor.Bump()
			return emit(token.StringLiteral, lx.cursor.RunFrom(mark)), true, nil
		case escapeChar:
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return token.Token{}, false, diag.Syntax(open.Loc, "unterminated string literal")
			}
			lx.cursor.Bump()
		case '\n':
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "newline in string literal")
		default:
			lx.cursor.Bump()
		}
	}
	return token.Token{}, false, diag.Syntax(open.Loc, "unterminated string literal")
}

// scanChar scans a single-quoted character literal: one character or one
// escape sequence between quotes.
func (lx *Lexer) scanChar() (token.Token, bool, *diag.Error) {
	mark := lx.cursor.Mark()
	open := lx.cursor.Bump() // opening '\''

	if lx.cursor.EOF() {
		return token.Token{}, false, diag.Syntax(open.Loc, "unterminated character literal")
	}
	if lx.cursor.Peek() == escapeChar {
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			return token.Token{}, false, diag.Syntax(open.Loc, "unterminated character literal")
		}
		lx.cursor.Bump()
	} else {
		if lx.cursor.Peek() == singleQuote {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "empty character literal")
		}
		if lx.cursor.Peek() == '\n' {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "newline in character literal")
		}
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat(singleQuote) {
		return token.Token{}, false, diag.Syntax(open.Loc, "unterminated character literal")
	}
	return emit(token.CharLiteral, lx.cursor.RunFrom(mark)), true, nil
}
