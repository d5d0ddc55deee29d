package lexer

import (
	"larch/internal/diag"
	"larch/internal/token"
)

// scanComment scans a '#' line comment or a '#!' doc comment up to (but not
// including) the end of the line.
func (lx *Lexer) scanComment() (token.Token, bool, *diag.Error) {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	kind := token.Comment
	if lx.cursor.Peek() == docMark {
		lx.cursor.Bump()
		kind = token.DocComment
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return emit(kind, lx.cursor.RunFrom(mark)), true, nil
}
