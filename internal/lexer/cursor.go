package lexer

import (
	"larch/internal/source"
)

// Cursor walks a chunked source unit.
type Cursor struct {
	chunks []source.CharChunk
	off    int
	file   string
}

// NewCursor creates a cursor over the given chunks.
func NewCursor(file string, chunks []source.CharChunk) Cursor {
	return Cursor{chunks: chunks, file: file}
}

// EOF reports whether the cursor ran past the last chunk.
func (c *Cursor) EOF() bool {
	return c.off >= len(c.chunks)
}

// Peek returns the current character, or 0 at EOF.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.chunks[c.off].Ch
}

// Peek2 returns the current and next characters.
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.off+1 >= len(c.chunks) {
		return 0, 0, false
	}
	return c.chunks[c.off].Ch, c.chunks[c.off+1].Ch, true
}

// Bump consumes and returns the current character chunk.
func (c *Cursor) Bump() source.CharChunk {
	if c.EOF() {
		return source.CharChunk{}
	}
	ch := c.chunks[c.off]
	c.off++
	return ch
}

// Loc returns the location of the current character. At EOF it returns the
// position one past the final character, so end-of-input diagnostics still
// point somewhere sensible.
func (c *Cursor) Loc() source.Location {
	if c.EOF() {
		if len(c.chunks) == 0 {
			return source.NewLocation(c.file)
		}
		last := c.chunks[len(c.chunks)-1]
		if last.Ch == '\n' {
			return last.Loc.NextLine()
		}
		return last.Loc.NextPos()
	}
	return c.chunks[c.off].Loc
}

// Mark remembers the current offset for RunFrom.
type Mark int

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// RunFrom returns the chunk run consumed since the mark.
func (c *Cursor) RunFrom(m Mark) []source.CharChunk {
	return c.chunks[m:c.off]
}

// Eat consumes the current character if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.chunks[c.off].Ch == r {
		c.off++
		return true
	}
	return false
}
