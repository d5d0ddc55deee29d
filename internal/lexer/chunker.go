package lexer

import (
	"unicode/utf8"

	"larch/internal/source"
)

// Chunk decodes source text into character chunks, assigning each character
// its exact 1-based line and position. Position tracking is what keeps every
// downstream token location correct through escapes and quoted literals.
func Chunk(file string, content []byte) []source.CharChunk {
	chunks := make([]source.CharChunk, 0, len(content))
	loc := source.NewLocation(file)
	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		content = content[size:]
		chunks = append(chunks, source.CharChunk{Ch: r, Loc: loc})
		if r == '\n' {
			loc = loc.NextLine()
		} else {
			loc = loc.NextPos()
		}
	}
	return chunks
}
