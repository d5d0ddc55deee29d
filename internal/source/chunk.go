package source

import "strings"

// CharChunk is a single source character with the location it was read at.
// Chunks are immutable values; the lexer produces them while advancing the
// cursor and merges runs of them into StringChunks.
type CharChunk struct {
	Ch  rune
	Loc Location
}

// StringChunk is a contiguous run of characters merged into one string value.
// Its location is the location of the first character of the run.
type StringChunk struct {
	Value string
	Loc   Location
}

// Merge collapses a non-empty run of character chunks into one StringChunk.
// The run's location is taken from its first character.
func Merge(run []CharChunk) StringChunk {
	if len(run) == 0 {
		return StringChunk{}
	}
	var sb strings.Builder
	for _, c := range run {
		sb.WriteRune(c.Ch)
	}
	return StringChunk{Value: sb.String(), Loc: run[0].Loc}
}

// MergeString builds a StringChunk directly from a string and a location.
func MergeString(value string, loc Location) StringChunk {
	return StringChunk{Value: value, Loc: loc}
}

func (c StringChunk) String() string { return c.Value }

// File returns the file name of the chunk's location.
func (c StringChunk) File() string { return c.Loc.File }
