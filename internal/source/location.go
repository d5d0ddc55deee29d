package source

import "fmt"

// Location is a position inside a source unit: an optional file name plus
// 1-based line and position. It is attached to every chunk and token so that
// diagnostics can point at the exact offending character.
type Location struct {
	File string
	Line uint32
	Pos  uint32
}

// NewLocation returns a Location at the start of the named unit.
func NewLocation(file string) Location {
	return Location{File: file, Line: 1, Pos: 1}
}

// NextPos returns the location one position to the right on the same line.
func (l Location) NextPos() Location {
	l.Pos++
	return l
}

// NextLine returns the location at the start of the following line.
func (l Location) NextLine() Location {
	l.Line++
	l.Pos = 1
	return l
}

// IsZero reports whether the location carries no position information.
func (l Location) IsZero() bool {
	return l.Line == 0 && l.Pos == 0
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Pos)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Pos)
}
