package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"larch/internal/source"
)

// PrettyOpts controls human-readable error rendering.
type PrettyOpts struct {
	// Color enables ANSI colors.
	Color bool
}

var (
	headerColor = color.New(color.FgRed, color.Bold)
	locColor    = color.New(color.Bold)
	caretColor  = color.New(color.FgRed)
)

// Pretty writes one error in the form
//
//	<path>:<line>:<pos>: <kind> error: <message>
//	    <source line>
//	    ^
//
// The source line and caret are emitted only when the error carries a
// location and the file is available.
func Pretty(w io.Writer, e *Error, fs *source.FileSet, opts PrettyOpts) {
	if e == nil {
		return
	}
	kind := e.Kind.String() + " error"
	msg := e.Msg
	if opts.Color {
		kind = headerColor.Sprint(kind)
	}

	if e.Loc == nil {
		fmt.Fprintf(w, "%s: %s\n", kind, msg)
		return
	}

	locStr := e.Loc.String()
	if opts.Color {
		locStr = locColor.Sprint(locStr)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", locStr, kind, msg)

	if fs == nil || e.Loc.File == "" {
		return
	}
	f, ok := fs.GetByPath(e.Loc.File)
	if !ok {
		return
	}
	line := f.Line(e.Loc.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	// The caret column accounts for wide runes before the error position.
	pad := 0
	for i, r := range []rune(line) {
		if uint32(i)+1 >= e.Loc.Pos {
			break
		}
		pad += runewidth.RuneWidth(r)
	}
	caret := "^"
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), caret)
}

// PrettyBag renders every error in the bag, sorted.
func PrettyBag(w io.Writer, bag *Bag, fs *source.FileSet, opts PrettyOpts) {
	bag.Sort()
	for _, e := range bag.Items() {
		Pretty(w, e, fs, opts)
	}
}
