package diag

import "sort"

// Bag collects errors across independent source units, one per failing file.
// A single unit never accumulates more than one error (first error stops the
// stage); the bag exists so that a directory run can render every file's
// failure in a stable order.
type Bag struct {
	items []*Error
	max   int
}

// NewBag creates a bag holding at most max errors.
func NewBag(max int) *Bag {
	return &Bag{items: make([]*Error, 0, max), max: max}
}

// Add appends an error, honoring the limit. Returns false if the bag is full.
func (b *Bag) Add(e *Error) bool {
	if e == nil {
		return true
	}
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, e)
	return true
}

// Len returns the number of collected errors.
func (b *Bag) Len() int { return len(b.items) }

// Empty reports whether no errors were collected.
func (b *Bag) Empty() bool { return len(b.items) == 0 }

// Items returns the collected errors. Callers must not modify the slice.
func (b *Bag) Items() []*Error { return b.items }

// Sort orders errors by file, line, position, then kind for deterministic
// output across runs.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		ei, ej := b.items[i], b.items[j]
		li, lj := locOf(ei), locOf(ej)
		if li.File != lj.File {
			return li.File < lj.File
		}
		if li.Line != lj.Line {
			return li.Line < lj.Line
		}
		if li.Pos != lj.Pos {
			return li.Pos < lj.Pos
		}
		return ei.Kind < ej.Kind
	})
}

func locOf(e *Error) sortKey {
	if e.Loc == nil {
		return sortKey{}
	}
	return sortKey{File: e.Loc.File, Line: e.Loc.Line, Pos: e.Loc.Pos}
}

type sortKey struct {
	File string
	Line uint32
	Pos  uint32
}
