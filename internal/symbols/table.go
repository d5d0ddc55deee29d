package symbols

// Entry records one named definition: the unqualified name and the index of
// the defining form within the file's form sequence. Anonymous definitions
// carry the wildcard as their name.
type Entry struct {
	Name string `msgpack:"name"`
	Form int    `msgpack:"form"`
}

// Table indexes the definitions, imports, and exports of a single file.
// It is append-only: duplicate names are recorded as-is, conflict detection
// is a resolution concern outside this package. Tables serialize with
// msgpack for the driver's disk cache.
type Table struct {
	File string `msgpack:"file"`

	// Named definition buckets.
	Types    []Entry `msgpack:"types"`    // (type T ...)
	Generics []Entry `msgpack:"generics"` // (types T A B)
	Sigs     []Entry `msgpack:"sigs"`     // (sig name T)
	Prims    []Entry `msgpack:"prims"`    // (prim Name UInt)
	Sums     []Entry `msgpack:"sums"`     // (sum Name (prod ...))
	Prods    []Entry `msgpack:"prods"`    // (prod Name (prod ...))
	Attrs    []Entry `msgpack:"attrs"`    // (attrs name (prod ...))
	Defs     []Entry `msgpack:"defs"`     // (def x v)

	// Unnamed form indices.
	Funs []int `msgpack:"funs"` // (fun ...) and anonymous functions
	Lets []int `msgpack:"lets"` // (let ...)
	Apps []int `msgpack:"apps"` // applications and case expressions

	// Import surface: module name to the indices of the import forms that
	// reference it, and imported names to their origin module.
	ImportedModules map[string][]int  `msgpack:"imported_modules"`
	ImportedValues  map[string]string `msgpack:"imported_values"`
	ImportedTypes   map[string]string `msgpack:"imported_types"`

	// Export surface: exported name to the index of the export form.
	ExportedValues map[string]int `msgpack:"exported_values"`
	ExportedTypes  map[string]int `msgpack:"exported_types"`
}

// NewTable builds an empty table for the given file name.
func NewTable(file string) *Table {
	return &Table{
		File:            file,
		ImportedModules: make(map[string][]int),
		ImportedValues:  make(map[string]string),
		ImportedTypes:   make(map[string]string),
		ExportedValues:  make(map[string]int),
		ExportedTypes:   make(map[string]int),
	}
}

// ForFile rebinds the table to the given file name. Tables are content
// derived, so one built for an identical file is valid for another; the
// receiver is returned as-is when the name already matches, otherwise a
// shallow copy carries the new name.
func (t *Table) ForFile(file string) *Table {
	if t.File == file {
		return t
	}
	rebound := *t
	rebound.File = file
	return &rebound
}

// Len returns the total number of indexed forms.
func (t *Table) Len() int {
	n := len(t.Types) + len(t.Generics) + len(t.Sigs) + len(t.Prims) +
		len(t.Sums) + len(t.Prods) + len(t.Attrs) + len(t.Defs) +
		len(t.Funs) + len(t.Lets) + len(t.Apps)
	for _, indices := range t.ImportedModules {
		n += len(indices)
	}
	n += len(t.ExportedValues) + len(t.ExportedTypes)
	return n
}

// Global collects the per-file tables of one compilation set. It is a
// composition root for an external resolver, not a resolution algorithm.
type Global struct {
	Files  []string          `msgpack:"files"`
	Tables map[string]*Table `msgpack:"tables"`
}

// NewGlobal builds an empty global table.
func NewGlobal() *Global {
	return &Global{Tables: make(map[string]*Table)}
}

// Add registers a per-file table. A table for an already-known file replaces
// the previous one without duplicating the file entry.
func (g *Global) Add(t *Table) {
	if _, known := g.Tables[t.File]; !known {
		g.Files = append(g.Files, t.File)
	}
	g.Tables[t.File] = t
}

// Table returns the table for the given file, if any.
func (g *Global) Table(file string) (*Table, bool) {
	t, ok := g.Tables[file]
	return t, ok
}

// Len returns the number of known files.
func (g *Global) Len() int { return len(g.Files) }
