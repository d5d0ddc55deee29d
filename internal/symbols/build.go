package symbols

import (
	"larch/internal/ast"
	"larch/internal/token"
)

// Builder populates a Table as recognized forms are produced, one file per
// builder. Indices follow the order forms are added.
type Builder struct {
	table *Table
	next  int
}

// NewBuilder starts a table for the given file name.
func NewBuilder(file string) *Builder {
	return &Builder{table: NewTable(file)}
}

// Add indexes one recognized form under the next form index.
func (b *Builder) Add(node ast.SemanticForm) {
	index := b.next
	b.next++
	t := b.table

	switch n := node.(type) {
	case *ast.TypeForm:
		t.Types = append(t.Types, Entry{Name: n.Name.Text(), Form: index})
	case *ast.TypesForm:
		t.Generics = append(t.Generics, Entry{Name: n.Name.Text(), Form: index})
	case *ast.SigForm:
		t.Sigs = append(t.Sigs, Entry{Name: n.Name.Text(), Form: index})
	case *ast.AnonSigForm:
		t.Sigs = append(t.Sigs, Entry{Name: token.Wildcard, Form: index})
	case *ast.PrimForm:
		t.Prims = append(t.Prims, Entry{Name: n.Name.Text(), Form: index})
	case *ast.AnonPrimForm:
		t.Prims = append(t.Prims, Entry{Name: token.Wildcard, Form: index})
	case *ast.SumForm:
		t.Sums = append(t.Sums, Entry{Name: n.Name.Text(), Form: index})
	case *ast.AnonSumForm:
		t.Sums = append(t.Sums, Entry{Name: token.Wildcard, Form: index})
	case *ast.ProdDefForm:
		t.Prods = append(t.Prods, Entry{Name: n.Name.Text(), Form: index})
	case *ast.AttrsForm:
		t.Attrs = append(t.Attrs, Entry{Name: n.Name.Text(), Form: index})
	case *ast.AnonAttrsForm:
		t.Attrs = append(t.Attrs, Entry{Name: token.Wildcard, Form: index})
	case *ast.DefForm:
		t.Defs = append(t.Defs, Entry{Name: n.Name.Text(), Form: index})
	case *ast.FunForm, *ast.AnonFunForm:
		t.Funs = append(t.Funs, index)
	case *ast.LetForm:
		t.Lets = append(t.Lets, index)
	case *ast.FunAppForm, *ast.TypeAppForm, *ast.MixedAppForm, *ast.CaseForm:
		t.Apps = append(t.Apps, index)
	case *ast.ImportForm:
		module := n.Module.Text()
		t.ImportedModules[module] = append(t.ImportedModules[module], index)
		for _, name := range n.ValueNames {
			t.ImportedValues[name.Text()] = module
		}
		for _, name := range n.TypeNames {
			t.ImportedTypes[name.Text()] = module
		}
	case *ast.ExportForm:
		for _, name := range n.ValueNames {
			t.ExportedValues[name.Text()] = index
		}
		for _, name := range n.TypeNames {
			t.ExportedTypes[name.Text()] = index
		}
	}
}

// Table returns the populated table.
func (b *Builder) Table() *Table { return b.table }

// Build indexes a whole file's recognized forms in order.
func Build(file string, forms []ast.SemanticForm) *Table {
	b := NewBuilder(file)
	for _, form := range forms {
		b.Add(form)
	}
	return b.Table()
}
