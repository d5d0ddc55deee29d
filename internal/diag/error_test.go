package diag_test

import (
	"strings"
	"testing"

	"larch/internal/diag"
	"larch/internal/source"
)

func TestErrorString(t *testing.T) {
	loc := source.Location{File: "main.lh", Line: 2, Pos: 7}
	e := diag.Semantic(loc, "expected a type symbol, got %q", "x")

	want := `main.lh:2:7: semantic error: expected a type symbol, got "x"`
	if got := e.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSyntaxAtEndHasNoLocation(t *testing.T) {
	e := diag.SyntaxAtEnd("unexpected end of input: unclosed form")
	if e.Loc != nil {
		t.Errorf("expected nil location, got %v", e.Loc)
	}
	if e.Kind != diag.KindSyntax {
		t.Errorf("expected syntax kind, got %v", e.Kind)
	}
	if !strings.Contains(e.Error(), "unclosed form") {
		t.Errorf("message lost: %q", e.Error())
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Syntax(source.Location{File: "b.lh", Line: 1, Pos: 1}, "second"))
	bag.Add(diag.Syntax(source.Location{File: "a.lh", Line: 9, Pos: 1}, "first-late"))
	bag.Add(diag.Syntax(source.Location{File: "a.lh", Line: 2, Pos: 4}, "first-early"))
	bag.Sort()

	items := bag.Items()
	if items[0].Msg != "first-early" || items[1].Msg != "first-late" || items[2].Msg != "second" {
		t.Errorf("wrong order: %v %v %v", items[0].Msg, items[1].Msg, items[2].Msg)
	}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(1)
	if !bag.Add(diag.SyntaxAtEnd("one")) {
		t.Fatal("first add rejected")
	}
	if bag.Add(diag.SyntaxAtEnd("two")) {
		t.Fatal("second add should hit the limit")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", bag.Len())
	}
}

func TestPrettyCaret(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("t.lh", []byte("(type T x)\n"))

	var sb strings.Builder
	e := diag.Semantic(source.Location{File: "t.lh", Line: 1, Pos: 9}, "expected a type symbol")
	diag.Pretty(&sb, e, fs, diag.PrettyOpts{})

	out := sb.String()
	if !strings.Contains(out, "t.lh:1:9: semantic error: expected a type symbol") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "(type T x)") {
		t.Errorf("missing context line: %q", out)
	}
	if !strings.Contains(out, "        ^") {
		t.Errorf("caret misplaced: %q", out)
	}
}
