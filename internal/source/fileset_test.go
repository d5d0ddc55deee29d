package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"larch/internal/source"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lh", []byte("(type T Empty)\n"))

	f := fs.Get(id)
	if f.Path != "test.lh" {
		t.Errorf("expected path test.lh, got %q", f.Path)
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag")
	}

	got, ok := fs.GetByPath("test.lh")
	if !ok || got.ID != id {
		t.Errorf("GetByPath failed: ok=%v", ok)
	}
}

func TestFileSetLoadNormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.lh")
	if err := os.WriteFile(path, []byte("(fun (prod) ())\r\n(export ())\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Errorf("expected FileNormalizedCRLF flag")
	}
	for _, b := range f.Content {
		if b == '\r' {
			t.Fatalf("content still contains CR: %q", f.Content)
		}
	}
}

func TestFileSetLoadMissing(t *testing.T) {
	fs := source.NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.lh")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.lh", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		n    uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, c := range cases {
		if got := f.Line(c.n); got != c.want {
			t.Errorf("Line(%d): expected %q, got %q", c.n, c.want, got)
		}
	}
}
