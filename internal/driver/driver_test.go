package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"larch/internal/diag"
	"larch/internal/driver"
	"larch/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.lh", "(type T Empty)\n")

	fs := source.NewFileSet()
	stream, err := driver.TokenizeFile(fs, path)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if stream.Len() != 5 {
		t.Errorf("expected 5 tokens, got %d", stream.Len())
	}
}

func TestTokenizeFileMissing(t *testing.T) {
	fs := source.NewFileSet()
	_, err := driver.TokenizeFile(fs, filepath.Join(t.TempDir(), "missing.lh"))
	if err == nil || err.Kind != diag.KindIO {
		t.Fatalf("expected IO error, got %v", err)
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.lh", "(sig main (Fun IO IO))\n(fun (prod a) (print a))\n")

	fs := source.NewFileSet()
	result, err := driver.CheckFile(fs, path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(result.Forms) != 2 {
		t.Errorf("expected 2 forms, got %d", len(result.Forms))
	}
	if len(result.Table.Sigs) != 1 || result.Table.Sigs[0].Name != "main" {
		t.Errorf("sigs = %v", result.Table.Sigs)
	}
	if len(result.Table.Funs) != 1 {
		t.Errorf("funs = %v", result.Table.Funs)
	}
}

func TestCheckSourceFirstErrorStops(t *testing.T) {
	fs := source.NewFileSet()
	_, err := driver.CheckSource(fs, "bad.lh", []byte("(type T Empty)\n(type T x)\n(sig t)\n"))
	if err == nil || err.Kind != diag.KindSemantic {
		t.Fatalf("expected semantic error, got %v", err)
	}
	if err.Loc == nil || err.Loc.Line != 2 {
		t.Errorf("error should point at line 2, got %v", err.Loc)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.lh", "(type T Empty)\n")
	writeFile(t, dir, "b.lh", "(sig main (Fun IO IO))\n")
	writeFile(t, dir, "c.lh", "(type T x)\n") // semantic failure
	writeFile(t, dir, "skip.txt", "not a source file")

	fileSet, results, global, bag, err := driver.CheckDir(context.Background(), dir, driver.Options{})
	if err != nil {
		t.Fatalf("check dir: %v", err)
	}
	if fileSet.Len() != 3 {
		t.Errorf("expected 3 loaded files, got %d", fileSet.Len())
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if bag.Len() != 1 {
		t.Fatalf("expected 1 aggregated error, got %d", bag.Len())
	}
	if bag.Items()[0].Kind != diag.KindSemantic {
		t.Errorf("expected semantic error, got %v", bag.Items()[0])
	}
	if global.Len() != 2 {
		t.Errorf("expected 2 tables in global, got %d", global.Len())
	}
}

func TestCheckDirEvents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.lh", "(type T Empty)\n")

	var stages []driver.Stage
	_, _, _, _, err := driver.CheckDir(context.Background(), dir, driver.Options{
		Observer: func(ev driver.Event) {
			if ev.Err != nil {
				t.Errorf("unexpected event error: %v", ev.Err)
			}
			stages = append(stages, ev.Stage)
		},
	})
	if err != nil {
		t.Fatalf("check dir: %v", err)
	}
	want := []driver.Stage{driver.StageLoad, driver.StageLex, driver.StageParse, driver.StageCheck}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i, s := range want {
		if stages[i] != s {
			t.Fatalf("stages = %v, want %v", stages, want)
		}
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, global, bag, err := driver.CheckDir(context.Background(), t.TempDir(), driver.Options{})
	if err != nil {
		t.Fatalf("check dir: %v", err)
	}
	if len(results) != 0 || global.Len() != 0 || !bag.Empty() {
		t.Error("empty directory should produce an empty run")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.lh", "(type T Empty)\n")

	// First run populates the cache.
	_, results, _, _, err := driver.CheckDir(context.Background(), dir, driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if results[0].FromCache {
		t.Fatal("first run must not hit the cache")
	}

	// Second run over identical content hits it.
	_, results, global, _, err := driver.CheckDir(context.Background(), dir, driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !results[0].FromCache {
		t.Fatal("second run should hit the cache")
	}
	table, ok := global.Table(results[0].Path)
	if !ok {
		t.Fatal("cached table missing from global")
	}
	if len(table.Types) != 1 || table.Types[0].Name != "T" {
		t.Errorf("cached table corrupted: %+v", table)
	}
}

func TestDiskCacheIdenticalFiles(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.lh", "(type T Empty)\n")
	writeFile(t, dir, "b.lh", "(type T Empty)\n")

	if _, _, _, _, err := driver.CheckDir(context.Background(), dir, driver.Options{Cache: cache}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// A warm cache hit may have been written by the other file; the table
	// must still come back bound to the requesting path.
	_, results, global, _, err := driver.CheckDir(context.Background(), dir, driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if global.Len() != 2 {
		t.Fatalf("global should know 2 files, got %d: %v", global.Len(), global.Files)
	}
	for _, r := range results {
		if !r.FromCache {
			t.Errorf("%s: expected a cache hit", r.Path)
		}
		table, ok := global.Table(r.Path)
		if !ok {
			t.Fatalf("%s: table missing from global", r.Path)
		}
		if table.File != r.Path {
			t.Errorf("%s: cached table claims file %q", r.Path, table.File)
		}
	}
}

func TestDiskCacheMissOnChange(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "a.lh", "(type T Empty)\n")
	if _, _, _, _, err := driver.CheckDir(context.Background(), dir, driver.Options{Cache: cache}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// Changed content gets a fresh digest, so the entry cannot be reused.
	if err := os.WriteFile(path, []byte("(type U Int)\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	_, results, _, _, err := driver.CheckDir(context.Background(), dir, driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if results[0].FromCache {
		t.Fatal("changed file must not hit the cache")
	}
	if len(results[0].Result.Table.Types) != 1 || results[0].Result.Table.Types[0].Name != "U" {
		t.Errorf("table = %+v", results[0].Result.Table)
	}
}
