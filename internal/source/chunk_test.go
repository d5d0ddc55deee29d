package source_test

import (
	"testing"

	"larch/internal/source"
)

func TestLocationAdvance(t *testing.T) {
	loc := source.NewLocation("main.lh")
	if loc.Line != 1 || loc.Pos != 1 {
		t.Fatalf("expected 1:1, got %d:%d", loc.Line, loc.Pos)
	}

	next := loc.NextPos()
	if next.Line != 1 || next.Pos != 2 {
		t.Errorf("NextPos: expected 1:2, got %d:%d", next.Line, next.Pos)
	}
	// The original location must be untouched.
	if loc.Pos != 1 {
		t.Errorf("NextPos mutated receiver: %v", loc)
	}

	down := next.NextLine()
	if down.Line != 2 || down.Pos != 1 {
		t.Errorf("NextLine: expected 2:1, got %d:%d", down.Line, down.Pos)
	}
}

func TestLocationString(t *testing.T) {
	loc := source.Location{File: "lib.lh", Line: 3, Pos: 14}
	if got := loc.String(); got != "lib.lh:3:14" {
		t.Errorf("expected %q, got %q", "lib.lh:3:14", got)
	}
	anon := source.Location{Line: 3, Pos: 14}
	if got := anon.String(); got != "3:14" {
		t.Errorf("expected %q, got %q", "3:14", got)
	}
}

func TestMergeTakesFirstLocation(t *testing.T) {
	loc := source.NewLocation("t.lh")
	run := []source.CharChunk{
		{Ch: 'f', Loc: loc},
		{Ch: 'u', Loc: loc.NextPos()},
		{Ch: 'n', Loc: loc.NextPos().NextPos()},
	}
	chunk := source.Merge(run)
	if chunk.Value != "fun" {
		t.Errorf("expected value %q, got %q", "fun", chunk.Value)
	}
	if chunk.Loc != loc {
		t.Errorf("expected location %v, got %v", loc, chunk.Loc)
	}
}

func TestMergeEmptyRun(t *testing.T) {
	chunk := source.Merge(nil)
	if chunk.Value != "" || !chunk.Loc.IsZero() {
		t.Errorf("expected zero chunk, got %+v", chunk)
	}
}
