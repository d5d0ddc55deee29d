package parser_test

import (
	"strings"
	"testing"

	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/parser"
)

// parse lexes and parses a single form.
func parse(t *testing.T, input string) *parser.Form {
	t.Helper()
	stream, err := lexer.Lex("test.lh", []byte(input))
	if err != nil {
		t.Fatalf("lex %q: %v", input, err)
	}
	form, perr := parser.Parse(stream.FilterTrivia())
	if perr != nil {
		t.Fatalf("parse %q: %v", input, perr)
	}
	return form
}

func parseError(t *testing.T, input string) *diag.Error {
	t.Helper()
	stream, err := lexer.Lex("test.lh", []byte(input))
	if err != nil {
		t.Fatalf("lex %q: %v", input, err)
	}
	_, perr := parser.Parse(stream)
	if perr == nil {
		t.Fatalf("expected parse error for %q", input)
	}
	return perr
}

func TestParseFlatForm(t *testing.T) {
	form := parse(t, "(+ a b 10)")
	if form.Name() != "+" {
		t.Errorf("expected head +, got %q", form.Name())
	}
	if form.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", form.Len())
	}
	if form.At(2).String() != "10" {
		t.Errorf("expected literal 10, got %q", form.At(2).String())
	}
}

func TestParseNestedForm(t *testing.T) {
	form := parse(t, "(fun (prod a b) (+ a b))")
	if form.Name() != "fun" {
		t.Errorf("expected head fun, got %q", form.Name())
	}
	params, ok := form.At(0).(*parser.Form)
	if !ok {
		t.Fatalf("expected nested form, got %T", form.At(0))
	}
	if params.Name() != "prod" || params.Len() != 2 {
		t.Errorf("params: got %q with %d elements", params.Name(), params.Len())
	}
	body, ok := form.At(1).(*parser.Form)
	if !ok || body.Name() != "+" {
		t.Errorf("body: expected (+ ...), got %v", form.At(1))
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"(type T Empty)",
		"(fun (prod a b c d) (+ a b c d 10))",
		"(attrs x (prod attr1 attr2 attr3))",
		"(export (prod A))",
		"(sig main (Fun IO IO))",
		"(let (def x 5) (+ x 1))",
	}
	for _, input := range inputs {
		form := parse(t, input)
		if got := form.String(); got != input {
			t.Errorf("round-trip failed:\n  in:  %q\n  out: %q", input, got)
		}
	}
}

func TestUnclosedFormIsSyntacticAtEnd(t *testing.T) {
	err := parseError(t, "(fun (prod a b) (+ a b)")
	if err.Kind != diag.KindSyntax {
		t.Errorf("expected syntax kind, got %v", err.Kind)
	}
	if err.Loc != nil {
		t.Errorf("end-of-input error should carry no location, got %v", err.Loc)
	}
	if !strings.Contains(err.Msg, "never closed") {
		t.Errorf("unexpected message: %q", err.Msg)
	}
}

func TestTrailingTokens(t *testing.T) {
	err := parseError(t, "(type T Empty) extra")
	if err.Kind != diag.KindSyntax {
		t.Errorf("expected syntax kind, got %v", err.Kind)
	}
	if err.Loc == nil || err.Loc.Pos != 16 {
		t.Errorf("expected error at the trailing token, got %v", err.Loc)
	}
}

func TestNotAForm(t *testing.T) {
	err := parseError(t, "main")
	if err.Kind != diag.KindSyntax {
		t.Errorf("expected syntax kind, got %v", err.Kind)
	}
}

func TestBadHead(t *testing.T) {
	err := parseError(t, "(42 a b)")
	if err.Kind != diag.KindSyntax {
		t.Errorf("expected syntax kind, got %v", err.Kind)
	}
}

func TestUnfilteredCommentIsParsingError(t *testing.T) {
	stream, lerr := lexer.Lex("test.lh", []byte("(fun # note\n (prod) ())"))
	if lerr != nil {
		t.Fatal(lerr)
	}
	_, err := parser.Parse(stream)
	if err == nil || err.Kind != diag.KindParsing {
		t.Fatalf("expected parsing error, got %v", err)
	}
}

func TestParseUnit(t *testing.T) {
	stream, lerr := lexer.Lex("test.lh", []byte("(type T Empty)\n(export (prod T))\n"))
	if lerr != nil {
		t.Fatal(lerr)
	}
	forms, err := parser.ParseUnit(stream.FilterTrivia())
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 2 || forms[0].Name() != "type" || forms[1].Name() != "export" {
		t.Errorf("unexpected forms: %v", forms)
	}
}

func TestDepthGuard(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < parser.MaxDepth+8; i++ {
		sb.WriteString("(f ")
	}
	sb.WriteString("x")
	for i := 0; i < parser.MaxDepth+8; i++ {
		sb.WriteString(")")
	}
	stream, lerr := lexer.Lex("test.lh", []byte(sb.String()))
	if lerr != nil {
		t.Fatal(lerr)
	}
	_, err := parser.Parse(stream)
	if err == nil || err.Kind != diag.KindSyntax || !strings.Contains(err.Msg, "nesting") {
		t.Fatalf("expected depth guard error, got %v", err)
	}
}

func TestWildcardHeadAllowed(t *testing.T) {
	form := parse(t, "(_ (prod a) (f a))")
	if form.Name() != "_" {
		t.Errorf("expected wildcard head, got %q", form.Name())
	}
}

func TestEmptyLiteralLeaf(t *testing.T) {
	form := parse(t, "(fun (prod) ())")
	if form.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", form.Len())
	}
	leaf, ok := form.At(1).(parser.Leaf)
	if !ok {
		t.Fatalf("expected leaf, got %T", form.At(1))
	}
	if leaf.String() != "()" {
		t.Errorf("expected (), got %q", leaf.String())
	}
}
