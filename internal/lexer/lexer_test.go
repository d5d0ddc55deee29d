package lexer_test

import (
	"testing"

	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/token"
)

// expectKinds checks the token kind sequence for an input.
func expectKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	stream, err := lexer.Lex("test.lh", []byte(input))
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", input, err)
	}
	if stream.Len() != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %v", len(expected), stream.Len(), input, stream)
	}
	for i, tok := range stream {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text())
		}
	}
}

// expectSingle checks that input produces exactly one token.
func expectSingle(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	stream, err := lexer.Lex("test.lh", []byte(input))
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", input, err)
	}
	if stream.Len() != 1 {
		t.Fatalf("expected 1 token for %q, got %d: %v", input, stream.Len(), stream)
	}
	tok := stream.At(0)
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v", kind, tok.Kind)
	}
	if tok.Text() != text {
		t.Errorf("expected text %q, got %q", text, tok.Text())
	}
}

// expectSyntaxError checks that lexing fails with a syntax error.
func expectSyntaxError(t *testing.T, input string) *diag.Error {
	t.Helper()
	_, err := lexer.Lex("test.lh", []byte(input))
	if err == nil {
		t.Fatalf("expected syntax error for %q", input)
	}
	if err.Kind != diag.KindSyntax {
		t.Fatalf("expected syntax kind for %q, got %v", input, err.Kind)
	}
	return err
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.UIntLiteral},
		{"123", token.UIntLiteral},
		{"0b1010", token.UIntLiteral},
		{"0o777", token.UIntLiteral},
		{"0x1f", token.UIntLiteral},
		{"0XAF", token.UIntLiteral},
		{"+3", token.IntLiteral},
		{"-42", token.IntLiteral},
		{"+0x1f", token.IntLiteral},
		{"1.5", token.FloatLiteral},
		{"+1.5", token.FloatLiteral},
		{"-0.25", token.FloatLiteral},
		{"1.5E3", token.FloatLiteral},
		{"1.5E-3", token.FloatLiteral},
		{"1.5E+10", token.FloatLiteral},
		{".5", token.FloatLiteral},
	}
	for _, c := range cases {
		expectSingle(t, c.input, c.kind, c.input)
	}
}

func TestNumericLiteralBoundaries(t *testing.T) {
	// 'g' is out of range for hexadecimal.
	expectSyntaxError(t, "0xg")
	// uppercase digits require the 0X prefix, and vice versa.
	expectSyntaxError(t, "0xAF")
	expectSyntaxError(t, "0Xaf")
	// two decimal points.
	if err := expectSyntaxError(t, "1.2.3"); err.Loc == nil || err.Loc.Pos != 4 {
		t.Errorf("second point should be located at 1:4, got %v", err.Loc)
	}
	// exponent must have digits, and its sign must follow 'E' directly.
	expectSyntaxError(t, "1.5E")
	expectSyntaxError(t, "1.5Ex")
	// stray letters invalidate the literal.
	expectSyntaxError(t, "123abc")
	expectSyntaxError(t, "0b12")
	expectSyntaxError(t, "0o8")
}

func TestUIntIsNotInt(t *testing.T) {
	// "3" is unsigned; only "+3"/"-3" are signed integers.
	expectSingle(t, "3", token.UIntLiteral, "3")
	expectSingle(t, "+3", token.IntLiteral, "+3")
}

func TestSymbols(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"main", token.ValueSymbol},
		{"foo-bar", token.ValueSymbol},
		{"T", token.TypeSymbol},
		{"Either", token.TypeSymbol},
		{"+", token.ValueSymbol},
		{"<=", token.ValueSymbol},
		{"<=>", token.ValueSymbol},
		{"fun", token.Keyword},
		{"export", token.Keyword},
		{"Empty", token.Keyword},
		{"Fun", token.Keyword},
		{"_", token.Keyword},
		{"mod.name", token.PathSymbol},
		{"mod.Type", token.PathSymbol},
	}
	for _, c := range cases {
		expectSingle(t, c.input, c.kind, c.input)
	}
}

func TestPunctuationSymbolLengthCap(t *testing.T) {
	err := expectSyntaxError(t, "<=>=")
	if err.Loc == nil || err.Loc.Pos != 4 {
		t.Errorf("cap violation should point at the fourth character, got %v", err.Loc)
	}
}

func TestPathSymbolCategory(t *testing.T) {
	stream, err := lexer.Lex("test.lh", []byte("mod.run mod.Type"))
	if err != nil {
		t.Fatal(err)
	}
	if !stream.At(0).IsValueCategory() {
		t.Errorf("mod.run should be a value path")
	}
	if !stream.At(1).IsTypeCategory() {
		t.Errorf("mod.Type should be a type path")
	}
}

func TestMalformedPaths(t *testing.T) {
	expectSyntaxError(t, "mod.")
	expectSyntaxError(t, "mod..name")
	expectSyntaxError(t, "mod.1x")
}

func TestStringsAndChars(t *testing.T) {
	expectSingle(t, `"hello"`, token.StringLiteral, `"hello"`)
	expectSingle(t, `"a\"b"`, token.StringLiteral, `"a\"b"`)
	expectSingle(t, `'a'`, token.CharLiteral, `'a'`)
	expectSingle(t, `'\n'`, token.CharLiteral, `'\n'`)

	expectSyntaxError(t, `"open`)
	expectSyntaxError(t, `'a`)
	expectSyntaxError(t, `''`)
}

func TestComments(t *testing.T) {
	expectKinds(t, "# just a note\nmain", []token.Kind{token.Comment, token.ValueSymbol})
	expectKinds(t, "#! doc line\nmain", []token.Kind{token.DocComment, token.ValueSymbol})
}

func TestEmptyLiteral(t *testing.T) {
	expectSingle(t, "()", token.EmptyLiteral, "()")
	// A space separates the parens into form delimiters.
	expectKinds(t, "( )", []token.Kind{token.FormStart, token.FormEnd})
}

func TestFormTokens(t *testing.T) {
	expectKinds(t, "(fun (prod a b) (+ a b))", []token.Kind{
		token.FormStart, token.Keyword,
		token.FormStart, token.Keyword, token.ValueSymbol, token.ValueSymbol, token.FormEnd,
		token.FormStart, token.ValueSymbol, token.ValueSymbol, token.ValueSymbol, token.FormEnd,
		token.FormEnd,
	})
}

func TestLocationTracking(t *testing.T) {
	stream, err := lexer.Lex("test.lh", []byte("(sig main\n  (Fun IO IO))"))
	if err != nil {
		t.Fatal(err)
	}
	// "main" sits at 1:6, "Fun" at 2:4.
	var mainLoc, funLoc [2]uint32
	for _, tok := range stream {
		switch tok.Text() {
		case "main":
			mainLoc = [2]uint32{tok.Loc().Line, tok.Loc().Pos}
		case "Fun":
			funLoc = [2]uint32{tok.Loc().Line, tok.Loc().Pos}
		}
	}
	if mainLoc != [2]uint32{1, 6} {
		t.Errorf("main location: expected 1:6, got %v", mainLoc)
	}
	if funLoc != [2]uint32{2, 4} {
		t.Errorf("Fun location: expected 2:4, got %v", funLoc)
	}
}

func TestLocationAcrossEscapes(t *testing.T) {
	// The escape inside the string must not desynchronize positions.
	stream, err := lexer.Lex("test.lh", []byte(`"a\nb" end`))
	if err != nil {
		t.Fatal(err)
	}
	last := stream.At(stream.Len() - 1)
	if last.Text() != "end" {
		t.Fatalf("expected trailing symbol, got %q", last.Text())
	}
	if last.Loc().Pos != 8 {
		t.Errorf("expected position 8, got %d", last.Loc().Pos)
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	err := expectSyntaxError(t, "\\")
	if err.Loc == nil || err.Loc.Pos != 1 {
		t.Errorf("expected location 1:1, got %v", err.Loc)
	}
}
