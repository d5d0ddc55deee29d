package lexer

import (
	"larch/internal/diag"
	"larch/internal/token"
)

// scanNumber scans unsigned, signed, and float literals.
//
// Unsigned integers are bare decimal digits or '0' plus a base letter:
// 0b (binary), 0o (octal), 0x (lowercase hex), 0X (uppercase hex). Digit
// ranges are enforced per base, case-sensitively. Signed integers are a
// +/- prefix over a valid unsigned literal. Floats carry exactly one decimal
// point, an optional leading sign, and an optional 'E' exponent immediately
// after the mantissa, whose own sign (if present) must immediately follow.
func (lx *Lexer) scanNumber() (token.Token, bool, *diag.Error) {
	mark := lx.cursor.Mark()
	signed := false
	isFloat := false

	if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
		signed = true
		lx.cursor.Bump()
	}

	switch {
	case lx.cursor.Peek() == '.':
		// Leading-dot float: .5
		isFloat = true
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "expected digit after decimal point")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}

	case lx.cursor.Peek() == '0' && lx.hasBaseLetterNext():
		lx.cursor.Bump() // '0'
		letter := lx.cursor.Bump().Ch
		digit, baseName := baseDigit(letter)
		if lx.cursor.EOF() {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "expected digit after %s prefix", baseName)
		}
		if !digit(lx.cursor.Peek()) {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(),
				"invalid digit %q in %s literal", string(lx.cursor.Peek()), baseName)
		}
		for digit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		// A base-prefixed literal cannot continue with a fraction or any
		// other symbol character.
		if isSymbolChar(lx.cursor.Peek()) {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(),
				"invalid digit %q in %s literal", string(lx.cursor.Peek()), baseName)
		}

	default:
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == '.' {
			isFloat = true
			lx.cursor.Bump()
			if !isDec(lx.cursor.Peek()) {
				return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "expected digit after decimal point")
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// Exponent marker. Only floats carry one, and only 'E' is recognized;
	// it must sit immediately after the mantissa.
	if isFloat && lx.cursor.Peek() == 'E' {
		lx.cursor.Bump()
		if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(), "expected digit in exponent")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// The literal must stop at a delimiter. A second decimal point, a stray
	// letter, or any other symbol character invalidates it.
	if ch := lx.cursor.Peek(); isSymbolChar(ch) {
		if ch == '.' && isFloat {
			return token.Token{}, false, diag.Syntax(lx.cursor.Loc(),
				"float literal may contain only one decimal point")
		}
		return token.Token{}, false, diag.Syntax(lx.cursor.Loc(),
			"unexpected character %q in numeric literal", string(ch))
	}

	kind := token.UIntLiteral
	switch {
	case isFloat:
		kind = token.FloatLiteral
	case signed:
		kind = token.IntLiteral
	}
	return emit(kind, lx.cursor.RunFrom(mark)), true, nil
}

// hasBaseLetterNext reports whether the character after the current '0' is a
// base letter (b, o, x, X).
func (lx *Lexer) hasBaseLetterNext() bool {
	_, r1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	switch r1 {
	case 'b', 'o', 'x', 'X':
		return true
	}
	return false
}
