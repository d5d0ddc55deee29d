package lexer

import "unicode"

// Fixed character classes of the surface syntax. Loaded once, read-only.

const (
	commentMark = '#'
	docMark     = '!'
	escapeChar  = '\\'
	singleQuote = '\''
	doubleQuote = '"'
	formStart   = '('
	formEnd     = ')'
)

// symbolPunct is the fixed 23-character set a symbol may start with.
var symbolPunct = [...]rune{
	'!', '$', '%', '&', '*', '+', ',', '-', '.', '/', ':', ';',
	'<', '=', '>', '?', '@', '[', ']', '^', '_', '|', '~',
}

// maxPunctSymbolLen caps symbols composed only of punctuation characters.
const maxPunctSymbolLen = 3

var symbolPunctSet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(symbolPunct))
	for _, r := range symbolPunct {
		set[r] = struct{}{}
	}
	return set
}()

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isSymbolPunct(r rune) bool {
	_, ok := symbolPunctSet[r]
	return ok
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= 0x80 && unicode.IsLetter(r))
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(r rune) bool { return isAlpha(r) || isDec(r) }

// isSymbolStart: a symbol must begin with an alphabetic character or one of
// the symbol punctuation characters.
func isSymbolStart(r rune) bool {
	return isAlpha(r) || isSymbolPunct(r)
}

// isSymbolChar: anything that is not whitespace, a paren, a quote, the escape
// char, or the comment mark may continue a symbol.
func isSymbolChar(r rune) bool {
	if r == 0 || isWhitespace(r) {
		return false
	}
	switch r {
	case formStart, formEnd, singleQuote, doubleQuote, commentMark, escapeChar:
		return false
	}
	return true
}

// Per-base digit predicates. Hex digit ranges are case-sensitive: 'x' accepts
// lowercase digits, 'X' uppercase.
func isBin(r rune) bool      { return r == '0' || r == '1' }
func isOct(r rune) bool      { return r >= '0' && r <= '7' }
func isHexLower(r rune) bool { return isDec(r) || (r >= 'a' && r <= 'f') }
func isHexUpper(r rune) bool { return isDec(r) || (r >= 'A' && r <= 'F') }

// baseDigit returns the digit predicate and base name for a base letter.
func baseDigit(letter rune) (func(rune) bool, string) {
	switch letter {
	case 'b':
		return isBin, "binary"
	case 'o':
		return isOct, "octal"
	case 'x':
		return isHexLower, "hexadecimal"
	case 'X':
		return isHexUpper, "hexadecimal"
	}
	return nil, ""
}
