package lexer

import (
	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/token"
)

// scanSymbol scans value symbols, type symbols, keywords, the wildcard, and
// dot-qualified path symbols.
func (lx *Lexer) scanSymbol() (token.Token, bool, *diag.Error) {
	mark := lx.cursor.Mark()
	for isSymbolChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	run := lx.cursor.RunFrom(mark)

	punctOnly := true
	hasAlnum := false
	hasDot := false
	for _, c := range run {
		if !isSymbolPunct(c.Ch) {
			punctOnly = false
		}
		if isAlnum(c.Ch) {
			hasAlnum = true
		}
		if c.Ch == '.' {
			hasDot = true
		}
	}

	// A symbol composed only of punctuation characters is capped at 3.
	if punctOnly {
		if len(run) > maxPunctSymbolLen {
			return token.Token{}, false, diag.Syntax(run[maxPunctSymbolLen].Loc,
				"punctuation symbol longer than %d characters", maxPunctSymbolLen)
		}
		chunk := source.Merge(run)
		if chunk.Value == token.Wildcard {
			return token.New(token.Keyword, chunk), true, nil
		}
		return token.New(token.ValueSymbol, chunk), true, nil
	}

	// A dot inside a mixed symbol qualifies it as a path.
	if hasDot && hasAlnum {
		return lx.pathToken(run)
	}

	chunk := source.Merge(run)
	text := chunk.Value
	switch {
	case token.IsKeyword(text):
		return token.New(token.Keyword, chunk), true, nil
	case token.IsTypeName(text):
		return token.New(token.TypeSymbol, chunk), true, nil
	default:
		return token.New(token.ValueSymbol, chunk), true, nil
	}
}

// pathToken validates a dot-qualified symbol and splits it into one chunk per
// segment plus one per separator, so the lexeme round-trips exactly. Whether
// the path denotes a type or a value follows from its unqualified suffix.
func (lx *Lexer) pathToken(run []source.CharChunk) (token.Token, bool, *diag.Error) {
	var chunks []source.StringChunk
	segStart := 0
	for i, c := range run {
		if c.Ch != '.' {
			continue
		}
		if i == segStart {
			return token.Token{}, false, diag.Syntax(c.Loc, "path symbol has an empty segment")
		}
		if err := validateSegment(run[segStart:i]); err != nil {
			return token.Token{}, false, err
		}
		chunks = append(chunks, source.Merge(run[segStart:i]))
		chunks = append(chunks, source.Merge(run[i:i+1]))
		segStart = i + 1
	}
	if segStart >= len(run) {
		return token.Token{}, false, diag.Syntax(run[len(run)-1].Loc, "path symbol has an empty segment")
	}
	if err := validateSegment(run[segStart:]); err != nil {
		return token.Token{}, false, err
	}
	chunks = append(chunks, source.Merge(run[segStart:]))

	return token.New(token.PathSymbol, chunks...), true, nil
}

// validateSegment enforces the unqualified symbol grammar on one path
// segment: it must start with an alphabetic or punctuation character, never
// with a digit.
func validateSegment(seg []source.CharChunk) *diag.Error {
	if len(seg) == 0 {
		return nil
	}
	if !isSymbolStart(seg[0].Ch) {
		return diag.Syntax(seg[0].Loc, "path segment may not start with %q", string(seg[0].Ch))
	}
	return nil
}
