package parser

import (
	"larch/internal/diag"
	"larch/internal/token"
)

// MaxDepth bounds form nesting so adversarial input fails cleanly instead of
// exhausting the stack.
const MaxDepth = 512

// Parse consumes exactly one balanced form covering the whole stream.
// Trailing tokens after the matching FormEnd are a structural error.
func Parse(s token.Stream) (*Form, *diag.Error) {
	form, next, err := ParseAt(s, 0)
	if err != nil {
		return nil, err
	}
	if next < s.Len() {
		tok := s.At(next)
		return nil, diag.Syntax(tok.Loc(), "unexpected token %q after form", tok.Text())
	}
	return form, nil
}

// ParseUnit consumes a whole source unit as a sequence of top-level forms.
func ParseUnit(s token.Stream) ([]*Form, *diag.Error) {
	var forms []*Form
	offset := 0
	for offset < s.Len() {
		form, next, err := ParseAt(s, offset)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
		offset = next
	}
	return forms, nil
}

// ParseAt finds the FormEnd matching the FormStart at offset and produces the
// Form covering exactly that balanced range, returning the offset past it.
func ParseAt(s token.Stream, offset int) (*Form, int, *diag.Error) {
	return parseAt(s, offset, 0)
}

func parseAt(s token.Stream, offset, depth int) (*Form, int, *diag.Error) {
	if offset >= s.Len() {
		return nil, offset, diag.SyntaxAtEnd("unexpected end of input: expected a form")
	}
	if depth >= MaxDepth {
		return nil, offset, diag.Syntax(s.At(offset).Loc(), "form nesting exceeds %d levels", MaxDepth)
	}

	open := s.At(offset)
	if open.Kind != token.FormStart {
		return nil, offset, diag.Syntax(open.Loc(), "expected %q to start a form, got %q", "(", open.Text())
	}
	offset++

	if offset >= s.Len() {
		return nil, offset, diag.SyntaxAtEnd("unexpected end of input: form opened at %s is never closed", open.Loc())
	}

	head := s.At(offset)
	if err := checkHead(head); err != nil {
		return nil, offset, err
	}
	offset++

	form := &Form{Open: open, Head: head}
	for offset < s.Len() {
		tok := s.At(offset)
		switch tok.Kind {
		case token.FormEnd:
			form.Close = tok
			return form, offset + 1, nil

		case token.FormStart:
			sub, next, err := parseAt(s, offset, depth+1)
			if err != nil {
				return nil, offset, err
			}
			form.Items = append(form.Items, sub)
			offset = next

		case token.Comment, token.DocComment:
			return nil, offset, diag.Parsing(tok.Loc(), "unexpected %s token: trivia must be filtered before parsing", tok.Kind)

		case token.Invalid:
			return nil, offset, diag.Syntax(tok.Loc(), "invalid token %q", tok.Text())

		default:
			form.Items = append(form.Items, Leaf{Tok: tok})
			offset++
		}
	}
	return nil, offset, diag.SyntaxAtEnd("unexpected end of input: form opened at %s is never closed", open.Loc())
}

// checkHead enforces that a form's name is a recognized value or type symbol,
// a path, or a keyword (the wildcard included).
func checkHead(head token.Token) *diag.Error {
	switch head.Kind {
	case token.Keyword, token.ValueSymbol, token.TypeSymbol, token.PathSymbol:
		return nil
	case token.Comment, token.DocComment:
		return diag.Parsing(head.Loc(), "unexpected %s token: trivia must be filtered before parsing", head.Kind)
	default:
		return diag.Syntax(head.Loc(), "form name must be a symbol or keyword, got %q", head.Text())
	}
}
