package ast

import (
	"larch/internal/diag"
	"larch/internal/parser"
	"larch/internal/token"
)

// BranchForm is one arm of a case: (of <pattern> <body>). The pattern is a
// primitive literal, a value symbol, or the wildcard.
type BranchForm struct {
	origin
	Pattern token.Token
	Body    ValueElem
}

// NewBranchForm validates an (of ...) form.
func NewBranchForm(f *parser.Form) (*BranchForm, *diag.Error) {
	if err := headKeyword(f, "of"); err != nil {
		return nil, err
	}
	if f.Len() < 1 {
		return nil, missingElem(f, "a pattern")
	}
	leaf, ok := f.At(0).(parser.Leaf)
	if !ok {
		return nil, diag.Semantic(f.At(0).Loc(), "case pattern must be a literal, symbol, or wildcard, got a form")
	}
	pat := leaf.Tok
	if !pat.Kind.IsLiteral() && pat.Kind != token.ValueSymbol && !pat.IsWildcard() {
		return nil, diag.Semantic(pat.Loc(), "case pattern must be a literal, symbol, or wildcard, got %q", pat.Text())
	}
	if f.Len() < 2 {
		return nil, missingElem(f, "a body")
	}
	body, err := valueElem(f.At(1))
	if err != nil {
		return nil, err
	}
	if f.Len() > 2 {
		return nil, extraElem(f, f.At(2))
	}
	return &BranchForm{origin: origin{form: f}, Pattern: pat, Body: body}, nil
}

// CaseForm scrutinizes a value over one or more branches:
// (case x (of 0 zero) (of _ other)).
type CaseForm struct {
	origin
	Scrutinee ValueElem
	Branches  []*BranchForm
}

// NewCaseForm validates a (case ...) form.
func NewCaseForm(f *parser.Form) (*CaseForm, *diag.Error) {
	if err := headKeyword(f, "case"); err != nil {
		return nil, err
	}
	if f.Len() < 1 {
		return nil, missingElem(f, "a scrutinee")
	}
	scrutinee, err := valueElem(f.At(0))
	if err != nil {
		return nil, err
	}
	if f.Len() < 2 {
		return nil, missingElem(f, "at least one branch")
	}
	c := &CaseForm{origin: origin{form: f}, Scrutinee: scrutinee}
	for _, item := range f.Items[1:] {
		sub, ok := item.(*parser.Form)
		if !ok {
			return nil, diag.Semantic(item.Loc(), "case branch must be an (of ...) form, got %q", item.String())
		}
		branch, err := NewBranchForm(sub)
		if err != nil {
			return nil, err
		}
		c.Branches = append(c.Branches, branch)
	}
	return c, nil
}
