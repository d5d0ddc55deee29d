package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; the lexer never emits one, it
	// exists as the zero value.
	Invalid Kind = iota
	// Comment represents a line comment introduced by '#'.
	Comment
	// DocComment represents a documentation comment introduced by '#!'.
	DocComment
	// Keyword represents a reserved value or type keyword.
	Keyword
	// EmptyLiteral represents the empty literal '()'.
	EmptyLiteral
	// UIntLiteral represents an unsigned integer literal.
	UIntLiteral
	// IntLiteral represents a signed integer literal.
	IntLiteral
	// FloatLiteral represents a floating point literal.
	FloatLiteral
	// CharLiteral represents a character literal.
	CharLiteral
	// StringLiteral represents a string literal.
	StringLiteral
	// ValueSymbol represents an unqualified value-category symbol.
	ValueSymbol
	// TypeSymbol represents an unqualified type-category symbol.
	TypeSymbol
	// PathSymbol represents a dot-qualified symbol referencing another module.
	PathSymbol
	// FormStart represents '('.
	FormStart
	// FormEnd represents ')'.
	FormEnd
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "Comment"
	case DocComment:
		return "DocComment"
	case Keyword:
		return "Keyword"
	case EmptyLiteral:
		return "EmptyLiteral"
	case UIntLiteral:
		return "UIntLiteral"
	case IntLiteral:
		return "IntLiteral"
	case FloatLiteral:
		return "FloatLiteral"
	case CharLiteral:
		return "CharLiteral"
	case StringLiteral:
		return "StringLiteral"
	case ValueSymbol:
		return "ValueSymbol"
	case TypeSymbol:
		return "TypeSymbol"
	case PathSymbol:
		return "PathSymbol"
	case FormStart:
		return "FormStart"
	case FormEnd:
		return "FormEnd"
	}
	return "Invalid"
}

// IsTrivia reports whether the kind is filtered before semantic parsing.
func (k Kind) IsTrivia() bool {
	return k == Comment || k == DocComment
}

// IsLiteral reports whether the kind is a primitive literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case EmptyLiteral, UIntLiteral, IntLiteral, FloatLiteral, CharLiteral, StringLiteral:
		return true
	default:
		return false
	}
}

// IsSymbol reports whether the kind names something (value, type, or path).
func (k Kind) IsSymbol() bool {
	return k == ValueSymbol || k == TypeSymbol || k == PathSymbol
}
