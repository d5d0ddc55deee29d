package token

// Wildcard is the reserved "ignore" symbol. A form whose name position holds
// it produces the anonymous variant of the corresponding construct.
const Wildcard = "_"

// valueKeywords are the reserved lowercase form heads.
var valueKeywords = map[string]struct{}{
	"type":   {},
	"types":  {},
	"sig":    {},
	"fun":    {},
	"let":    {},
	"def":    {},
	"case":   {},
	"of":     {},
	"attrs":  {},
	"export": {},
	"import": {},
	"prod":   {},
	"sum":    {},
	"prim":   {},
	Wildcard: {},
}

// typeKeywords are the built-in type names, atoms and constructors alike.
var typeKeywords = map[string]struct{}{
	"Empty":  {},
	"Prim":   {},
	"UInt":   {},
	"Int":    {},
	"Float":  {},
	"Size":   {},
	"Char":   {},
	"String": {},
	"Mem":    {},
	"Path":   {},
	"IO":     {},
	"Ctx":    {},
	"Type":   {},
	"Sum":    {},
	"Prod":   {},
	"Sig":    {},
	"Fun":    {},
	"App":    {},
	"Attrs":  {},
}

// IsValueKeyword reports whether text is a reserved form-head keyword.
func IsValueKeyword(text string) bool {
	_, ok := valueKeywords[text]
	return ok
}

// IsTypeKeyword reports whether text names a built-in type.
func IsTypeKeyword(text string) bool {
	_, ok := typeKeywords[text]
	return ok
}

// IsKeyword reports whether text is reserved in either keyword table.
func IsKeyword(text string) bool {
	return IsValueKeyword(text) || IsTypeKeyword(text)
}

// IsTypeName reports whether an unqualified symbol name denotes a type by
// lexical convention: a leading uppercase ASCII letter.
func IsTypeName(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
