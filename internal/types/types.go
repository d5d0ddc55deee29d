package types

import (
	"fmt"
	"strings"
)

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Atoms.
	KindEmpty
	KindPrim
	KindUInt
	KindInt
	KindFloat
	KindSize
	KindChar
	KindString
	KindMem
	KindPath
	KindIO
	KindCtx
	KindType

	// Composites carrying an ordered sub-type sequence.
	KindSum
	KindProd
	KindSig
	KindFun
	KindApp
	KindAttrs
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindEmpty:
		return "Empty"
	case KindPrim:
		return "Prim"
	case KindUInt:
		return "UInt"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindSize:
		return "Size"
	case KindChar:
		return "Char"
	case KindString:
		return "String"
	case KindMem:
		return "Mem"
	case KindPath:
		return "Path"
	case KindIO:
		return "IO"
	case KindCtx:
		return "Ctx"
	case KindType:
		return "Type"
	case KindSum:
		return "Sum"
	case KindProd:
		return "Prod"
	case KindSig:
		return "Sig"
	case KindFun:
		return "Fun"
	case KindApp:
		return "App"
	case KindAttrs:
		return "Attrs"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsAtom reports whether the kind carries no sub-types.
func (k Kind) IsAtom() bool {
	return k >= KindEmpty && k <= KindType
}

// IsComposite reports whether the kind carries an ordered sub-type sequence.
func (k Kind) IsComposite() bool {
	return k >= KindSum && k <= KindAttrs
}

// kindByName maps a type keyword's surface spelling to its kind.
var kindByName = map[string]Kind{
	"Empty":  KindEmpty,
	"Prim":   KindPrim,
	"UInt":   KindUInt,
	"Int":    KindInt,
	"Float":  KindFloat,
	"Size":   KindSize,
	"Char":   KindChar,
	"String": KindString,
	"Mem":    KindMem,
	"Path":   KindPath,
	"IO":     KindIO,
	"Ctx":    KindCtx,
	"Type":   KindType,
	"Sum":    KindSum,
	"Prod":   KindProd,
	"Sig":    KindSig,
	"Fun":    KindFun,
	"App":    KindApp,
	"Attrs":  KindAttrs,
}

// KindByName resolves a type keyword to its kind. Names that are not type
// keywords resolve to KindUnknown.
func KindByName(name string) Kind {
	if k, ok := kindByName[name]; ok {
		return k
	}
	return KindUnknown
}

// Type is one node of a structural type tree. Atoms have no sub-types,
// composites own an ordered sequence, and Unknown carries the unresolved
// symbol's name.
type Type struct {
	Kind Kind
	Name string // only set for KindUnknown
	Subs []*Type
}

// Atom builds a sub-type-less type of the given kind.
func Atom(kind Kind) *Type {
	return &Type{Kind: kind}
}

// Composite builds a constructor type over the given sub-types.
func Composite(kind Kind, subs ...*Type) *Type {
	return &Type{Kind: kind, Subs: subs}
}

// Unknown builds the placeholder for a symbol not yet resolved to a
// definition.
func Unknown(name string) *Type {
	return &Type{Kind: KindUnknown, Name: name}
}

// Len returns the arity of a composite constructor and 1 for atoms and
// unknowns.
func (t *Type) Len() int {
	if t.Kind.IsComposite() {
		return len(t.Subs)
	}
	return 1
}

// Push appends a sub-type to a composite constructor. Atoms and unknowns
// ignore the push.
func (t *Type) Push(sub *Type) {
	if !t.Kind.IsComposite() {
		return
	}
	t.Subs = append(t.Subs, sub)
}

// IsComplete reports whether the tree contains no Unknown node.
func (t *Type) IsComplete() bool {
	if t.Kind == KindUnknown {
		return false
	}
	for _, sub := range t.Subs {
		if !sub.IsComplete() {
			return false
		}
	}
	return true
}

// Equal reports structural equality.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind || t.Name != other.Name || len(t.Subs) != len(other.Subs) {
		return false
	}
	for i, sub := range t.Subs {
		if !sub.Equal(other.Subs[i]) {
			return false
		}
	}
	return true
}

// String renders re-parseable surface syntax: the keyword for atoms, the
// unresolved name for unknowns, and an application form for composites.
func (t *Type) String() string {
	if t.Kind == KindUnknown {
		return t.Name
	}
	if len(t.Subs) == 0 {
		return t.Kind.String()
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(t.Kind.String())
	for _, sub := range t.Subs {
		sb.WriteByte(' ')
		sb.WriteString(sub.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
