// Package typeref models declared type references: built-in names, class
// names, array types like "integer[]" and two-member unions like
// "SomeClass|string[]". Refs are immutable values; Set is an ordered
// candidate list with set-style helpers.
package typeref

import "strings"

// Built-in type names. Built-ins match case-insensitively; anything else is
// treated as a class/interface name.
const (
	NameString   = "string"
	NameInteger  = "integer"
	NameFloat    = "float"
	NameBoolean  = "boolean"
	NameArray    = "array"
	NameAssoc    = "associative-array"
	NameObject   = "object"
	NameResource = "resource"
	NameNull     = "null"
)

var builtinNames = map[string]struct{}{
	NameString:   {},
	NameInteger:  {},
	NameFloat:    {},
	NameBoolean:  {},
	NameArray:    {},
	NameAssoc:    {},
	NameObject:   {},
	NameResource: {},
	NameNull:     {},
}

// Ref is an immutable type descriptor: a built-in or named type, an
// array-of-T, or the synthesized two-way union the conclusion stage produces.
// The zero Ref means "no type".
type Ref struct {
	name string
	elem *Ref
	pair *unionPair
}

type unionPair struct {
	left, right Ref
}

// Named returns a descriptor for a built-in or class/interface name.
// Built-in names are canonicalized to lower case.
func Named(name string) Ref {
	if isBuiltinName(name) {
		name = strings.ToLower(name)
	}
	return Ref{name: name}
}

// ArrayOf returns the array-of-T descriptor for the given element type.
func ArrayOf(elem Ref) Ref {
	el := elem
	return Ref{elem: &el}
}

// UnionOf returns the two-way union descriptor. Only the conclusion stage
// produces unions; they are never accepted as guesser input.
func UnionOf(left, right Ref) Ref {
	return Ref{pair: &unionPair{left: left, right: right}}
}

// IsZero reports whether r is the "no type" descriptor.
func (r Ref) IsZero() bool { return r.name == "" && r.elem == nil && r.pair == nil }

// IsArray reports whether r is an array-of-T descriptor.
func (r Ref) IsArray() bool { return r.elem != nil }

// IsUnion reports whether r is a synthesized union descriptor.
func (r Ref) IsUnion() bool { return r.pair != nil }

// Elem returns the element type of an array-of-T descriptor, or the zero Ref.
func (r Ref) Elem() Ref {
	if r.elem == nil {
		return Ref{}
	}
	return *r.elem
}

// Union returns the two halves of a union descriptor, in declaration order.
func (r Ref) Union() (left, right Ref) {
	if r.pair == nil {
		return Ref{}, Ref{}
	}
	return r.pair.left, r.pair.right
}

// Name returns the type name for built-in and named descriptors, empty for
// array and union forms.
func (r Ref) Name() string { return r.name }

// IsBuiltin reports whether r names one of the built-in types.
func (r Ref) IsBuiltin() bool {
	return r.elem == nil && r.pair == nil && isBuiltinName(r.name)
}

// Is reports whether r names the given type, ignoring case.
func (r Ref) Is(name string) bool {
	return r.elem == nil && r.pair == nil && strings.EqualFold(r.name, name)
}

// Equal reports whether two descriptors denote the same type. Name comparison
// ignores case; array and union forms compare structurally.
func (r Ref) Equal(o Ref) bool {
	switch {
	case r.elem != nil:
		return o.elem != nil && r.elem.Equal(*o.elem)
	case r.pair != nil:
		return o.pair != nil && r.pair.left.Equal(o.pair.left) && r.pair.right.Equal(o.pair.right)
	default:
		return o.elem == nil && o.pair == nil && strings.EqualFold(r.name, o.name)
	}
}

// String renders the descriptor: "T" for named types, "T[]" for arrays and
// "A|B" for unions.
func (r Ref) String() string {
	switch {
	case r.elem != nil:
		return r.elem.String() + "[]"
	case r.pair != nil:
		return r.pair.left.String() + "|" + r.pair.right.String()
	default:
		return r.name
	}
}

func isBuiltinName(name string) bool {
	_, ok := builtinNames[strings.ToLower(name)]
	return ok
}
