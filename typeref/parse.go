package typeref

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName = errors.New("type name is empty")
	ErrEmptyBase = errors.New("array suffix requires a base type name")
)

// aliases maps alternative spellings to canonical type names. Registration is
// meant for program setup, before guessing starts; lookups do not lock.
var aliases = map[string]string{
	"int":    NameInteger,
	"bool":   NameBoolean,
	"double": NameFloat,
	"str":    NameString,
	"assoc":  NameAssoc,
	"map":    NameAssoc,
	"nil":    NameNull,
}

// RegisterAlias maps an alternative spelling to a canonical type name.
// Aliases apply before the array suffix is resolved, so "ints[]" and
// "ints" may both be aliased via the base name.
func RegisterAlias(alias, canonical string) {
	aliases[strings.ToLower(alias)] = canonical
}

// Parse turns a single type-name string into a descriptor. A trailing "[]"
// denotes array-of; the suffix may be stacked ("integer[][]"). Built-in names
// and aliases match case-insensitively, class names are taken verbatim.
func Parse(s string) (Ref, error) {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutSuffix(s, "[]"); ok {
		if rest == "" {
			return Ref{}, ErrEmptyBase
		}

		elem, err := Parse(rest)
		if err != nil {
			return Ref{}, err
		}
		return ArrayOf(elem), nil
	}

	if s == "" {
		return Ref{}, ErrEmptyName
	}

	if canonical, ok := aliases[strings.ToLower(s)]; ok {
		s = canonical
	}
	return Named(s), nil
}

// ParseList parses an ordered list of type-name strings into a Set.
// Duplicate entries collapse to their first occurrence.
func ParseList(names []string) (Set, error) {
	set := make(Set, 0, len(names))
	for _, name := range names {
		ref, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse type %q: %w", name, err)
		}
		set = set.With(ref)
	}
	return set, nil
}

// ParseExpr parses a pipe-separated candidate expression such as
// "integer|float|string[]" into a Set.
func ParseExpr(s string) (Set, error) {
	return ParseList(strings.Split(s, "|"))
}
