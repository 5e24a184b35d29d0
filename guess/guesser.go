package guess

import (
	"typeguess/internal/common"
	"typeguess/kind"
	"typeguess/typeref"
)

// Guesser resolves which declared type a runtime value most plausibly
// represents. The zero value is not usable, construct with New or NewWith.
type Guesser struct {
	lookup Lookup
	dates  DateParser
}

// New returns a Guesser with the reflect-backed type register and the
// layout-list date parser.
func New() *Guesser {
	return NewWith(nil, nil)
}

// NewWith returns a Guesser with explicit collaborators. A nil lookup or
// parser falls back to the default.
func NewWith(lookup Lookup, dates DateParser) *Guesser {
	if lookup == nil {
		lookup = NewRegister()
	}
	if dates == nil {
		dates = DefaultDateParser()
	}
	return &Guesser{lookup: lookup, dates: dates}
}

// GuessFor narrows the candidate set for value and returns the resolved
// descriptor. The second result is false when no decision could be reached,
// which is a normal outcome for ambiguous or impossible inputs.
//
// The null candidate never survives. A singleton set short-circuits: a single
// declared type is never second-guessed.
func (g *Guesser) GuessFor(value any, types typeref.Set) (typeref.Ref, bool) {
	set := removeNull(types)

	if common.IsEmpty(set) {
		return typeref.Ref{}, false
	}
	if common.IsSingle(set) {
		return set[0], true
	}

	snap := kind.Of(value)

	set = g.restrictToPossible(snap, set)
	set = g.reduceScalarPrefs(snap, set)
	set = g.reduceArrayPrefs(snap, set)
	set = g.preferArrayForScalar(snap, set)

	return g.conclude(set)
}

func removeNull(types typeref.Set) typeref.Set {
	return types.Filter(func(r typeref.Ref) bool { return !r.Is(typeref.NameNull) })
}

// conclude maps the surviving set onto the final answer. The only surviving
// ambiguity expressed as a result is the traversable-or-array-of-T pair,
// rendered as "A|B[]" in the pair's declaration order.
func (g *Guesser) conclude(set typeref.Set) (typeref.Ref, bool) {
	switch len(set) {
	case 0:
		return typeref.Ref{}, false

	case 1:
		return set[0], true

	case 2:
		first, second := set[0], set[1]
		firstTrav, secondTrav := g.isTraversableType(first), g.isTraversableType(second)
		if firstTrav == secondTrav {
			return typeref.Ref{}, false
		}
		if (firstTrav && second.IsArray()) || (secondTrav && first.IsArray()) {
			return typeref.UnionOf(first, second), true
		}
		return typeref.Ref{}, false

	default:
		return typeref.Ref{}, false
	}
}

func (g *Guesser) isTraversableType(r typeref.Ref) bool {
	return !r.IsArray() && !r.IsUnion() && !r.IsBuiltin() && g.lookup.IsTraversable(r.Name())
}

func (g *Guesser) isDateLike(r typeref.Ref) bool {
	return !r.IsArray() && !r.IsUnion() && !r.IsBuiltin() && g.lookup.IsDateLike(r.Name())
}
