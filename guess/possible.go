package guess

import (
	"typeguess/internal/common"
	"typeguess/kind"
	"typeguess/typeref"
)

// restrictToPossible drops candidates the value shape rules out. A filter
// that would rule out everything keeps the incoming set instead: over-
// elimination must not end the guess early, the conclusion stage is the only
// place a no-decision is allowed to surface.
func (g *Guesser) restrictToPossible(snap kind.Snapshot, set typeref.Set) typeref.Set {
	if !common.IsMultiple(set) {
		return set
	}

	var possible typeref.Set
	switch {
	case snap.IsScalar():
		possible = g.possibleForScalar(snap, set)
	case snap.Kind == kind.List:
		possible = g.possibleForList(snap, set)
	case snap.IsAssociative():
		possible = g.possibleForMapping(set)
	case snap.Kind == kind.Object || snap.Kind == kind.Time:
		possible = g.possibleForObject(snap, set)
	default:
		possible = possibleForExact(snap, set)
	}

	if common.IsEmpty(possible) {
		return set
	}
	return possible
}

func (g *Guesser) possibleForScalar(snap kind.Snapshot, set typeref.Set) typeref.Set {
	return set.Filter(func(r typeref.Ref) bool {
		switch {
		case r.IsArray():
			// a scalar never directly satisfies an array-of-T; the array
			// reading is reconsidered by preferArrayForScalar
			return false
		case r.Is(typeref.NameString):
			return snap.Kind != kind.Bool
		case r.Is(typeref.NameInteger):
			return snap.Kind != kind.String || kind.IsNumericString(snap.Str)
		case r.Is(typeref.NameFloat):
			return snap.Kind != kind.Bool &&
				(snap.Kind != kind.String || kind.IsNumericString(snap.Str))
		case r.Is(typeref.NameBoolean):
			return snap.Kind != kind.String || kind.IsBoolString(snap.Str)
		case r.IsBuiltin():
			// array, associative-array, object, resource: structural shapes
			// a scalar cannot take
			return false
		case g.isDateLike(r):
			return snap.Kind != kind.Bool && snap.Kind != kind.Float &&
				(snap.Kind != kind.String || g.dates.IsDate(snap.Str))
		default:
			// unknown class: compatibility cannot be disproved from a scalar
			return true
		}
	})
}

func (g *Guesser) possibleForList(snap kind.Snapshot, set typeref.Set) typeref.Set {
	plainArray := set.ContainsName(typeref.NameArray)

	possible := set.Filter(func(r typeref.Ref) bool {
		switch {
		case r.IsArray():
			// an explicit plain-array expectation suppresses subtype guessing
			return !plainArray
		case r.Is(typeref.NameArray):
			return true
		case r.IsBuiltin():
			return false
		default:
			return g.lookup.IsTraversable(r.Name())
		}
	})

	return g.narrowElemTypes(snap, possible)
}

// narrowElemTypes guesses every element of the value against the declared
// element types and drops array-of-T candidates whose T did not survive for
// all elements. No declared element types means nothing to narrow.
func (g *Guesser) narrowElemTypes(snap kind.Snapshot, set typeref.Set) typeref.Set {
	var elemTypes typeref.Set
	for _, r := range set {
		if r.IsArray() {
			elemTypes = elemTypes.With(r.Elem())
		}
	}
	if common.IsEmpty(elemTypes) {
		return set
	}

	survivors := elemTypes
	for _, el := range snap.Elems() {
		guessed, ok := g.GuessFor(el, elemTypes)
		if !ok {
			survivors = nil
			break
		}

		survivors = survivors.Filter(func(t typeref.Ref) bool { return t.Equal(guessed) })
		if common.IsEmpty(survivors) {
			break
		}
	}

	return set.Filter(func(r typeref.Ref) bool {
		return !r.IsArray() || survivors.Contains(r.Elem())
	})
}

// possibleForMapping keeps what an associative structure can plausibly
// become: objects, arrays and named classes, never a scalar.
func (g *Guesser) possibleForMapping(set typeref.Set) typeref.Set {
	return set.Filter(func(r typeref.Ref) bool {
		switch {
		case r.Is(typeref.NameString), r.Is(typeref.NameInteger), r.Is(typeref.NameFloat),
			r.Is(typeref.NameBoolean), r.Is(typeref.NameResource):
			return false
		case g.isDateLike(r):
			return false
		default:
			return true
		}
	})
}

func (g *Guesser) possibleForObject(snap kind.Snapshot, set typeref.Set) typeref.Set {
	// an instance-matched class outranks the string rendering the value
	// happens to expose
	instanceMatched := set.Any(func(r typeref.Ref) bool {
		return !r.IsArray() && !r.IsUnion() && !r.IsBuiltin() &&
			g.lookup.IsInstance(snap.Value, r.Name())
	})

	return set.Filter(func(r typeref.Ref) bool {
		switch {
		case r.IsArray():
			return false
		case r.Is(typeref.NameString):
			return snap.HasStringForm && !instanceMatched
		case r.Is(typeref.NameObject), r.Is(typeref.NameArray):
			return snap.IsAnonymous
		case r.IsBuiltin():
			return false
		default:
			return g.lookup.IsInstance(snap.Value, r.Name())
		}
	})
}

// possibleForExact handles resources and anything else opaque: the only
// possible candidate is an exact match on the value's runtime kind.
func possibleForExact(snap kind.Snapshot, set typeref.Set) typeref.Set {
	return set.Filter(func(r typeref.Ref) bool {
		switch snap.Kind {
		case kind.Resource:
			return r.Is(typeref.NameResource)
		case kind.Null:
			return r.Is(typeref.NameNull)
		default:
			return false
		}
	})
}
