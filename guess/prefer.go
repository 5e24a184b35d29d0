package guess

import (
	"strings"

	"typeguess/internal/common"
	"typeguess/kind"
	"typeguess/typeref"
)

// removal accumulates the type names an elimination rule marked for removal.
// Rules are cumulative: every rule runs, the marks apply at the end.
type removal struct {
	names map[string]struct{}
	dates bool
}

func newRemoval() *removal {
	return &removal{names: map[string]struct{}{}}
}

func (rm *removal) markNames(names ...string) {
	for _, n := range names {
		rm.names[strings.ToLower(n)] = struct{}{}
	}
}

func (rm *removal) markDates() {
	rm.dates = true
}

func (rm *removal) matches(g *Guesser, r typeref.Ref) bool {
	if r.IsArray() || r.IsUnion() {
		return false
	}
	if rm.dates && g.isDateLike(r) {
		return true
	}

	_, ok := rm.names[strings.ToLower(r.Name())]
	return ok
}

// reduceScalarPrefs resolves the "is this an int, a float, a bool or a
// string" ambiguity for scalar values. The rule order is authoritative:
// later rules assume earlier ones already ran.
func (g *Guesser) reduceScalarPrefs(snap kind.Snapshot, set typeref.Set) typeref.Set {
	if !common.IsMultiple(set) || !snap.IsScalar() {
		return set
	}

	preferred := set.Filter(func(r typeref.Ref) bool {
		return r.Is(typeref.NameString) || r.Is(typeref.NameInteger) ||
			r.Is(typeref.NameFloat) || r.Is(typeref.NameBoolean) || g.isDateLike(r)
	})

	// fewer than two preferred types: nothing to rank, narrow directly
	if !common.IsMultiple(preferred) {
		if common.IsEmpty(preferred) {
			return set
		}
		return preferred
	}

	hasDate := preferred.Any(g.isDateLike)
	hasInt := preferred.ContainsName(typeref.NameInteger)
	hasFloat := preferred.ContainsName(typeref.NameFloat)
	hasBool := preferred.ContainsName(typeref.NameBoolean)
	hasString := preferred.ContainsName(typeref.NameString)

	rm := newRemoval()

	// 1. a date-like reading outranks a raw string reading
	if hasDate {
		rm.markNames(typeref.NameString)
	}

	// 2. numbers outrank dates
	if hasInt {
		rm.markDates()
	}

	// 3. boolean against the rest; the branch structure is asymmetric on
	// purpose, the last arm only fires when neither earlier one did
	switch {
	case hasBool && snap.Kind == kind.Bool:
		rm.markNames(typeref.NameInteger, typeref.NameFloat, typeref.NameString)
	case hasInt || hasFloat:
		rm.markNames(typeref.NameBoolean, typeref.NameString)
	case hasBool && hasString:
		rm.markNames(typeref.NameBoolean)
	}

	// 4. integer vs float, decided by the value itself
	if hasInt && hasFloat {
		switch {
		case snap.Kind == kind.Float || (snap.Kind == kind.String && kind.HasDecimalPoint(snap.Str)):
			rm.markNames(typeref.NameInteger)
		case snap.Kind != kind.String || kind.IsNumericString(snap.Str):
			rm.markNames(typeref.NameFloat)
		default:
			// a non-numeric string supports neither numeric reading; the
			// empty-set guard below turns this into a no-decision
			rm.markNames(typeref.NameInteger, typeref.NameFloat)
		}
	}

	out := preferred.Filter(func(r typeref.Ref) bool { return !rm.matches(g, r) })
	if common.IsEmpty(out) {
		return set
	}
	return out
}

// reduceArrayPrefs mirrors reduceScalarPrefs over the T[] vocabulary. The
// plain array candidate always wins over subtype guessing, so its presence
// skips the stage entirely.
func (g *Guesser) reduceArrayPrefs(snap kind.Snapshot, set typeref.Set) typeref.Set {
	if !common.IsMultiple(set) || !snap.IsIterable() || set.ContainsName(typeref.NameArray) {
		return set
	}

	hasDateArr := set.Any(func(r typeref.Ref) bool { return r.IsArray() && g.isDateLike(r.Elem()) })
	hasIntArr := set.ContainsArrayOf(typeref.NameInteger)
	hasFloatArr := set.ContainsArrayOf(typeref.NameFloat)
	hasBoolArr := set.ContainsArrayOf(typeref.NameBoolean)

	rm := newRemoval()

	if hasDateArr || hasBoolArr {
		rm.markNames(typeref.NameString)
	}
	if hasIntArr {
		rm.markDates()
	}
	if hasIntArr || hasFloatArr {
		rm.markNames(typeref.NameBoolean, typeref.NameString)
	}
	if hasIntArr && hasFloatArr {
		anyFloat, allNumeric := scanNumericElems(snap)
		switch {
		case anyFloat:
			rm.markNames(typeref.NameInteger)
		case allNumeric:
			rm.markNames(typeref.NameFloat)
		default:
			rm.markNames(typeref.NameInteger, typeref.NameFloat)
		}
	}

	out := set.Filter(func(r typeref.Ref) bool {
		return !r.IsArray() || !rm.matches(g, r.Elem())
	})
	if common.IsEmpty(out) {
		return set
	}
	return out
}

// scanNumericElems inspects every element once: anyFloat is true when some
// element is a float or a numeric string with a decimal point, allNumeric
// when every element reads as a number.
func scanNumericElems(snap kind.Snapshot) (anyFloat, allNumeric bool) {
	allNumeric = true
	for _, el := range snap.Elems() {
		es := kind.Of(el)
		switch {
		case es.Kind == kind.Float:
			anyFloat = true
		case es.Kind == kind.Int:
		case es.Kind == kind.String && kind.HasDecimalPoint(es.Str):
			anyFloat = true
		case es.Kind == kind.String && kind.IsNumericString(es.Str):
		default:
			allNumeric = false
		}
	}
	return anyFloat, allNumeric
}

// preferArrayForScalar reconsiders the array reading a scalar value can still
// take: a scalar coerces into a single-element array of a guessed type.
func (g *Guesser) preferArrayForScalar(snap kind.Snapshot, set typeref.Set) typeref.Set {
	if !common.IsMultiple(set) {
		return set
	}
	if !snap.IsScalar() && !(snap.Kind == kind.Object && snap.IsAnonymous) {
		return set
	}

	if set.ContainsName(typeref.NameArray) {
		out := set.Filter(func(r typeref.Ref) bool { return !r.IsArray() })
		if common.IsEmpty(out) {
			return set
		}
		return out
	}

	if !set.All(typeref.Ref.IsArray) {
		return set
	}

	var elemTypes typeref.Set
	for _, r := range set {
		elemTypes = elemTypes.With(r.Elem())
	}

	if guessed, ok := g.GuessFor(snap.Value, elemTypes); ok && !guessed.IsUnion() {
		return typeref.Set{typeref.ArrayOf(guessed)}
	}
	return set
}
