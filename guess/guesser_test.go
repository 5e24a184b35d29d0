package guess_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeguess/guess"
	"typeguess/typeref"
)

func mustSet(t *testing.T, names ...string) typeref.Set {
	t.Helper()

	set, err := typeref.ParseList(names)
	require.NoError(t, err)
	return set
}

// guessString runs a guess and renders the result, "" meaning no decision.
func guessString(g *guess.Guesser, value any, set typeref.Set) string {
	resolved, ok := g.GuessFor(value, set)
	if !ok {
		return ""
	}
	return resolved.String()
}

func TestScalarResolution(t *testing.T) {
	t.Parallel()

	g := guess.New()
	types := mustSet(t, "integer", "float", "boolean", "string")

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"boolean value", true, "boolean"},
		{"decimal string", "10.44", "float"},
		{"integer string", "100", "integer"},
		{"plain word", "foo", "string"},
		{"integer value", 42, "integer"},
		{"float value", 10.44, "float"},
		{"boolean string prefers string", "yes", "string"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, guessString(g, tc.value, types))
		})
	}
}

func TestNonNumericStringAgainstNumericCandidates(t *testing.T) {
	t.Parallel()

	g := guess.New()

	_, ok := g.GuessFor("foo", mustSet(t, "integer", "float"))
	assert.False(t, ok, "a non-numeric string must not resolve against purely numeric candidates")

	// the non-finite spellings parse as floats but fit no candidate type
	_, ok = g.GuessFor("NaN", mustSet(t, "integer", "float"))
	assert.False(t, ok)
}

func TestSingletonShortCircuit(t *testing.T) {
	t.Parallel()

	g := guess.New()

	// a single declared type is never second-guessed
	assert.Equal(t, "integer", guessString(g, "clearly not a number", mustSet(t, "integer")))
	assert.Equal(t, "string[]", guessString(g, true, mustSet(t, "string[]")))
}

func TestEmptyAndNullCandidates(t *testing.T) {
	t.Parallel()

	g := guess.New()

	_, ok := g.GuessFor("anything", typeref.Set{})
	assert.False(t, ok)

	_, ok = g.GuessFor("anything", mustSet(t, "null"))
	assert.False(t, ok, "null alone leaves nothing to choose")

	assert.Equal(t, "integer", guessString(g, "5", mustSet(t, "null", "integer")))
}

func TestNullNeverResolves(t *testing.T) {
	t.Parallel()

	g := guess.New()

	sets := [][]string{
		{"null", "integer", "string"},
		{"null", "boolean"},
		{"string", "null"},
	}
	values := []any{nil, "5", true, "foo"}

	for _, names := range sets {
		for _, value := range values {
			if resolved, ok := g.GuessFor(value, mustSet(t, names...)); ok {
				assert.NotEqual(t, "null", resolved.String())
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	g := guess.New()
	types := mustSet(t, "integer", "float", "boolean", "string")

	first := guessString(g, "10.44", types)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, guessString(g, "10.44", types))
	}
}

func TestDateLikeResolution(t *testing.T) {
	t.Parallel()

	reg := guess.NewRegister()
	guess.AddType[time.Time](reg, "DateTime")
	g := guess.NewWith(reg, nil)

	t.Run("date string outranks raw string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "DateTime", guessString(g, "2020-01-02", mustSet(t, "DateTime", "string")))
	})

	t.Run("numbers outrank dates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "integer", guessString(g, 5, mustSet(t, "integer", "DateTime")))
	})

	t.Run("non-date string falls back to string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "string", guessString(g, "not a date", mustSet(t, "DateTime", "string")))
	})

	t.Run("time value matches the date-like class", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "DateTime", guessString(g, time.Now(), mustSet(t, "DateTime", "string")))
	})
}

// Pins the asymmetric boolean/string/date interaction of the scalar
// preference rules: the boolean-vs-string arm only fires when no numeric
// candidate was present, and a date candidate removes string first.
func TestBooleanStringDateInteraction(t *testing.T) {
	t.Parallel()

	reg := guess.NewRegister()
	guess.AddType[time.Time](reg, "DateTime")
	g := guess.NewWith(reg, nil)

	tests := []struct {
		name  string
		value any
		types []string
		want  string
	}{
		{"bool string prefers string", "on", []string{"boolean", "string"}, "string"},
		{"true bool wins outright", true, []string{"boolean", "string", "DateTime"}, "boolean"},
		{"date string vs bool and string", "2020-01-02", []string{"boolean", "string", "DateTime"}, "DateTime"},
		{"plain word vs bool and string", "foo", []string{"boolean", "string"}, "string"},
		{"numeric candidate silences bool", "1", []string{"boolean", "integer"}, "integer"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, guessString(g, tc.value, mustSet(t, tc.types...)))
		})
	}
}

func TestArraySubtypeResolution(t *testing.T) {
	t.Parallel()

	g := guess.New()
	types := mustSet(t, "integer[]", "float[]")

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"integer elements", []any{1, 2, 3}, "integer[]"},
		{"float elements", []any{1.0, 2.5}, "float[]"},
		{"mixed numeric elements", []any{1, 2.5}, "float[]"},
		{"numeric strings", []any{"1", "2"}, "integer[]"},
		{"decimal strings", []any{"1.5", "2"}, "float[]"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, guessString(g, tc.value, types))
		})
	}

	t.Run("non-numeric elements stay undecided", func(t *testing.T) {
		t.Parallel()

		_, ok := g.GuessFor([]any{"foo", "bar"}, types)
		assert.False(t, ok)
	})
}

func TestPlainArrayPrecedence(t *testing.T) {
	t.Parallel()

	g := guess.New()

	// an explicit plain-array expectation always suppresses subtype guessing
	assert.Equal(t, "array", guessString(g, []any{1, 2}, mustSet(t, "array", "integer[]")))
	assert.Equal(t, "array", guessString(g, []any{"a"}, mustSet(t, "integer[]", "array")))
}

func TestScalarPrefersArrayOfGuessedType(t *testing.T) {
	t.Parallel()

	g := guess.New()

	// a scalar can still be wrapped into a single-element array
	assert.Equal(t, "integer[]", guessString(g, "100", mustSet(t, "integer[]", "float[]")))
	assert.Equal(t, "float[]", guessString(g, 2.5, mustSet(t, "integer[]", "float[]")))

	// plain array outranks every subtype form for scalars too
	assert.Equal(t, "array", guessString(g, "100", mustSet(t, "array", "integer[]")))
}

func TestUnionSynthesis(t *testing.T) {
	t.Parallel()

	reg := guess.NewRegister()
	reg.AddTraversable("ArrayObject", reflect.TypeOf([]any{}))
	reg.AddTraversable("Collection", reflect.TypeOf([]any{}))
	g := guess.NewWith(reg, nil)

	t.Run("traversable declared first", func(t *testing.T) {
		t.Parallel()

		resolved, ok := g.GuessFor([]any{"a", "b"}, mustSet(t, "ArrayObject", "string[]"))
		require.True(t, ok, "surviving pair should synthesize a union:\n%s", spew.Sdump(resolved))
		assert.True(t, resolved.IsUnion())
		assert.Equal(t, "ArrayObject|string[]", resolved.String())
	})

	t.Run("array form declared first", func(t *testing.T) {
		t.Parallel()

		resolved, ok := g.GuessFor([]any{"a"}, mustSet(t, "string[]", "ArrayObject"))
		require.True(t, ok)
		assert.Equal(t, "string[]|ArrayObject", resolved.String())
	})

	t.Run("element narrowing picks a single array", func(t *testing.T) {
		t.Parallel()

		// the elements decide between the array forms, so no union is needed
		assert.Equal(t, "integer[]", guessString(g, []any{1}, mustSet(t, "integer[]", "string[]")))
	})

	t.Run("two traversable survivors stay undecided", func(t *testing.T) {
		t.Parallel()

		// a union needs exactly one traversable half and one array half
		_, ok := g.GuessFor([]any{"a"}, mustSet(t, "ArrayObject", "Collection"))
		assert.False(t, ok)
	})
}

func TestAssociativeValues(t *testing.T) {
	t.Parallel()

	g := guess.New()

	// an associative structure can become an object or an array, never a scalar
	assert.Equal(t, "object", guessString(g, map[string]any{"a": 1}, mustSet(t, "string", "object")))
	assert.Equal(t, "array", guessString(g, map[string]any{"a": 1}, mustSet(t, "integer", "array")))
}

type customer struct {
	Name string
}

type invoice struct {
	ID string
}

func (i invoice) String() string { return "invoice " + i.ID }

func TestObjectValues(t *testing.T) {
	t.Parallel()

	reg := guess.NewRegister()
	guess.AddType[customer](reg, "Customer")
	guess.AddType[invoice](reg, "Invoice")
	g := guess.NewWith(reg, nil)

	t.Run("instance of a registered class", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Customer", guessString(g, customer{Name: "a"}, mustSet(t, "Customer", "string")))
	})

	t.Run("instance match outranks the string rendering", func(t *testing.T) {
		t.Parallel()

		// invoice exposes a String method, yet the registered class wins
		assert.Equal(t, "Invoice", guessString(g, invoice{ID: "7"}, mustSet(t, "string", "Invoice")))
	})

	t.Run("anonymous structure may become object", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "object", guessString(g, struct{ N int }{1}, mustSet(t, "object", "string")))
	})

	t.Run("non-instance stays undecided", func(t *testing.T) {
		t.Parallel()

		_, ok := g.GuessFor(struct{ N int }{1}, mustSet(t, "Customer", "integer"))
		assert.False(t, ok)
	})
}

func TestResourceValues(t *testing.T) {
	t.Parallel()

	g := guess.New()

	assert.Equal(t, "resource", guessString(g, make(chan int), mustSet(t, "resource", "string")))
}

func TestUnrecognizedClassSurvivesScalars(t *testing.T) {
	t.Parallel()

	g := guess.New()

	// compatibility with an unknown class cannot be disproved from a scalar,
	// but two unknowns leave the guess undecided
	_, ok := g.GuessFor("value", mustSet(t, "SomeClass", "OtherClass"))
	assert.False(t, ok)

	// a single unknown class against an impossible scalar candidate wins
	assert.Equal(t, "SomeClass", guessString(g, "foo", mustSet(t, "SomeClass", "integer")))
}

func TestCustomDateParser(t *testing.T) {
	t.Parallel()

	reg := guess.NewRegister()
	guess.AddType[time.Time](reg, "DateTime")

	never := guess.DateParserFunc(func(string) bool { return false })
	g := guess.NewWith(reg, never)

	// with the parser rejecting everything, the date candidate drops out
	assert.Equal(t, "string", guessString(g, "2020-01-02", mustSet(t, "DateTime", "string")))
}
