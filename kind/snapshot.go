package kind

import (
	"encoding"
	"fmt"
	"reflect"
	"time"
)

// Snapshot is the one-shot classification of a runtime value. It carries the
// shape tag plus the capability flags the narrowing heuristics branch on, so
// no stage ever has to re-probe the raw value.
type Snapshot struct {
	// Kind is the shape tag of the value.
	Kind Enum
	// Value is the original value as passed in.
	Value any
	// Str holds the string payload when Kind is String.
	Str string
	// HasStringForm is true when the value exposes a textual representation
	// (fmt.Stringer or encoding.TextMarshaler).
	HasStringForm bool
	// IsAnonymous is true for object values with no declared type name.
	IsAnonymous bool
	// TypeName is the declared type name for object values, empty otherwise.
	TypeName string

	rv reflect.Value
}

// Of classifies a runtime value into a Snapshot. Pointers and interfaces are
// unwrapped first; a nil value of any shape classifies as Null.
func Of(v any) Snapshot {
	snap := Snapshot{Value: v}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			snap.Kind = Null
			return snap
		}
		rv = rv.Elem()
	}

	if !rv.IsValid() {
		snap.Kind = Null
		return snap
	}

	snap.rv = rv
	snap.HasStringForm = hasStringForm(v)

	switch rv.Kind() {
	case reflect.Bool:
		snap.Kind = Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		snap.Kind = Int
	case reflect.Float32, reflect.Float64:
		snap.Kind = Float
	case reflect.String:
		snap.Kind = String
		snap.Str = rv.String()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			snap.Kind = Null
			return snap
		}
		snap.Kind = List
	case reflect.Map:
		if rv.IsNil() {
			snap.Kind = Null
			return snap
		}
		snap.Kind = Map
	case reflect.Struct:
		if rv.Type() == reflect.TypeOf(time.Time{}) {
			snap.Kind = Time
			return snap
		}
		snap.Kind = Object
		snap.TypeName = rv.Type().Name()
		snap.IsAnonymous = snap.TypeName == ""
	default:
		// chan, func, unsafe pointers: opaque handles
		snap.Kind = Resource
	}

	return snap
}

// IsScalar reports whether the value is one of the four scalar shapes.
func (s Snapshot) IsScalar() bool { return s.Kind.IsScalar() }

// IsIterable reports whether the value exposes elements.
func (s Snapshot) IsIterable() bool { return s.Kind.IsIterable() }

// IsAssociative reports whether the value is a keyed mapping.
func (s Snapshot) IsAssociative() bool { return s.Kind == Map }

// Elems returns the element values of an iterable snapshot. For associative
// values the map values are returned; for anything else the result is nil.
func (s Snapshot) Elems() []any {
	switch s.Kind {
	default:
		return nil

	case List:
		out := make([]any, s.rv.Len())
		for i := range out {
			out[i] = s.rv.Index(i).Interface()
		}
		return out

	case Map:
		out := make([]any, 0, s.rv.Len())
		iter := s.rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Value().Interface())
		}
		return out
	}
}

func hasStringForm(v any) bool {
	switch v.(type) {
	default:
		return false
	case fmt.Stringer, encoding.TextMarshaler:
		return true
	}
}
