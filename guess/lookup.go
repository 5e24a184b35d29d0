package guess

import (
	"reflect"
	"time"
)

// Lookup answers the class/interface questions the engine cannot decide from
// a value alone. Implementations are expected to be cheap and side-effect
// free; the engine calls them repeatedly during a pass.
type Lookup interface {
	// IsTraversable reports whether the named type supports sequential
	// element access.
	IsTraversable(name string) bool
	// IsDateLike reports whether the named type represents a point-in-time
	// value. Matched by assignability rather than exact name.
	IsDateLike(name string) bool
	// IsInstance reports whether v is a value of the named type.
	IsInstance(v any, name string) bool
}

var timeType = reflect.TypeOf(time.Time{})

type registerEntry struct {
	rtype       reflect.Type
	traversable bool
}

// Register is the reflect-backed Lookup: Go types registered under the names
// candidate lists refer to them by. Unknown names answer false to every
// question, which the engine treats as "cannot disprove compatibility".
// Registration is meant for program setup; lookups do not lock.
type Register struct {
	entries map[string]registerEntry
}

// NewRegister returns an empty type register.
func NewRegister() *Register {
	return &Register{entries: map[string]registerEntry{}}
}

// Add registers t under name. Slice, array and map types count as
// traversable automatically. Registration replaces earlier entries.
func (r *Register) Add(name string, t reflect.Type) *Register {
	r.entries[name] = registerEntry{
		rtype:       t,
		traversable: isSequenceKind(t),
	}
	return r
}

// AddTraversable registers t under name and marks it traversable regardless
// of its reflect kind, for container types that wrap a sequence.
func (r *Register) AddTraversable(name string, t reflect.Type) *Register {
	r.entries[name] = registerEntry{rtype: t, traversable: true}
	return r
}

// AddType registers the Go type T under name.
func AddType[T any](r *Register, name string) *Register {
	return r.Add(name, reflect.TypeOf((*T)(nil)).Elem())
}

func (r *Register) IsTraversable(name string) bool {
	e, ok := r.entries[name]
	return ok && e.traversable
}

func (r *Register) IsDateLike(name string) bool {
	e, ok := r.entries[name]
	return ok && e.rtype.AssignableTo(timeType)
}

func (r *Register) IsInstance(v any, name string) bool {
	e, ok := r.entries[name]
	if !ok {
		return false
	}

	rt := reflect.TypeOf(v)
	if rt == nil {
		return false
	}
	if e.rtype.Kind() == reflect.Interface {
		return rt.Implements(e.rtype)
	}
	return rt.AssignableTo(e.rtype)
}

func isSequenceKind(t reflect.Type) bool {
	switch t.Kind() {
	default:
		return false
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
}
