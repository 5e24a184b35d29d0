package cast

import (
	"errors"
	"fmt"
	"strings"

	"typeguess/kind"
	"typeguess/options"
	"typeguess/typeref"
)

var (
	ErrNoCaster   = errors.New("no caster registered for target type")
	ErrNotAllowed = errors.New("conversion category not allowed")
	ErrImpossible = errors.New("value does not fit target type")
)

// Caster converts a value into one target type.
type Caster interface {
	Cast(v any) (any, error)
}

// CasterFunc adapts a plain function to the Caster interface.
type CasterFunc func(v any) (any, error)

func (f CasterFunc) Cast(v any) (any, error) { return f(v) }

// Registry maps resolved type names to their cast handlers. Built-in scalar
// and structural handlers are installed on construction; class names are
// registered by the caller. Registration is meant for program setup.
type Registry struct {
	allowed options.Category
	casters map[string]Caster
}

// NewRegistry returns a Registry with the built-in handlers installed,
// allowing only the given conversion categories.
func NewRegistry(allowed options.Category) *Registry {
	r := &Registry{allowed: allowed, casters: map[string]Caster{}}

	r.Register(typeref.NameString, CasterFunc(r.toString))
	r.Register(typeref.NameInteger, CasterFunc(r.toInteger))
	r.Register(typeref.NameFloat, CasterFunc(r.toFloat))
	r.Register(typeref.NameBoolean, CasterFunc(r.toBoolean))
	r.Register(typeref.NameArray, CasterFunc(r.toArray))
	r.Register(typeref.NameAssoc, CasterFunc(r.toMapping))
	r.Register(typeref.NameObject, CasterFunc(r.toMapping))

	return r
}

// Register installs a handler under a type name. Built-in names are stored
// case-folded, class names verbatim. Registration replaces earlier entries.
func (r *Registry) Register(name string, c Caster) *Registry {
	r.casters[casterKey(name)] = c
	return r
}

// For resolves the handler for a descriptor. Array-of-T descriptors compose
// the element handler; union descriptors have no handler of their own since
// either reading already accepts the value as-is.
func (r *Registry) For(t typeref.Ref) (Caster, bool) {
	switch {
	case t.IsUnion():
		return nil, false
	case t.IsArray():
		return r.forArray(t.Elem())
	default:
		c, ok := r.casters[casterKey(t.Name())]
		return c, ok
	}
}

func (r *Registry) forArray(elem typeref.Ref) (Caster, bool) {
	elemCaster, ok := r.For(elem)
	if !ok {
		return nil, false
	}

	return CasterFunc(func(v any) (any, error) {
		snap := kind.Of(v)

		var elems []any
		switch {
		case snap.IsIterable():
			elems = snap.Elems()
		case snap.Kind == kind.Null:
			elems = nil
		default:
			if !r.allowed.Has(options.CategoryWrapScalar) {
				return nil, fmt.Errorf("%w: scalar wrapping into %s[]", ErrNotAllowed, elem)
			}
			elems = []any{v}
		}

		out := make([]any, len(elems))
		for i, el := range elems {
			cast, err := elemCaster.Cast(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = cast
		}
		return out, nil
	}), true
}

func casterKey(name string) string {
	if typeref.Named(name).IsBuiltin() {
		return strings.ToLower(name)
	}
	return name
}
