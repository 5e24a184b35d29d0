package cast

import (
	"encoding"
	"fmt"
	"math"
	"strconv"
	"time"

	"typeguess/kind"
	"typeguess/options"
	"typeguess/utils"
)

func (r *Registry) toString(v any) (any, error) {
	snap := kind.Of(v)

	switch snap.Kind {
	case kind.String:
		return snap.Str, nil

	case kind.Bool:
		if !r.allowed.Has(options.CategoryTextualBool) {
			return nil, fmt.Errorf("%w: boolean to string", ErrNotAllowed)
		}
		b, _ := asBool(v)
		return strconv.FormatBool(b), nil

	case kind.Int:
		if !r.allowed.Has(options.CategoryTextNumber) {
			return nil, fmt.Errorf("%w: integer to string", ErrNotAllowed)
		}
		n, _ := asInt64(v)
		return strconv.FormatInt(n, 10), nil

	case kind.Float:
		if !r.allowed.Has(options.CategoryTextNumber) {
			return nil, fmt.Errorf("%w: float to string", ErrNotAllowed)
		}
		f, _ := asFloat64(v)
		return strconv.FormatFloat(f, 'g', -1, 64), nil

	case kind.Time:
		if !r.allowed.Has(options.CategoryDatetime) {
			return nil, fmt.Errorf("%w: time to string", ErrNotAllowed)
		}
		t, _ := asTime(v)
		return t.Format(time.RFC3339Nano), nil
	}

	switch tv := v.(type) {
	case fmt.Stringer:
		return tv.String(), nil
	case encoding.TextMarshaler:
		text, err := tv.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImpossible, err)
		}
		return string(text), nil
	}

	return nil, fmt.Errorf("%w: %s to string", ErrImpossible, snap.Kind)
}

func (r *Registry) toInteger(v any) (any, error) {
	snap := kind.Of(v)

	switch snap.Kind {
	case kind.Int:
		n, _ := asInt64(v)
		return n, nil

	case kind.Float:
		f, _ := asFloat64(v)
		if f != math.Trunc(f) && !r.allowed.Has(options.CategoryUnsafeNumber) {
			return nil, fmt.Errorf("%w: fractional %v to integer", ErrNotAllowed, f)
		}
		if !utils.IsInRange(math.MinInt64, f, math.MaxInt64) {
			return nil, fmt.Errorf("%w: %v overflows integer", ErrImpossible, f)
		}
		return int64(f), nil

	case kind.String:
		if !r.allowed.Has(options.CategoryTextNumber) {
			return nil, fmt.Errorf("%w: string to integer", ErrNotAllowed)
		}
		if n, err := strconv.ParseInt(snap.Str, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(snap.Str, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not numeric", ErrImpossible, snap.Str)
		}
		return r.toInteger(f)

	case kind.Bool:
		if !r.allowed.Has(options.CategoryNumericBool) {
			return nil, fmt.Errorf("%w: boolean to integer", ErrNotAllowed)
		}
		if b, _ := asBool(v); b {
			return int64(1), nil
		}
		return int64(0), nil

	case kind.Time:
		if !r.allowed.Has(options.CategoryTimestamp) {
			return nil, fmt.Errorf("%w: time to integer", ErrNotAllowed)
		}
		t, _ := asTime(v)
		return t.Unix(), nil
	}

	return nil, fmt.Errorf("%w: %s to integer", ErrImpossible, snap.Kind)
}

func (r *Registry) toFloat(v any) (any, error) {
	snap := kind.Of(v)

	switch snap.Kind {
	case kind.Float:
		f, _ := asFloat64(v)
		return f, nil

	case kind.Int:
		if !r.allowed.Has(options.CategorySafeNumber) {
			return nil, fmt.Errorf("%w: integer to float", ErrNotAllowed)
		}
		n, _ := asInt64(v)
		return float64(n), nil

	case kind.String:
		if !r.allowed.Has(options.CategoryTextNumber) {
			return nil, fmt.Errorf("%w: string to float", ErrNotAllowed)
		}
		f, err := strconv.ParseFloat(snap.Str, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not numeric", ErrImpossible, snap.Str)
		}
		return f, nil

	case kind.Bool:
		if !r.allowed.Has(options.CategoryNumericBool) {
			return nil, fmt.Errorf("%w: boolean to float", ErrNotAllowed)
		}
		if b, _ := asBool(v); b {
			return float64(1), nil
		}
		return float64(0), nil
	}

	return nil, fmt.Errorf("%w: %s to float", ErrImpossible, snap.Kind)
}

func (r *Registry) toBoolean(v any) (any, error) {
	snap := kind.Of(v)

	switch snap.Kind {
	case kind.Bool:
		b, _ := asBool(v)
		return b, nil

	case kind.String:
		if !r.allowed.Has(options.CategoryTextualBool) {
			return nil, fmt.Errorf("%w: string to boolean", ErrNotAllowed)
		}
		if !kind.IsBoolString(snap.Str) {
			return nil, fmt.Errorf("%w: %q is not a boolean string", ErrImpossible, snap.Str)
		}
		switch snap.Str {
		case "", "0", "false", "no", "off":
			return false, nil
		default:
			return true, nil
		}

	case kind.Int:
		if !r.allowed.Has(options.CategoryNumericBool) {
			return nil, fmt.Errorf("%w: integer to boolean", ErrNotAllowed)
		}
		n, _ := asInt64(v)
		switch n {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return nil, fmt.Errorf("%w: %d is not a boolean number", ErrImpossible, n)
	}

	return nil, fmt.Errorf("%w: %s to boolean", ErrImpossible, snap.Kind)
}

func (r *Registry) toArray(v any) (any, error) {
	snap := kind.Of(v)

	switch {
	case snap.Kind == kind.List, snap.Kind == kind.Map:
		return snap.Elems(), nil
	case snap.Kind == kind.Null:
		return []any{}, nil
	case snap.IsScalar():
		if !r.allowed.Has(options.CategoryWrapScalar) {
			return nil, fmt.Errorf("%w: scalar wrapping into array", ErrNotAllowed)
		}
		return []any{v}, nil
	}

	return nil, fmt.Errorf("%w: %s to array", ErrImpossible, snap.Kind)
}

func (r *Registry) toMapping(v any) (any, error) {
	snap := kind.Of(v)

	switch snap.Kind {
	case kind.Map:
		return asStringMap(v), nil

	case kind.List:
		out := make(map[string]any)
		for i, el := range snap.Elems() {
			out[strconv.Itoa(i)] = el
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %s to associative array", ErrImpossible, snap.Kind)
}
