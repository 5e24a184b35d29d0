package cast

import (
	"fmt"
	"strings"
	"time"

	"typeguess/kind"
	"typeguess/options"
)

// TimeCaster converts values into time.Time. It is not installed by default:
// register it under the date-like names a candidate list uses, e.g.
// reg.Register("DateTime", cast.NewTimeCaster(allowed, nil)).
type TimeCaster struct {
	allowed options.Category
	layouts []string
}

var defaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewTimeCaster returns a TimeCaster parsing the given layouts in order.
// A nil layout list falls back to the common interchange layouts.
func NewTimeCaster(allowed options.Category, layouts []string) TimeCaster {
	if layouts == nil {
		layouts = defaultTimeLayouts
	}
	return TimeCaster{allowed: allowed, layouts: layouts}
}

func (c TimeCaster) Cast(v any) (any, error) {
	snap := kind.Of(v)

	switch snap.Kind {
	case kind.Time:
		t, _ := asTime(v)
		return t, nil

	case kind.String:
		if !c.allowed.Has(options.CategoryDatetime) {
			return nil, fmt.Errorf("%w: string to time", ErrNotAllowed)
		}

		s := strings.TrimSpace(snap.Str)
		for _, layout := range c.layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%w: %q is not a date/time", ErrImpossible, snap.Str)

	case kind.Int:
		if !c.allowed.Has(options.CategoryTimestamp) {
			return nil, fmt.Errorf("%w: integer to time", ErrNotAllowed)
		}
		n, _ := asInt64(v)
		return time.Unix(n, 0).UTC(), nil
	}

	return nil, fmt.Errorf("%w: %s to time", ErrImpossible, snap.Kind)
}
