package guess

import (
	"strings"
	"time"
)

// DateParser reports whether an arbitrary string is interpretable as a
// date/time expression. The engine only ever asks the yes/no question, it
// never needs the parsed value.
type DateParser interface {
	IsDate(s string) bool
}

// DateParserFunc adapts a plain predicate to the DateParser interface.
type DateParserFunc func(s string) bool

func (f DateParserFunc) IsDate(s string) bool { return f(s) }

// LayoutParser is a DateParser trying a fixed list of time layouts in order.
type LayoutParser struct {
	Layouts []string
}

var defaultLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822,
	"01/02/2006",
	"15:04:05",
}

// DefaultDateParser returns a LayoutParser over the common interchange
// layouts (RFC 3339 and friends, date-only, time-only).
func DefaultDateParser() DateParser {
	return LayoutParser{Layouts: defaultLayouts}
}

func (p LayoutParser) IsDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	for _, layout := range p.Layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
