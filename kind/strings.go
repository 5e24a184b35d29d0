package kind

import (
	"math"
	"strconv"
	"strings"
)

// BoolStrings is the canonical boolean-string vocabulary. Membership is
// case-sensitive and the list is exhaustive: a string outside it is never
// considered boolean-compatible.
var BoolStrings = []string{"", "0", "false", "no", "off", "1", "true", "yes", "on"}

// IsBoolString reports whether s is in the canonical boolean-string vocabulary.
func IsBoolString(s string) bool {
	for _, b := range BoolStrings {
		if s == b {
			return true
		}
	}
	return false
}

// IsNumericString reports whether s reads as a finite number, integral or
// floating. Surrounding whitespace is tolerated; an empty string and the
// non-finite spellings ("Inf", "NaN") are not numeric.
func IsNumericString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// HasDecimalPoint reports whether s is a numeric string with a decimal point,
// the tell that separates float-looking from integer-looking numbers.
func HasDecimalPoint(s string) bool {
	return IsNumericString(s) && strings.ContainsRune(s, '.')
}
