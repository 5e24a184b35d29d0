package options

// Category selects which value coercions the cast handlers may perform once
// a target type has been guessed. Guessing itself is never gated: categories
// only decide whether the chosen conversion is allowed to run.
type Category int

const (
	CategorySafeNumber   Category = 1 << iota // int <-> float without precision loss
	CategoryUnsafeNumber                      // int <-> float with possible precision loss
	CategoryTextNumber                        // number <-> string: textual number representation
	CategoryNumericBool                       // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                       // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                          // string <-> time.Time: textual date and time representation
	CategoryTimestamp                         // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryWrapScalar                        // scalar -> array: single-element array wrapping

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // no categories selected
)

// Has reports whether every category in flags is selected.
func (c Category) Has(flags Category) bool {
	return c&flags == flags
}
