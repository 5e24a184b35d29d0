package kind

//go:generate go tool stringer -type=Enum -output=kind_string.go

// Enum tags the runtime shape of a value. A value is classified exactly once
// per guessing pass; every later decision branches on the resulting Snapshot
// instead of re-probing the raw value.
type Enum int

const (
	_ Enum = iota // skip zero value, use it as a default (invalid) value for Enum

	Bool
	Int
	Float
	String
	List
	Map
	Time
	Object
	Resource
	Null

	// Total is a constant that represents the total number of kinds defined
	Total = int(iota)
)

// IsScalar reports whether the kind is one of the four scalar shapes.
func (k Enum) IsScalar() bool {
	switch k {
	default:
		return false
	case Bool, Int, Float, String:
		return true
	}
}

// IsNumber reports whether the kind is a numeric scalar.
func (k Enum) IsNumber() bool {
	switch k {
	default:
		return false
	case Int, Float:
		return true
	}
}

// IsIterable reports whether values of this kind expose elements.
func (k Enum) IsIterable() bool {
	switch k {
	default:
		return false
	case List, Map:
		return true
	}
}
