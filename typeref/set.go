package typeref

// Set is an ordered, duplicate-free sequence of type descriptors. Narrowing
// operations are pure: they return fresh sets and preserve the relative order
// of the surviving descriptors.
type Set []Ref

// Contains reports whether the set holds a descriptor equal to r.
func (s Set) Contains(r Ref) bool {
	for _, t := range s {
		if t.Equal(r) {
			return true
		}
	}
	return false
}

// ContainsName reports whether the set holds a non-array descriptor with the
// given name (case-insensitive).
func (s Set) ContainsName(name string) bool {
	for _, t := range s {
		if t.Is(name) {
			return true
		}
	}
	return false
}

// ContainsArrayOf reports whether the set holds an array-of-T descriptor
// whose element type has the given name.
func (s Set) ContainsArrayOf(name string) bool {
	for _, t := range s {
		if t.IsArray() && t.Elem().Is(name) {
			return true
		}
	}
	return false
}

// Filter returns the descriptors for which keep returns true, in order.
func (s Set) Filter(keep func(Ref) bool) Set {
	out := make(Set, 0, len(s))
	for _, t := range s {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Any reports whether pred holds for at least one descriptor.
func (s Set) Any(pred func(Ref) bool) bool {
	for _, t := range s {
		if pred(t) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every descriptor. Vacuously true for an
// empty set.
func (s Set) All(pred func(Ref) bool) bool {
	for _, t := range s {
		if !pred(t) {
			return false
		}
	}
	return true
}

// With returns the set extended by r, unless an equal descriptor is present.
func (s Set) With(r Ref) Set {
	if s.Contains(r) {
		return s
	}

	out := make(Set, len(s), len(s)+1)
	copy(out, s)
	return append(out, r)
}

// Names renders every descriptor, preserving order.
func (s Set) Names() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.String()
	}
	return out
}
