// Package guess implements the type-guessing elimination engine: given a
// runtime value and an ordered candidate-type set, it repeatedly narrows the
// set with value-shape heuristics until zero, one, or an irreducible pair of
// candidates remains.
//
// Narrowing pipeline:
//  1. Drop the null candidate unconditionally
//  2. Restrict to candidates the value shape does not rule out
//  3. Reduce scalar preferences (date over string, numbers over dates, ...)
//  4. Reduce array subtype preferences (same ranking over T[] candidates)
//  5. Prefer an array-of-T reading for scalar values
//  6. Conclude: sole survivor, traversable|array-of-T union, or no decision
//
// A guessing pass is a pure function of (value, candidate set): stages thread
// fresh sets through explicitly, never mutate shared state, and an ambiguous
// outcome is a normal result, not an error.
package guess
