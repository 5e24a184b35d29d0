// Package diagnostic provides structured warnings and errors for the cast
// and binding layers.
//
// Key capabilities:
//   - Impossible-cast warnings naming the offending value
//   - Ambiguous-guess reports listing the declared candidates
//   - Structured emission through a zap logger
//
// The guessing engine itself never produces diagnostics: a no-decision is a
// normal result there, and only becomes worth reporting once a caller wanted
// a conversion to happen.
package diagnostic
