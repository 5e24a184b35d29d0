// Package cast holds the per-type conversion handlers that run once the
// guessing engine has settled on a target type. The engine only ever decides
// which type a value should become; everything that actually touches the
// value lives here.
//
// Conversions are gated by options.Category flags, mirroring how lossy or
// representation-changing coercions are opted into rather than implied. An
// impossible cast is reported as a diagnostic and leaves the value unchanged.
package cast
