// Package statevector defines Vector, a fixed-dimension ordered sequence of
// float64 values used throughout newtonfield as the encoding of a
// blueprint's fields at a single instant.
//
// A Vector's dimension is fixed once it leaves the package that produced
// it (a field.Layout snapshot, a bezier.ControlPoints corner, …); arithmetic
// between two vectors of differing dimension is a programmer error and
// returns ErrDimensionMismatch rather than panicking, so callers on the
// hot verification path can propagate it with %w instead of recovering
// from a panic.
//
// Complexity: every operation here is O(d) in the vector's dimension.
package statevector
