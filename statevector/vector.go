package statevector

import "math"

// Vector is an ordered, fixed-dimension sequence of float64 coordinates.
//
// Vector is a value type: every operation below returns a new Vector and
// never mutates its receiver or arguments, so a Vector copied into a
// ledger.Entry or a bezier.ControlPoints stays valid even if the caller
// that produced it keeps mutating whatever built it.
type Vector []float64

// New returns a Vector over a copy of coords, so the caller's slice may be
// reused or mutated afterward without affecting the returned Vector.
func New(coords ...float64) Vector {
	v := make(Vector, len(coords))
	copy(v, coords)
	return v
}

// Dim reports the dimension d of v.
func (v Vector) Dim() int {
	return len(v)
}

// SameDim reports whether v and other share a dimension.
func (v Vector) SameDim(other Vector) bool {
	return len(v) == len(other)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Add returns v+other, componentwise.
func (v Vector) Add(other Vector) (Vector, error) {
	if !v.SameDim(other) {
		return nil, vectorErrorf("Add", ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out, nil
}

// Sub returns v-other, componentwise.
func (v Vector) Sub(other Vector) (Vector, error) {
	if !v.SameDim(other) {
		return nil, vectorErrorf("Sub", ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - other[i]
	}
	return out, nil
}

// Scale returns v scaled by s, componentwise.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// AddScaled returns v + other.Scale(s) in one pass, avoiding an
// intermediate allocation; bezier.Linear uses it to place P1 and P2.
func (v Vector) AddScaled(other Vector, s float64) (Vector, error) {
	if !v.SameDim(other) {
		return nil, vectorErrorf("AddScaled", ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + other[i]*s
	}
	return out, nil
}

// Lerp returns the pointwise linear interpolation (1-t)*v + t*other.
func (v Vector) Lerp(other Vector, t float64) (Vector, error) {
	if !v.SameDim(other) {
		return nil, vectorErrorf("Lerp", ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = (1-t)*v[i] + t*other[i]
	}
	return out, nil
}

// AlmostEqual reports whether v and other are within tol in every
// coordinate (Chebyshev distance). Vectors of differing dimension are
// never equal.
func (v Vector) AlmostEqual(other Vector, tol float64) bool {
	if !v.SameDim(other) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-other[i]) > tol {
			return false
		}
	}
	return true
}
