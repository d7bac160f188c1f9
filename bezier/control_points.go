package bezier

import "github.com/jaredlewiswechs/newtonfield/statevector"

// ControlPoints holds the four control points P0..P3 of one cubic Bézier
// curve. All four share one dimension, enforced at construction time by
// New and Linear; callers that build a ControlPoints by literal struct
// initialization are responsible for that invariant themselves (mirrors
// statevector.Vector: a value type, cheap to copy, never mutated in
// place).
type ControlPoints struct {
	P0, P1, P2, P3 statevector.Vector
}

// New validates that p0..p3 share a dimension and returns the
// ControlPoints over copies of them.
func New(p0, p1, p2, p3 statevector.Vector) (ControlPoints, error) {
	d := p0.Dim()
	if p1.Dim() != d || p2.Dim() != d || p3.Dim() != d {
		return ControlPoints{}, bezierErrorf("New", ErrDimensionMismatch)
	}
	return ControlPoints{P0: p0.Clone(), P1: p1.Clone(), P2: p2.Clone(), P3: p3.Clone()}, nil
}

// Linear constructs the cubic whose control polygon is collinear between
// a and b, i.e. P0=a, P1=a+⅓(b-a), P2=a+⅔(b-a), P3=b. Its image is the
// straight segment from a to b; it is the candidate trajectory a
// blueprint forge builds between a field layout's current and proposed
// encodings.
func Linear(a, b statevector.Vector) (ControlPoints, error) {
	if a.Dim() != b.Dim() {
		return ControlPoints{}, bezierErrorf("Linear", ErrDimensionMismatch)
	}
	delta, err := b.Sub(a)
	if err != nil {
		return ControlPoints{}, bezierErrorf("Linear", err)
	}
	p1, _ := a.AddScaled(delta, 1.0/3.0)
	p2, _ := a.AddScaled(delta, 2.0/3.0)
	return ControlPoints{P0: a.Clone(), P1: p1, P2: p2, P3: b.Clone()}, nil
}

// Dim returns the shared dimension of the four control points.
func (cp ControlPoints) Dim() int {
	return cp.P0.Dim()
}

// At returns the k-th control point (k in 0..3), the ordering
// engine.Verify's hull tests iterate in.
func (cp ControlPoints) At(k int) statevector.Vector {
	switch k {
	case 0:
		return cp.P0
	case 1:
		return cp.P1
	case 2:
		return cp.P2
	case 3:
		return cp.P3
	default:
		return nil
	}
}

// Evaluate returns γ(t) = (1-t)³P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3,
// componentwise. Evaluate(0) == P0 and Evaluate(1) == P3 exactly (up to
// float64 arithmetic, since 0³=0 and 1³=1 exactly).
func (cp ControlPoints) Evaluate(t float64) statevector.Vector {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t

	d := cp.Dim()
	out := make(statevector.Vector, d)
	for i := 0; i < d; i++ {
		out[i] = b0*cp.P0[i] + b1*cp.P1[i] + b2*cp.P2[i] + b3*cp.P3[i]
	}
	return out
}

// Derivative returns γ'(t) = 3[(1-t)²(P1-P0) + 2(1-t)t(P2-P1) + t²(P3-P2)].
func (cp ControlPoints) Derivative(t float64) statevector.Vector {
	u := 1 - t
	c0 := 3 * u * u
	c1 := 6 * u * t
	c2 := 3 * t * t

	d := cp.Dim()
	out := make(statevector.Vector, d)
	for i := 0; i < d; i++ {
		out[i] = c0*(cp.P1[i]-cp.P0[i]) + c1*(cp.P2[i]-cp.P1[i]) + c2*(cp.P3[i]-cp.P2[i])
	}
	return out
}

// DeCasteljauSplit splits cp at parameter s ∈ (0,1) into a left and right
// sub-curve via the standard triangular scheme. The contract:
//
//	left.P0 = cp.P0, right.P3 = cp.P3, left.P3 = right.P0 = cp.Evaluate(s)
//	left.Evaluate(u)  = cp.Evaluate(s*u)
//	right.Evaluate(u) = cp.Evaluate(s + (1-s)*u)
//
// is what engine.Verify relies on to make each subdivided segment's local
// parameter u correspond to a known global parameter a + u*(b-a).
func DeCasteljauSplit(cp ControlPoints, s float64) (left, right ControlPoints, err error) {
	if s <= 0 || s >= 1 {
		return ControlPoints{}, ControlPoints{}, bezierErrorf("DeCasteljauSplit", ErrSplitParameter)
	}

	lerp := func(a, b statevector.Vector) statevector.Vector {
		v, _ := a.Lerp(b, s)
		return v
	}

	// First row of the triangle: points at parameter s along the control
	// polygon edges.
	p01 := lerp(cp.P0, cp.P1)
	p12 := lerp(cp.P1, cp.P2)
	p23 := lerp(cp.P2, cp.P3)

	// Second row.
	p012 := lerp(p01, p12)
	p123 := lerp(p12, p23)

	// Third row: the split point itself, shared by both sub-curves.
	p0123 := lerp(p012, p123)

	left = ControlPoints{P0: cp.P0.Clone(), P1: p01, P2: p012, P3: p0123}
	right = ControlPoints{P0: p0123.Clone(), P1: p123, P2: p23, P3: cp.P3.Clone()}
	return left, right, nil
}
