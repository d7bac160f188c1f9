package bezier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaredlewiswechs/newtonfield/bezier"
	"github.com/jaredlewiswechs/newtonfield/statevector"
)

func sampleCurve(t *testing.T) bezier.ControlPoints {
	t.Helper()
	cp, err := bezier.New(
		statevector.New(0, 0),
		statevector.New(1, 3),
		statevector.New(2, -1),
		statevector.New(3, 0),
	)
	require.NoError(t, err)
	return cp
}

func TestBernsteinPartitionOfUnity(t *testing.T) {
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		sum := 0.0
		for i := 0; i <= 3; i++ {
			b := bezier.Bernstein(i, 3, tt)
			assert.GreaterOrEqualf(t, b, -1e-12, "b%d,3(%v) should be >= 0", i, tt)
			sum += b
		}
		assert.InDeltaf(t, 1.0, sum, 1e-9, "sum of Bernstein weights at t=%v", tt)
	}
}

func TestBernsteinBasisMatchesBernstein(t *testing.T) {
	basis := bezier.BernsteinBasis(3, 0.37)
	require.Len(t, basis, 4)
	for i, v := range basis {
		assert.Equal(t, bezier.Bernstein(i, 3, 0.37), v)
	}
}

func TestEndpointInterpolation(t *testing.T) {
	cp := sampleCurve(t)
	assert.Equal(t, cp.P0, cp.Evaluate(0))
	assert.Equal(t, cp.P3, cp.Evaluate(1))
}

func TestLinearMidpoint(t *testing.T) {
	a := statevector.New(1, 1)
	b := statevector.New(3, 3)
	cp, err := bezier.Linear(a, b)
	require.NoError(t, err)

	mid := cp.Evaluate(0.5)
	want, _ := a.Lerp(b, 0.5)
	assert.True(t, mid.AlmostEqual(want, 1e-12))
}

func TestEndpointDerivatives(t *testing.T) {
	cp := sampleCurve(t)

	d0 := cp.Derivative(0)
	want0, _ := cp.P1.Sub(cp.P0)
	want0 = want0.Scale(3)
	assert.True(t, d0.AlmostEqual(want0, 1e-9))

	d1 := cp.Derivative(1)
	want1, _ := cp.P3.Sub(cp.P2)
	want1 = want1.Scale(3)
	assert.True(t, d1.AlmostEqual(want1, 1e-9))
}

func TestDeCasteljauSplitConsistency(t *testing.T) {
	cp := sampleCurve(t)
	s := 0.42

	left, right, err := bezier.DeCasteljauSplit(cp, s)
	require.NoError(t, err)

	assert.True(t, left.P0.AlmostEqual(cp.P0, 1e-12))
	assert.True(t, right.P3.AlmostEqual(cp.P3, 1e-12))

	splitPoint := cp.Evaluate(s)
	assert.True(t, left.P3.AlmostEqual(splitPoint, 1e-9))
	assert.True(t, right.P0.AlmostEqual(splitPoint, 1e-9))

	for _, u := range []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1} {
		assert.True(t, left.Evaluate(u).AlmostEqual(cp.Evaluate(s*u), 1e-8))
		assert.True(t, right.Evaluate(u).AlmostEqual(cp.Evaluate(s+(1-s)*u), 1e-8))
	}
}

func TestDeCasteljauSplitRejectsBoundaryParameters(t *testing.T) {
	cp := sampleCurve(t)
	_, _, err := bezier.DeCasteljauSplit(cp, 0)
	assert.ErrorIs(t, err, bezier.ErrSplitParameter)
	_, _, err = bezier.DeCasteljauSplit(cp, 1)
	assert.ErrorIs(t, err, bezier.ErrSplitParameter)
}

func TestNewRejectsDimensionMismatch(t *testing.T) {
	_, err := bezier.New(
		statevector.New(0, 0),
		statevector.New(1, 1, 1),
		statevector.New(2, 2),
		statevector.New(3, 3),
	)
	assert.ErrorIs(t, err, bezier.ErrDimensionMismatch)
}

func TestBernsteinOutOfRangeIndexIsZero(t *testing.T) {
	assert.Equal(t, 0.0, bezier.Bernstein(-1, 3, 0.5))
	assert.Equal(t, 0.0, bezier.Bernstein(4, 3, 0.5))
	assert.False(t, math.IsNaN(bezier.Bernstein(2, 3, 0.5)))
}
