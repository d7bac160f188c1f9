package statevector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaredlewiswechs/newtonfield/statevector"
)

func TestNewCopiesInput(t *testing.T) {
	coords := []float64{1, 2, 3}
	v := statevector.New(coords...)
	coords[0] = 99
	assert.Equal(t, statevector.New(1, 2, 3), v)
}

func TestDimAndSameDim(t *testing.T) {
	a := statevector.New(1, 2)
	b := statevector.New(3, 4)
	c := statevector.New(1, 2, 3)

	assert.Equal(t, 2, a.Dim())
	assert.True(t, a.SameDim(b))
	assert.False(t, a.SameDim(c))
}

func TestAddSubScale(t *testing.T) {
	a := statevector.New(1, 2)
	b := statevector.New(3, 4)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, statevector.New(4, 6), sum)

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, statevector.New(2, 2), diff)

	assert.Equal(t, statevector.New(2, 4), a.Scale(2))
}

func TestDimensionMismatchErrors(t *testing.T) {
	a := statevector.New(1, 2)
	c := statevector.New(1, 2, 3)

	_, err := a.Add(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, statevector.ErrDimensionMismatch)

	_, err = a.Sub(c)
	assert.ErrorIs(t, err, statevector.ErrDimensionMismatch)

	_, err = a.AddScaled(c, 1)
	assert.ErrorIs(t, err, statevector.ErrDimensionMismatch)

	_, err = a.Lerp(c, 0.5)
	assert.ErrorIs(t, err, statevector.ErrDimensionMismatch)
}

func TestAddScaledMatchesAddOfScale(t *testing.T) {
	a := statevector.New(1, 1)
	b := statevector.New(2, 2)

	got, err := a.AddScaled(b, 3)
	require.NoError(t, err)
	assert.Equal(t, statevector.New(7, 7), got)
}

func TestLerpEndpoints(t *testing.T) {
	a := statevector.New(0, 0)
	b := statevector.New(10, 20)

	atStart, err := a.Lerp(b, 0)
	require.NoError(t, err)
	assert.Equal(t, a, atStart)

	atEnd, err := a.Lerp(b, 1)
	require.NoError(t, err)
	assert.Equal(t, b, atEnd)

	mid, err := a.Lerp(b, 0.5)
	require.NoError(t, err)
	assert.Equal(t, statevector.New(5, 10), mid)
}

func TestAlmostEqual(t *testing.T) {
	a := statevector.New(1, 2)
	b := statevector.New(1.0000001, 2.0000001)
	c := statevector.New(1, 2, 3)

	assert.True(t, a.AlmostEqual(b, 1e-3))
	assert.False(t, a.AlmostEqual(b, 1e-10))
	assert.False(t, a.AlmostEqual(c, 1))
}

func TestCloneIsIndependent(t *testing.T) {
	a := statevector.New(1, 2, 3)
	clone := a.Clone()
	clone[0] = 42
	assert.Equal(t, statevector.New(1, 2, 3), a)
	assert.NotEqual(t, a, clone)
}
