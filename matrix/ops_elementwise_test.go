// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmcdm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleColumns(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	scale := []float64{2, 0, -1}

	Y, err := matrix.ScaleColumns(X, scale)
	require.NoError(t, err)
	want := NewFilledDense(t, 2, 3, []float64{2, 0, -3, 8, 0, -6})
	CompareClose(t, Y, want, 0)

	Ys, err := matrix.ScaleColumns(hide{X}, scale)
	require.NoError(t, err)
	CompareClose(t, Y, Ys, 0)

	// Operand untouched.
	assert.Equal(t, 2.0, MustAt(t, X, 0, 1))
}

func TestScaleColumns_Errors(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 2, 2)
	_, err := matrix.ScaleColumns(X, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ScaleColumns(X, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ScaleColumns(X, []float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.ScaleColumns(nil, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowDistances(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{
		0, 0,
		3, 4,
		-3, -4,
	})
	p := []float64{0, 0}

	d, err := matrix.RowDistances(X, p)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5, 5}, d)

	ds, err := matrix.RowDistances(hide{X}, p)
	require.NoError(t, err)
	assert.Equal(t, d, ds)

	// Distance to a row of X itself is exactly zero.
	d, err = matrix.RowDistances(X, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d[1])
	assert.InDelta(t, 10.0, d[2], epsTight)
}

// TestRowDistances_ExtremeMagnitudes: differences whose squares overflow or
// underflow still give finite, non-zero distances.
func TestRowDistances_ExtremeMagnitudes(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{
		3e200, -4e200,
		3e-200, 4e-200,
		1e308, 1e308,
	})
	d, err := matrix.RowDistances(X, []float64{0, 0})
	require.NoError(t, err)
	assert.InEpsilon(t, 5e200, d[0], epsTight)
	assert.InEpsilon(t, 5e-200, d[1], epsTight)
	assert.InEpsilon(t, math.Sqrt2*1e308, d[2], epsTight)

	ds, err := matrix.RowDistances(hide{X}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, d, ds)

	// A single difference beyond MaxFloat64 saturates to +Inf, never NaN.
	d, err = matrix.RowDistances(X, []float64{-1e308, -1e308})
	require.NoError(t, err)
	assert.True(t, math.IsInf(d[2], 1))
}

func TestRowDistances_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.RowDistances(MustDense(t, 2, 2), []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.RowDistances(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
