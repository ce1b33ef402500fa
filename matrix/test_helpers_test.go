// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmcdm/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths and compare
// them with the Dense fast-paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return d
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// NewFilledDense BUILDS an r×c *Dense from a row-major literal.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: value count")
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandomDense FILLS a fresh r×c *Dense with deterministic U(-1,1) values by seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = d.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}

	return d
}

// CompareClose ASSERTS a and b have the same shape and |a-b| ≤ atol element-wise.
func CompareClose(t *testing.T, a, b matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.InDelta(t, MustAt(t, a, i, j), MustAt(t, b, i, j), atol, "cell (%d,%d)", i, j)
		}
	}
}

// sliceClose ASSERTS |a[i]-b[i]| ≤ atol element-wise.
func sliceClose(t *testing.T, a, b []float64, atol float64) {
	t.Helper()
	require.Len(t, a, len(b), "slice lengths")
	for i := range a {
		if math.IsInf(b[i], 0) {
			require.Equal(t, b[i], a[i], "idx=%d", i)
			continue
		}
		require.InDelta(t, b[i], a[i], atol, "idx=%d", i)
	}
}
