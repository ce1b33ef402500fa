// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics used by decision-analysis pipelines:
//     Euclidean column norms, L2 column normalization and per-column extrema.
//   - Keep tight loops centralized; sums of squares go through the scaled
//     sumSquares accumulator so neither huge nor tiny entries lose the column.
//
// Exposed API:
//   - ColumnNormsL2(X)      -> norms             // √(Σ_i X[i,j]²) per column, overflow-safe
//   - NormalizeColumnsL2(X) -> (Y, norms)        // L2 column normalization (degenerate columns zeroed)
//   - ColumnMinMax(X)       -> (mins, maxs)      // per-column extrema, ±Inf seeded
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - A zero norm means "every entry in the column is 0"; callers decide whether that is an error.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnNormsL2      = "ColumnNormsL2"
	opNormalizeColumnsL2 = "NormalizeColumnsL2"
	opColumnMinMax       = "ColumnMinMax"
)

// columnSumSquares accumulates one sumSquares per column.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: single row-major pass feeding every entry into its column
//     accumulator (Dense fast-path; At fallback).
//
// Complexity:
//   - Time O(r*c), Space O(c).
//
// Notes:
//   - The fallback uses the same order as the Dense pass, so both paths agree bitwise.
func columnSumSquares(op string, X Matrix) ([]sumSquares, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	r, c := X.Rows(), X.Cols()
	acc := make([]sumSquares, c)

	// Stage 2 (Execute): scaled accumulation per column.
	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				acc[j].add(d.data[base+j])
			}
		}

		return acc, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			acc[j].add(v)
		}
	}

	return acc, nil
}

// columnNormsL2 computes the Euclidean norm of every column.
// Implementation:
//   - Stage 1: columnSumSquares (validation + scaled accumulation).
//   - Stage 2: norm = scale·√ssq per column.
//
// Returns:
//   - []float64: norms (len = Cols(X)), each ≥ 0. A norm is 0 only for an
//     all-zero column; it is +Inf only when the true norm exceeds MaxFloat64.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnNormsL2(X Matrix) ([]float64, error) {
	acc, err := columnSumSquares(opColumnNormsL2, X)
	if err != nil {
		return nil, err
	}
	norms := make([]float64, len(acc))
	for j := range acc {
		norms[j] = acc[j].norm()
	}

	return norms, nil
}

// normalizeColumnsL2 scales each column to unit L2-norm when possible.
// Implementation:
//   - Stage 1: columnSumSquares.
//   - Stage 2: y = (v / scale) / √ssq per entry; degenerate columns (scale == 0) stay 0.
//
// Behavior highlights:
//   - A zero column stays a zero column; no NaN is ever produced.
//   - Dividing in two steps keeps |v/scale| ≤ 1 and √ssq ∈ [1, √r], so columns
//     near MaxFloat64 or in the subnormal range normalize like any other.
//
// Returns:
//   - *Dense: normalized copy (r×c).
//   - []float64: the original column norms.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func normalizeColumnsL2(X Matrix) (*Dense, []float64, error) {
	acc, err := columnSumSquares(opNormalizeColumnsL2, X)
	if err != nil {
		return nil, nil, err
	}
	c := len(acc)
	norms := make([]float64, c)
	roots := make([]float64, c)
	for j := range acc {
		norms[j] = acc[j].norm()
		roots[j] = math.Sqrt(acc[j].ssq)
	}

	Y, err := ZerosLike(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}
	r := X.Rows()
	var i, j int
	var v float64
	d, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if acc[j].scale == 0 {
				continue
			}
			if fast {
				v = d.data[base+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
			}
			Y.data[base+j] = v / acc[j].scale / roots[j]
		}
	}

	return Y, norms, nil
}

// columnMinMax returns the per-column minimum and maximum.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: seed mins with +Inf and maxs with −Inf so that no finite value,
//     negative ones included, is ever suppressed by the seed.
//   - Stage 3: single row-major pass updating both extrema.
//
// Returns:
//   - mins, maxs: len = Cols(X).
//
// Complexity:
//   - Time O(r*c), Space O(c).
//
// AI-Hints:
//   - Seeding with a finite constant (0 or MaxFloat64) is a classic bug for
//     all-negative columns; keep the ±Inf seeds.
func columnMinMax(X Matrix) ([]float64, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMinMax, err)
	}
	r, c := X.Rows(), X.Cols()

	// Stage 2 (Seed): ±Inf.
	mins := make([]float64, c)
	maxs := make([]float64, c)
	var j int
	for j = 0; j < c; j++ {
		mins[j] = math.Inf(1)
		maxs[j] = math.Inf(-1)
	}

	// Stage 3 (Scan).
	var i int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if v < mins[j] {
					mins[j] = v
				}
				if v > maxs[j] {
					maxs[j] = v
				}
			}
		}

		return mins, maxs, nil
	}

	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opColumnMinMax, err)
			}
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}
