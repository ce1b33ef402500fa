// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the kernels.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - A TOPSIS-style weighted normalization is NormalizeColumnsL2 followed by ScaleColumns.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Constructors ----------

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Column statistics ----------

// ColumnNormsL2 returns n where n[j] = √(Σ_i X[i,j]²), accumulated with
// scaling so that neither huge nor tiny entries distort the result.
// Time: O(r*c). Space: O(c). Deterministic.
func ColumnNormsL2(X Matrix) ([]float64, error) { return columnNormsL2(X) }

// NormalizeColumnsL2 returns Y where every column of X is divided by its
// Euclidean norm, plus the norms themselves.
// Degenerate columns (norm == 0) are returned as zero columns; callers that
// must treat them as an error inspect the returned norms.
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// AI-Hints: vector normalization keeps the sign of every entry and maps each
// column onto the unit sphere, making criteria with different units comparable.
func NormalizeColumnsL2(X Matrix) (*Dense, []float64, error) { return normalizeColumnsL2(X) }

// ColumnMinMax returns per-column minima and maxima (seeded with +Inf/−Inf).
// Time: O(r*c). Space: O(c). Deterministic.
func ColumnMinMax(X Matrix) (mins, maxs []float64, err error) { return columnMinMax(X) }

// ---------- Element-wise kernels ----------

// ScaleColumns returns a copy of X with column j multiplied by scale[j].
// Policy: len(scale) must equal Cols(X); every factor must be finite.
// Time: O(r*c). Space: O(r*c). Deterministic.
func ScaleColumns(X Matrix, scale []float64) (*Dense, error) { return ewScaleCols(X, scale) }

// RowDistances returns the Euclidean distance of every row of X to point p.
// Differences are accumulated with scaling, as in ColumnNormsL2.
// Policy: len(p) must equal Cols(X).
// Time: O(r*c). Space: O(r). Deterministic.
//
// AI-Hints: call twice with the ideal-best and ideal-worst points to get the
// separation measures of a TOPSIS run.
func RowDistances(X Matrix, p []float64) ([]float64, error) { return rowDistances(X, p) }
