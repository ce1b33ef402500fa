// SPDX-License-Identifier: MIT
// Package matrix: element-wise micro-kernels.
//
// Purpose:
//   - Centralize the tight loops shared by statistics and decision kernels.
//   - Every kernel validates its inputs, allocates a fresh output and never mutates operands.
//
// Determinism:
//   - Fixed i→j traversal; Dense fast-path and At fallback accumulate in the same order.

package matrix

import "math"

const (
	opScaleCols    = "scaleCols"
	opRowDistances = "RowDistances"
)

// sumSquares accumulates Σ v² as scale²·ssq, with scale the largest |v| seen
// so far (the dlassq recurrence). Every squared term is ≤ 1, so the sum
// neither overflows for huge entries nor flushes to zero for tiny ones.
// The zero value is an empty sum.
type sumSquares struct {
	scale float64
	ssq   float64
}

func (s *sumSquares) add(v float64) {
	if v == 0 || math.IsInf(s.scale, 1) {
		return
	}
	a := math.Abs(v)
	if s.scale < a {
		r := s.scale / a
		s.ssq = 1 + s.ssq*r*r
		s.scale = a

		return
	}
	r := a / s.scale
	s.ssq += r * r
}

// norm returns scale·√ssq.
func (s sumSquares) norm() float64 {
	if s.scale == 0 {
		return 0
	}

	return s.scale * math.Sqrt(s.ssq)
}

// ewScaleCols returns out[i,j] = X[i,j] * scale[j].
// Implementation:
//   - Stage 1: validate X and len(scale) == Cols(X).
//   - Stage 2: allocate the result and multiply (Dense fast-path; At fallback).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite scale factor).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	// Validate matrix presence.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	// Read shape once.
	r, c := X.Rows(), X.Cols()
	// Validate scale length and values.
	if err := ValidateVecLen(scale, c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	for _, s := range scale {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, matrixErrorf(opScaleCols, ErrNaNInf)
		}
	}
	// Allocate result dense.
	out, err := ZerosLike(X)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c // row base offset
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}

		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opScaleCols, e)
			}
			out.data[i*c+j] = v * scale[j]
		}
	}

	return out, nil
}

// rowDistances returns d[i] = √(Σ_j (X[i,j] − p[j])²), the Euclidean distance
// of every row of X to the point p.
// Implementation:
//   - Stage 1: validate X and len(p) == Cols(X).
//   - Stage 2: feed the differences of each row into a sumSquares; take its norm.
//
// Behavior highlights:
//   - Scaled accumulation: squares of large differences do not overflow and
//     squares of tiny ones do not vanish. A difference that itself exceeds
//     MaxFloat64 (entries of opposite sign near the limit) still yields +Inf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func rowDistances(X Matrix, p []float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowDistances, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(p, c); err != nil {
		return nil, matrixErrorf(opRowDistances, err)
	}

	dist := make([]float64, r)
	var i, j int
	var acc sumSquares
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			acc = sumSquares{}
			base := i * c
			for j = 0; j < c; j++ {
				acc.add(d.data[base+j] - p[j])
			}
			dist[i] = acc.norm()
		}

		return dist, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		acc = sumSquares{}
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowDistances, err)
			}
			acc.add(v - p[j])
		}
		dist[i] = acc.norm()
	}

	return dist, nil
}
