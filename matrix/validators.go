// SPDX-License-Identifier: MIT

// Package matrix: centralized validators.
//
// Purpose:
//   - One source of truth for argument checks shared by every kernel.
//   - Validators return sentinels wrapped with their own tag; kernels wrap once more
//     with the operation tag, so errors read "<Op>: <Validator>: matrix: ...".

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps a sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a usable Matrix.
// Both an untyped nil interface and a typed nil *Dense are rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m and rejects the first NaN or ±Inf element.
// Implementation:
//   - Stage 1: ValidateNotNil.
//   - Stage 2: fixed i→j scan (Dense fast-path on the flat buffer; At fallback).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (wrapped with the offending coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	r, c := m.Rows(), m.Cols()

	var i, j int
	var v float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("ValidateFinite(%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}

		return nil
	}

	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFinite(%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}
