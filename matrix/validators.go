// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/triangularity checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Triangularity check runs O(n²) on the strict lower triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Content).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is reported as nil as well.
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

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateUpperTriangular checks that every entry strictly below the main
// diagonal satisfies |a[i,j]| <= eps.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan rows i=1..n-1, cols j<i in fixed order; stop at first violation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotUpperTriangular (with coordinates).
//
// Complexity:
//   - Time O(n²/2), Space O(1).
//
// Notes:
//   - eps=0 demands exact zeros, which is what elimination guarantees.
func ValidateUpperTriangular(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateUpperTriangular", err)
	}
	n := m.Rows()
	var i, j int
	var v float64
	if d, ok := m.(*Dense); ok {
		for i = 1; i < n; i++ {
			row := d.RawRow(i)
			for j = 0; j < i; j++ {
				if math.Abs(row[j]) > eps {
					return fmt.Errorf("ValidateUpperTriangular: a[%d,%d]=%g: %w", i, j, row[j], ErrNotUpperTriangular)
				}
			}
		}

		return nil
	}
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if math.Abs(v) > eps {
				return fmt.Errorf("ValidateUpperTriangular: a[%d,%d]=%g: %w", i, j, v, ErrNotUpperTriangular)
			}
		}
	}

	return nil
}
