// SPDX-License-Identifier: MIT
// Package matrix provides the few universal kernels the solvers need on top
// of Dense storage: MatVec for residual checks and the infinity-norm helpers.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opResidual = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			row := d.RawRow(i)
			for j = 0; j < d.c; j++ {
				acc += row[j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual returns ‖m·x − b‖∞.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols or len(b) != Rows).
// NaN anywhere in the product propagates into the result.
// Complexity: O(r*c).
func Residual(m Matrix, x, b []float64) (float64, error) {
	y, err := MatVec(m, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(y)); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	var worst, d float64
	for i := range y {
		d = math.Abs(y[i] - b[i])
		if d > worst || math.IsNaN(d) {
			worst = d
		}
		if math.IsNaN(worst) {
			break
		}
	}

	return worst, nil
}
