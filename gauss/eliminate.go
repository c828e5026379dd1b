// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/lvgauss/linsys"
	"github.com/katalvlaran/lvgauss/matrix"
	"github.com/katalvlaran/lvgauss/parallel"
)

const opEliminate = "Eliminate"

// Eliminate reduces A to upper-triangular form in place, applying the same
// row operations to b.
//
// Implementation:
//   - Stage 1: validate the system shape and executor.
//   - Stage 2: for pivot = 0..n-1, dispatch rows (pivot, n) across the
//     executor; each row r computes coeff = a[r][p]/a[p][p], sets a[r][p]=0,
//     subtracts coeff·a[p][c] for c > p, and b[r] -= coeff·b[p].
//   - Stage 3: the executor's barrier separates consecutive pivots.
//
// Behavior highlights:
//   - Row pivot is read-only during its step; every other row is written by
//     exactly one unit, so no locking is needed.
//   - After return every entry strictly below the diagonal is exactly 0.
//
// Errors:
//   - linsys.ErrNilSystem, ErrNilExecutor, shape errors from System.Validate.
//
// Notes:
//   - No pivoting: a zero a[p][p] produces ±Inf/NaN, not an error.
//
// Complexity:
//   - Time O(n³/3) flops split over units, n barriers; Space O(1) extra.
func Eliminate(s *linsys.System, ex parallel.Executor) error {
	if err := checkArgs(s, ex); err != nil {
		return fmt.Errorf("%s: %w", opEliminate, err)
	}
	n := s.N()
	for pivot := 0; pivot < n; pivot++ {
		ex.For(pivot+1, n, func(_ int, r parallel.Range) {
			eliminateRows(s.A, s.B, pivot, r)
		})
	}

	return nil
}

// eliminateRows applies pivot step p to rows r of a and b.
func eliminateRows(a *matrix.Dense, b []float64, p int, r parallel.Range) {
	prow := a.RawRow(p)
	piv := prow[p]
	bp := b[p]

	var (
		row, col int
		coeff    float64
		cur      []float64
	)
	for row = r.Lo; row < r.Hi; row++ {
		cur = a.RawRow(row)
		coeff = cur[p] / piv
		cur[p] = 0.0
		for col = p + 1; col < len(cur); col++ {
			cur[col] -= prow[col] * coeff
		}
		b[row] -= bp * coeff
	}
}

func checkArgs(s *linsys.System, ex parallel.Executor) error {
	if s == nil {
		return linsys.ErrNilSystem
	}
	if ex == nil {
		return ErrNilExecutor
	}

	return s.Validate()
}
