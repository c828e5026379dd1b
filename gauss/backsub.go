// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/lvgauss/linsys"
	"github.com/katalvlaran/lvgauss/parallel"
)

// BackSub selects the back-substitution algorithm.
type BackSub int

const (
	// BackSubColumn subtracts each solved column from the rows above it.
	// Embarrassingly parallel, no shared state.
	BackSubColumn BackSub = iota

	// BackSubRow reduces each row's dot product across units into per-unit
	// partial sums, merged in unit order after the barrier. Deterministic
	// for a fixed unit count.
	BackSubRow

	// BackSubRowLocked reduces each row's dot product into one shared
	// accumulator guarded by a mutex. Merge order follows completion order,
	// so the last bits of x may vary from run to run.
	BackSubRowLocked
)

var backSubNames = [...]string{
	BackSubColumn:    "column",
	BackSubRow:       "row",
	BackSubRowLocked: "row-locked",
}

func (b BackSub) String() string {
	if b < 0 || int(b) >= len(backSubNames) {
		return fmt.Sprintf("BackSub(%d)", int(b))
	}

	return backSubNames[b]
}

// BackSubs lists every variant.
func BackSubs() []BackSub {
	return []BackSub{BackSubColumn, BackSubRow, BackSubRowLocked}
}

// ParseBackSub maps "column", "row" or "row-locked" (case-insensitive) to a BackSub.
func ParseBackSub(s string) (BackSub, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range backSubNames {
		if n == name {
			return BackSub(v), nil
		}
	}
	if name == "col" {
		return BackSubColumn, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBackSub, s)
}

// BackSubstitute solves the upper-triangular system in s into s.X with the
// chosen variant. Entries of A below the diagonal are never read.
func BackSubstitute(s *linsys.System, ex parallel.Executor, variant BackSub) error {
	switch variant {
	case BackSubColumn:
		return BackSubstituteColumn(s, ex)
	case BackSubRow:
		return BackSubstituteRow(s, ex)
	case BackSubRowLocked:
		return BackSubstituteRowLocked(s, ex)
	}

	return fmt.Errorf("BackSubstitute: %w: %s", ErrUnknownBackSub, variant)
}

// BackSubstituteRow computes, for row = n-1 down to 0,
//
//	x[row] = (b[row] - Σ_{c>row} a[row][c]·x[c]) / a[row][row]
//
// The sum is split across units by column; unit u stores its partial sum in
// slot u and the slots are added in ascending order once the barrier
// releases. Rows themselves stay strictly sequential: row needs every x[c]
// with c > row.
//
// Complexity: Time O(n²/2) flops, n barriers; Space O(units).
func BackSubstituteRow(s *linsys.System, ex parallel.Executor) error {
	if err := checkArgs(s, ex); err != nil {
		return fmt.Errorf("BackSubstituteRow: %w", err)
	}
	n := s.N()
	x, b := s.X, s.B
	partial := make([]float64, ex.Units())

	var sum float64
	for row := n - 1; row >= 0; row-- {
		arow := s.A.RawRow(row)
		clear(partial)
		ex.For(row+1, n, func(unit int, r parallel.Range) {
			partial[unit] = dot(arow, x, r)
		})
		sum = 0.0
		for _, p := range partial {
			sum += p
		}
		x[row] = (b[row] - sum) / arow[row]
	}

	return nil
}

// BackSubstituteRowLocked is BackSubstituteRow with a single shared
// accumulator: each unit computes its local dot product and adds it to the
// accumulator under a mutex.
func BackSubstituteRowLocked(s *linsys.System, ex parallel.Executor) error {
	if err := checkArgs(s, ex); err != nil {
		return fmt.Errorf("BackSubstituteRowLocked: %w", err)
	}
	n := s.N()
	x, b := s.X, s.B

	var (
		mu  sync.Mutex
		acc float64
	)
	for row := n - 1; row >= 0; row-- {
		arow := s.A.RawRow(row)
		acc = 0.0
		ex.For(row+1, n, func(_ int, r parallel.Range) {
			local := dot(arow, x, r)
			mu.Lock()
			acc += local
			mu.Unlock()
		})
		x[row] = (b[row] - acc) / arow[row]
	}

	return nil
}

// BackSubstituteColumn copies b into x in parallel, then for col = n-1 down
// to 0 divides x[col] by a[col][col] and dispatches rows [0, col) so each
// unit subtracts a[row][col]·x[col] from its own x[row].
//
// Complexity: Time O(n²/2) flops, n+1 barriers; Space O(1) extra.
func BackSubstituteColumn(s *linsys.System, ex parallel.Executor) error {
	if err := checkArgs(s, ex); err != nil {
		return fmt.Errorf("BackSubstituteColumn: %w", err)
	}
	n := s.N()
	x, b := s.X, s.B

	ex.For(0, n, func(_ int, r parallel.Range) {
		copy(x[r.Lo:r.Hi], b[r.Lo:r.Hi])
	})
	for col := n - 1; col >= 0; col-- {
		x[col] /= s.A.RawRow(col)[col]
		xc := x[col]
		ex.For(0, col, func(_ int, r parallel.Range) {
			for row := r.Lo; row < r.Hi; row++ {
				x[row] -= s.A.RawRow(row)[col] * xc
			}
		})
	}

	return nil
}

// dot returns Σ_{c∈r} a[c]·x[c] in ascending c.
func dot(a, x []float64, r parallel.Range) float64 {
	sum := 0.0
	for c := r.Lo; c < r.Hi; c++ {
		sum += a[c] * x[c]
	}

	return sum
}
