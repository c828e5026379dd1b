// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/lvgauss/parallel"
)

// SeedPolicy selects how the generator seeds its LCG across row partitions.
type SeedPolicy int

const (
	// SeedGlobal runs one sequence from seed 0 over all off-diagonal entries
	// in row-major order. The matrix is identical for every unit count and
	// every backend.
	SeedGlobal SeedPolicy = iota

	// SeedPerPartition restarts the sequence at the first row index of each
	// partition. The matrix then depends on the unit count; kept so that
	// effect can be reproduced and compared.
	SeedPerPartition
)

func (p SeedPolicy) String() string {
	if p == SeedPerPartition {
		return "partition"
	}

	return "global"
}

// ParseSeedPolicy maps "global" or "partition" to a SeedPolicy.
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch s {
	case "global", "":
		return SeedGlobal, nil
	case "partition", "per-partition":
		return SeedPerPartition, nil
	}

	return 0, fmt.Errorf("linsys: unknown seed policy %q", s)
}

// Generate builds a synthetic n×n system whose exact solution is all ones.
//
// Implementation:
//   - Stage 1: allocate A, b, x within the element budget.
//   - Stage 2: split rows [0, n) across the executor's units; each unit
//     positions its own LCG (jump-ahead or per-partition seed) and fills
//     its rows: a[r][r] = n/10, every other generated entry = next draw.
//   - Stage 3: in the same pass, b[r] = Σ_c a[r][c]·1 in ascending c.
//
// Behavior highlights:
//   - Triangular mode generates only col ≥ row; the strict lower triangle stays zero.
//   - Each unit writes only its own rows of A and entries of b.
//
// Errors:
//   - matrix.ErrInvalidDimensions (n <= 0), ErrAllocation.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Generate(n int, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)
	s, err := allocate(n, o.maxElements)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	s.origin = OriginGenerated
	s.triangular = o.triangular

	diag := float64(n) / 10.0
	o.exec.For(0, n, func(_ int, r parallel.Range) {
		var g LCG
		switch o.seedPolicy {
		case SeedPerPartition:
			g = NewLCG(uint64(r.Lo))
		default:
			g = NewLCG(0)
			g.Jump(drawsBefore(r.Lo, n, o.triangular))
		}
		for row := r.Lo; row < r.Hi; row++ {
			fillRow(s, row, diag, &g, o.triangular)
		}
	})

	return s, nil
}

// fillRow writes row of A and b[row] from g.
func fillRow(s *System, row int, diag float64, g *LCG, triangular bool) {
	a := s.A.RawRow(row)
	col := 0
	if triangular {
		col = row
	}
	for ; col < len(a); col++ {
		if col == row {
			a[col] = diag
			continue
		}
		a[col] = g.Float()
	}

	sum := 0.0
	for _, v := range a {
		sum += v * 1.0
	}
	s.B[row] = sum
}

// drawsBefore counts the LCG draws consumed by rows [0, row).
// Full rows draw n-1 values; triangular row i draws n-1-i.
func drawsBefore(row, n int, triangular bool) uint64 {
	r, m := uint64(row), uint64(n)
	if !triangular {
		return r * (m - 1)
	}

	return r*(m-1) - r*(r-1)/2
}
