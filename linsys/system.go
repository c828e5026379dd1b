// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgauss/matrix"
)

// Origin records where a System came from.
type Origin int

const (
	// OriginGenerated systems have the all-ones vector as exact solution.
	OriginGenerated Origin = iota
	// OriginLoaded systems were read from an external source; no reference solution.
	OriginLoaded
)

func (o Origin) String() string {
	if o == OriginLoaded {
		return "loaded"
	}

	return "generated"
}

// System is the solve context for Ax = b.
//   - A is n×n, row-major, mutated in place by elimination.
//   - B is the right-hand side, mutated in place by elimination.
//   - X is the solution, zero until back substitution writes each entry once.
//
// n never changes after construction. The slices are exported so kernels
// can address rows directly; their lengths must not be changed.
type System struct {
	A *matrix.Dense
	B []float64
	X []float64

	n          int
	origin     Origin
	triangular bool
}

// N returns the dimension of the system.
func (s *System) N() int { return s.n }

// Origin reports whether the system was generated or loaded.
func (s *System) Origin() Origin { return s.origin }

// Triangular reports whether A was generated upper-triangular.
func (s *System) Triangular() bool { return s.triangular }

// KnownSolution reports whether the exact solution is the all-ones vector,
// i.e. whether MaxError is meaningful for this system.
func (s *System) KnownSolution() bool { return s.origin == OriginGenerated }

// Clone returns an independent deep copy of s (A, b and x).
func (s *System) Clone() *System {
	cp := &System{
		A:          s.A.Clone().(*matrix.Dense),
		B:          append([]float64(nil), s.B...),
		X:          append([]float64(nil), s.X...),
		n:          s.n,
		origin:     s.origin,
		triangular: s.triangular,
	}

	return cp
}

// ResetSolution zeroes x so the same A, b can be solved again.
func (s *System) ResetSolution() {
	clear(s.X)
}

// Validate checks the shape invariants: A is n×n, len(b) == len(x) == n.
func (s *System) Validate() error {
	if s == nil {
		return ErrNilSystem
	}
	if err := matrix.ValidateSquare(s.A); err != nil {
		return fmt.Errorf("System.Validate: %w", err)
	}
	if s.A.Rows() != s.n {
		return fmt.Errorf("System.Validate: A is %dx%d, n=%d: %w", s.A.Rows(), s.A.Cols(), s.n, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(s.B, s.n); err != nil {
		return fmt.Errorf("System.Validate: b: %w", err)
	}
	if err := matrix.ValidateVecLen(s.X, s.n); err != nil {
		return fmt.Errorf("System.Validate: x: %w", err)
	}

	return nil
}

// New allocates a zero system of dimension n: A (n×n), b and x (n).
//
// Implementation:
//   - Stage 1: reject n <= 0 (matrix.ErrInvalidDimensions).
//   - Stage 2: compute n²+2n without overflow and compare with the budget.
//   - Stage 3: allocate; a runtime allocation panic becomes ErrAllocation.
//
// Notes:
//   - A genuine out-of-memory condition in the Go runtime is fatal and cannot
//     be recovered; the element budget is what keeps it from being reached.
func New(n int, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)

	return allocate(n, o.maxElements)
}

// NewFromDense builds a loaded-origin system from a copy of a and b.
func NewFromDense(a *matrix.Dense, b []float64) (*System, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("NewFromDense: %w", err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("NewFromDense: b: %w", err)
	}
	s, err := allocate(n, DefaultMaxElements)
	if err != nil {
		return nil, err
	}
	if err = s.A.CopyFrom(a); err != nil {
		return nil, fmt.Errorf("NewFromDense: %w", err)
	}
	copy(s.B, b)
	s.origin = OriginLoaded

	return s, nil
}

func allocate(n, limit int) (s *System, err error) {
	if n <= 0 {
		return nil, fmt.Errorf("allocate(n=%d): %w", n, matrix.ErrInvalidDimensions)
	}
	// n*n + 2*n must fit in int and in the budget.
	total := uint64(n)*uint64(n) + 2*uint64(n)
	if uint64(n) >= 1<<31 || total > uint64(math.MaxInt) {
		return nil, fmt.Errorf("allocate(n=%d): element count overflows: %w", n, ErrAllocation)
	}
	if total > uint64(limit) {
		return nil, fmt.Errorf("allocate(n=%d): %d reals exceed budget %d: %w", n, total, limit, ErrAllocation)
	}

	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("allocate(n=%d): %v: %w", n, r, ErrAllocation)
		}
	}()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("allocate(n=%d): %w", n, err)
	}

	return &System{
		A: a,
		B: make([]float64, n),
		X: make([]float64, n),
		n: n,
	}, nil
}
