// SPDX-License-Identifier: MIT

package linsys

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvgauss/matrix"
)

// MaxError returns max_i |x[i] - 1|, the distance of x from the known
// solution of a generated system. NaN or Inf in x propagates into the
// result, which is how a zero pivot becomes visible.
// Only meaningful when the system's KnownSolution() is true.
func MaxError(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	// The Inf-norm distance skips NaN comparisons; report it explicitly.
	if floats.HasNaN(x) {
		return math.NaN()
	}
	ones := make([]float64, len(x))
	for i := range ones {
		ones[i] = 1.0
	}

	return floats.Distance(x, ones, math.Inf(1))
}

// Residual returns ‖A·x − b‖∞ for the system's current A, b and x.
// Call it on a pristine copy taken before elimination to judge a loaded system.
func Residual(s *System) (float64, error) {
	if s == nil {
		return 0, ErrNilSystem
	}

	return matrix.Residual(s.A, s.X, s.B)
}
