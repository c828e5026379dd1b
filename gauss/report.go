// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"
	"time"
)

// Report summarises one solve.
type Report struct {
	N          int
	Backend    string
	Units      int
	BackSub    BackSub
	Triangular bool // elimination was skipped

	// MaxError is max|x[i]-1| for generated systems, NaN otherwise.
	MaxError float64
	// Residual is ‖A·x − b‖∞ against the input system, NaN unless requested.
	Residual float64

	Init           time.Duration
	Eliminate      time.Duration
	BackSubstitute time.Duration
}

// String renders the results line:
//
//	Nthreads= 4  ERR= 1.1e-16  INIT:   0.0012s  GAUS:   0.0450s  BSUB:   0.0010s
//
// followed by "  RES=…" when a residual was computed.
func (r Report) String() string {
	s := fmt.Sprintf("Nthreads=%2d  ERR=%8.1e  INIT: %8.4fs  GAUS: %8.4fs  BSUB: %8.4fs",
		r.Units, r.MaxError,
		r.Init.Seconds(), r.Eliminate.Seconds(), r.BackSubstitute.Seconds())
	if !math.IsNaN(r.Residual) {
		s += fmt.Sprintf("  RES=%8.1e", r.Residual)
	}

	return s
}
