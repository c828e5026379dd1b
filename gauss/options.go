// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for Solve and Run.
//
// Design goals:
//   - No global state: every solve carries its own executor, variant and logger.
//   - Safe by construction: constructors panic only on nonsensical values.
//
// Notes:
//   - WithExecutor borrows an executor (the caller closes it); without it,
//     Solve and Run build one from the backend/units pair and close it
//     before returning.
package gauss

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvgauss/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBackend is the goroutine-per-partition loop backend.
	DefaultBackend = parallel.KindLoop

	// DefaultUnits is the number of execution units.
	DefaultUnits = parallel.DefaultUnits

	// DefaultBackSub is the lock-free column-oriented variant.
	DefaultBackSub = BackSubColumn
)

const (
	panicUnitsInvalid   = "gauss: WithBackend: units must be >= 1"
	panicBackSubInvalid = "gauss: WithBackSub: unknown variant"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration of one solve.
type Options struct {
	backend    parallel.Kind
	units      int
	exec       parallel.Executor // borrowed when non-nil
	backSub    BackSub
	triangular bool
	residual   bool
	debug      io.Writer
	logger     *zap.Logger
}

// WithBackend selects the executor backend and unit count used when no
// executor is supplied. Panics when units < 1.
func WithBackend(kind parallel.Kind, units int) Option {
	if units < 1 {
		panic(panicUnitsInvalid)
	}

	return func(o *Options) {
		o.backend = kind
		o.units = units
	}
}

// WithExecutor runs every phase on ex. The executor is not closed.
func WithExecutor(ex parallel.Executor) Option {
	return func(o *Options) { o.exec = ex }
}

// WithBackSub selects the back-substitution variant. Panics on an unknown one.
func WithBackSub(v BackSub) Option {
	if v < 0 || int(v) >= len(backSubNames) {
		panic(panicBackSubInvalid)
	}

	return func(o *Options) { o.backSub = v }
}

// WithTriangular skips elimination: A is taken to be upper-triangular
// already. Generated systems built with linsys.WithTriangular skip it
// regardless.
func WithTriangular(on bool) Option {
	return func(o *Options) { o.triangular = on }
}

// WithResidual keeps a pristine copy of A and b and reports ‖A·x − b‖∞.
// Costs one extra n×n matrix.
func WithResidual() Option {
	return func(o *Options) { o.residual = true }
}

// WithDebug dumps A and b before elimination and A, b, x after back
// substitution to w in fixed-width scientific notation.
func WithDebug(w io.Writer) Option {
	return func(o *Options) { o.debug = w }
}

// WithLogger attaches a zap logger; phases are logged at Debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		backend: DefaultBackend,
		units:   DefaultUnits,
		backSub: DefaultBackSub,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

// executor returns the executor to use and whether the caller owns it.
func (o *Options) executor() (parallel.Executor, bool, error) {
	if o.exec != nil {
		return o.exec, false, nil
	}
	ex, err := parallel.New(o.backend, o.units)
	if err != nil {
		return nil, false, err
	}

	return ex, true, nil
}
