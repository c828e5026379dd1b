// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvgauss/linsys"
	"github.com/katalvlaran/lvgauss/parallel"
)

// Source produces the system a pipeline solves. It receives the pipeline's
// executor so generation can share the same units.
type Source func(ex parallel.Executor) (*linsys.System, error)

// Generated returns a Source that calls linsys.Generate(n, opts...) on the
// pipeline executor.
func Generated(n int, opts ...linsys.Option) Source {
	return func(ex parallel.Executor) (*linsys.System, error) {
		all := append([]linsys.Option{linsys.WithExecutor(ex)}, opts...)
		return linsys.Generate(n, all...)
	}
}

// FromFile returns a Source that calls linsys.Load(path, opts...).
func FromFile(path string, opts ...linsys.Option) Source {
	return func(parallel.Executor) (*linsys.System, error) {
		return linsys.Load(path, opts...)
	}
}

// Run is the whole pipeline: Source → Eliminate → BackSubstitute → verify.
// The returned Report includes the time spent in src as Init.
//
// Errors:
//   - ErrNilSource; whatever src returns (linsys.ErrFormat, linsys.ErrAllocation,
//     …); executor construction errors. No numeric work starts after an error.
func Run(src Source, opts ...Option) (*linsys.System, Report, error) {
	if src == nil {
		return nil, Report{}, fmt.Errorf("Run: %w", ErrNilSource)
	}
	o := gatherOptions(opts...)
	ex, owned, err := o.executor()
	if err != nil {
		return nil, Report{}, fmt.Errorf("Run: %w", err)
	}
	if owned {
		defer ex.Close()
	}

	start := time.Now()
	s, err := src(ex)
	if err != nil {
		return nil, Report{}, fmt.Errorf("Run: %w", err)
	}
	initTime := time.Since(start)
	o.logger.Debug("system ready",
		zap.Int("n", s.N()),
		zap.Stringer("origin", s.Origin()),
		zap.Duration("elapsed", initTime))

	rep, err := solve(s, ex, &o)
	if err != nil {
		return nil, Report{}, fmt.Errorf("Run: %w", err)
	}
	rep.Init = initTime

	return s, rep, nil
}

// Solve eliminates and back-substitutes s in place and verifies the result.
//
// Implementation:
//   - Stage 1: resolve options and the executor (borrowed or owned).
//   - Stage 2: optionally snapshot A, b for the residual; optionally dump.
//   - Stage 3: Eliminate unless triangular; then BackSubstitute with the
//     selected variant; each phase is timed.
//   - Stage 4: MaxError for generated systems; residual when requested.
//
// Errors:
//   - linsys.ErrNilSystem, shape errors, ErrUnknownBackSub, executor errors.
func Solve(s *linsys.System, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	ex, owned, err := o.executor()
	if err != nil {
		return Report{}, fmt.Errorf("Solve: %w", err)
	}
	if owned {
		defer ex.Close()
	}
	rep, err := solve(s, ex, &o)
	if err != nil {
		return Report{}, fmt.Errorf("Solve: %w", err)
	}

	return rep, nil
}

func solve(s *linsys.System, ex parallel.Executor, o *Options) (Report, error) {
	if err := checkArgs(s, ex); err != nil {
		return Report{}, err
	}
	skip := o.triangular || s.Triangular()
	rep := Report{
		N:          s.N(),
		Backend:    backendName(ex),
		Units:      ex.Units(),
		BackSub:    o.backSub,
		Triangular: skip,
		MaxError:   math.NaN(),
		Residual:   math.NaN(),
	}

	var pristine *linsys.System
	if o.residual {
		pristine = s.Clone()
	}
	if o.debug != nil {
		if err := linsys.DumpInput(o.debug, s); err != nil {
			return Report{}, fmt.Errorf("debug dump: %w", err)
		}
	}

	start := time.Now()
	if !skip {
		if err := Eliminate(s, ex); err != nil {
			return Report{}, err
		}
	}
	rep.Eliminate = time.Since(start)
	o.logger.Debug("phase done",
		zap.String("phase", "eliminate"),
		zap.Bool("skipped", skip),
		zap.Int("n", rep.N),
		zap.Int("units", rep.Units),
		zap.Duration("elapsed", rep.Eliminate))

	start = time.Now()
	if err := BackSubstitute(s, ex, o.backSub); err != nil {
		return Report{}, err
	}
	rep.BackSubstitute = time.Since(start)
	o.logger.Debug("phase done",
		zap.String("phase", "backsub"),
		zap.Stringer("variant", o.backSub),
		zap.Int("n", rep.N),
		zap.Int("units", rep.Units),
		zap.Duration("elapsed", rep.BackSubstitute))

	if o.debug != nil {
		if err := linsys.DumpResult(o.debug, s); err != nil {
			return Report{}, fmt.Errorf("debug dump: %w", err)
		}
	}
	if s.KnownSolution() {
		rep.MaxError = linsys.MaxError(s.X)
	}
	if pristine != nil {
		copy(pristine.X, s.X)
		res, err := linsys.Residual(pristine)
		if err != nil {
			return Report{}, err
		}
		rep.Residual = res
	}

	return rep, nil
}

// backendName reports the Kind behind the built-in executors.
func backendName(ex parallel.Executor) string {
	switch ex.(type) {
	case parallel.Serial, *parallel.Serial:
		return parallel.KindSerial.String()
	case *parallel.Loop:
		return parallel.KindLoop.String()
	case *parallel.Pool:
		return parallel.KindPool.String()
	case *parallel.Group:
		return parallel.KindGroup.String()
	}

	return fmt.Sprintf("%T", ex)
}
