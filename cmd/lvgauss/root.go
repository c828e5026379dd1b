// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvgauss/gauss"
	"github.com/katalvlaran/lvgauss/internal/config"
	"github.com/katalvlaran/lvgauss/internal/logging"
	"github.com/katalvlaran/lvgauss/linsys"
)

// errUsage marks bad command-line input; it maps to exit status 2.
var errUsage = errors.New("usage error")

func usageErr(err error) error {
	return fmt.Errorf("%w: %w", errUsage, err)
}

type flags struct {
	debug       bool
	triangular  bool
	residual    bool
	verbose     bool
	configPath  string
	backend     string
	backSub     string
	seedPolicy  string
	maxElements int
}

// target is the parsed positional input.
type target struct {
	size  int    // > 0 when generating
	path  string // set when loading
	units int    // 0 when not given
}

func parseArgs(args []string) (target, error) {
	var t target
	if n, err := strconv.Atoi(args[0]); err == nil {
		if n <= 0 {
			return t, usageErr(fmt.Errorf("size %d must be positive", n))
		}
		t.size = n
	} else {
		t.path = args[0]
	}
	if len(args) > 1 {
		u, err := strconv.Atoi(args[1])
		if err != nil || u < 1 {
			return t, usageErr(fmt.Errorf("units %q must be a positive integer", args[1]))
		}
		t.units = u
	}

	return t, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		f      flags
		logger *zap.Logger
		cfg    *config.Config
	)

	cmd := &cobra.Command{
		Use:   "lvgauss [flags] <file|size> [units]",
		Short: "Parallel Gaussian elimination solver",
		Long: `lvgauss solves Ax = b by Gaussian elimination without pivoting followed by
back substitution, splitting every phase across parallel execution units.

A numeric first argument n generates an n×n diagonally dominant system whose
exact solution is the all-ones vector; any other argument is a file holding
n followed by n rows of n+1 numbers (a row of A, then its b entry).

Backends: serial, loop (goroutine per partition), pool (persistent workers),
group (errgroup). Back substitution: column, row, row-locked.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return usageErr(err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(f.configPath); err != nil {
				return err
			}
			applyFlags(cmd, cfg, &f)
			if err = cfg.Validate(); err != nil {
				return usageErr(err)
			}
			if logger, err = logging.New(cfg.Logging.Level, f.verbose); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseArgs(args)
			if err != nil {
				return err
			}
			return solve(cmd.OutOrStdout(), cfg, &f, t, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErr(err)
	})

	fl := cmd.Flags()
	fl.BoolVarP(&f.debug, "debug", "d", false, "print A, b and x before and after solving")
	fl.BoolVarP(&f.triangular, "triangular", "t", false, "upper-triangular system: generate one and skip elimination")
	fl.BoolVar(&f.residual, "residual", false, "report the residual ‖A·x − b‖∞ against the input system")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug-level logging to stderr")
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.backend, "backend", "b", "", "parallel backend: serial, loop, pool, group")
	fl.StringVar(&f.backSub, "backsub", "", "back substitution: column, row, row-locked")
	fl.StringVar(&f.seedPolicy, "seed-policy", "", "generator seeding: global, partition")
	fl.IntVar(&f.maxElements, "max-elements", 0, "allocation budget in reals")

	return cmd
}

// applyFlags lets explicitly set flags win over the file and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *flags) {
	fl := cmd.Flags()
	if fl.Changed("backend") {
		cfg.Backend = f.backend
	}
	if fl.Changed("backsub") {
		cfg.BackSub = f.backSub
	}
	if fl.Changed("seed-policy") {
		cfg.SeedPolicy = f.seedPolicy
	}
	if fl.Changed("max-elements") {
		cfg.MaxElements = f.maxElements
	}
}

func solve(out io.Writer, cfg *config.Config, f *flags, t target, logger *zap.Logger) error {
	if t.units > 0 {
		cfg.Units = t.units
	}
	// Validated in PersistentPreRunE.
	kind, _ := cfg.Kind()
	variant, _ := cfg.Variant()
	policy, _ := cfg.Policy()

	var src gauss.Source
	if t.path != "" {
		src = gauss.FromFile(t.path, linsys.WithMaxElements(cfg.MaxElements))
	} else {
		src = gauss.Generated(t.size,
			linsys.WithMaxElements(cfg.MaxElements),
			linsys.WithSeedPolicy(policy),
			linsys.WithTriangular(f.triangular))
	}

	opts := []gauss.Option{
		gauss.WithBackend(kind, cfg.Units),
		gauss.WithBackSub(variant),
		gauss.WithTriangular(f.triangular),
		gauss.WithLogger(logger),
	}
	if f.debug {
		opts = append(opts, gauss.WithDebug(out))
	}
	if f.residual {
		opts = append(opts, gauss.WithResidual())
	}

	_, rep, err := gauss.Run(src, opts...)
	if err != nil {
		return err
	}
	logger.Info("solved",
		zap.Int("n", rep.N),
		zap.String("backend", rep.Backend),
		zap.Int("units", rep.Units),
		zap.Stringer("backsub", rep.BackSub),
		zap.Float64("max_error", rep.MaxError))
	fmt.Fprintln(out, rep.String())

	return nil
}
