// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for generation and loading.
//
// Design goals:
//   - Deterministic behavior: the same options always produce the same system.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package linsys

import "github.com/katalvlaran/lvgauss/parallel"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxElements caps n²+2n at 2^30 reals (8 GiB of float64).
	DefaultMaxElements = 1 << 30

	// DefaultTriangular generates a full matrix.
	DefaultTriangular = false

	// DefaultSeedPolicy is one running seed across the whole matrix.
	DefaultSeedPolicy = SeedGlobal
)

const (
	panicMaxElementsInvalid = "linsys: WithMaxElements: limit must be > 0"
	panicSeedPolicyInvalid  = "linsys: WithSeedPolicy: unknown policy"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration; fields are unexported and set only
// through Option constructors.
type Options struct {
	maxElements int
	triangular  bool
	seedPolicy  SeedPolicy
	exec        parallel.Executor
}

// WithMaxElements sets the budget for n²+2n; larger systems fail with ErrAllocation.
// Panics when limit <= 0.
func WithMaxElements(limit int) Option {
	if limit <= 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = limit }
}

// WithTriangular generates only the upper triangle (col >= row), leaving the
// strict lower triangle zero so elimination can be skipped.
func WithTriangular(on bool) Option {
	return func(o *Options) { o.triangular = on }
}

// WithSeedPolicy selects how the generator seeds its LCG. Panics on an
// unknown policy.
func WithSeedPolicy(p SeedPolicy) Option {
	if p != SeedGlobal && p != SeedPerPartition {
		panic(panicSeedPolicyInvalid)
	}

	return func(o *Options) { o.seedPolicy = p }
}

// WithExecutor lets Generate fill rows in parallel. nil restores serial generation.
// The executor is borrowed, never closed.
func WithExecutor(ex parallel.Executor) Option {
	return func(o *Options) { o.exec = ex }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxElements: DefaultMaxElements,
		triangular:  DefaultTriangular,
		seedPolicy:  DefaultSeedPolicy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.exec == nil {
		o.exec = parallel.Serial{}
	}

	return o
}
