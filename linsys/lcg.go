// SPDX-License-Identifier: MIT

// Package linsys - the pseudo-random source of the system generator.
//
// The generator is the classic ANSI C linear congruential generator
//
//	seed = (1103515245*seed + 12345) mod 2^31
//
// and each draw is mapped to a matrix entry as seed / (2^64-1), the width of
// an unsigned long on LP64 platforms. Off-diagonal entries are therefore
// tiny, and the n/10 diagonal dominates for every n ≥ 1.
//
// Determinism:
//   - The sequence depends only on the starting seed.
//   - Jump advances the state by k draws in O(log k), which is what lets
//     partitions of a matrix be generated concurrently while reproducing
//     the single running sequence bit for bit.
package linsys

import "math"

const (
	lcgMul  uint64 = 1103515245
	lcgInc  uint64 = 12345
	lcgMask uint64 = 1<<31 - 1

	// lcgScale is ULONG_MAX on LP64: entries land in [0, 2^31/2^64).
	lcgScale = float64(math.MaxUint64)
)

// LCG is a linear congruential generator modulo 2^31.
// Not safe for concurrent use; give each worker its own value.
type LCG struct {
	seed uint64
}

// NewLCG returns a generator whose first draw is the successor of seed.
func NewLCG(seed uint64) LCG {
	return LCG{seed: seed}
}

// Seed returns the current state (the last value drawn).
func (g *LCG) Seed() uint64 { return g.seed }

// Next advances the state by one draw and returns it.
func (g *LCG) Next() uint64 {
	// Wrapping mod 2^64 is harmless: 2^31 divides 2^64.
	g.seed = (lcgMul*g.seed + lcgInc) & lcgMask

	return g.seed
}

// Float draws the next value mapped as seed / (2^64-1).
func (g *LCG) Float() float64 {
	return float64(g.Next()) / lcgScale
}

// Jump advances the state by k draws in O(log k) using the closed form of
// the k-fold affine map s ↦ mul·s + inc.
func (g *LCG) Jump(k uint64) {
	accMul, accInc := uint64(1), uint64(0)
	mul, inc := lcgMul, lcgInc
	for k > 0 {
		if k&1 == 1 {
			accMul = (accMul * mul) & lcgMask
			accInc = (accInc*mul + inc) & lcgMask
		}
		inc = ((mul + 1) * inc) & lcgMask
		mul = (mul * mul) & lcgMask
		k >>= 1
	}
	g.seed = (accMul*g.seed + accInc) & lcgMask
}
