// Package linsys holds the dense linear system Ax = b that one solve owns,
// together with the ways to obtain one and to judge the answer.
//
//   - System: the solve context (A, b, x and the fixed dimension n).
//   - Generate: a synthetic, diagonally dominant system whose exact solution
//     is the all-ones vector, filled by a linear congruential generator.
//   - Read/Load and Write/Save: the plain-text augmented-matrix format
//     (n, then n rows of n+1 numbers).
//   - MaxError: the verifier, max |x[i] - 1| over the solution.
//
// A System is owned by exactly one solve pipeline. Solvers may mutate A and b
// concurrently only along disjoint rows; linsys itself never spawns work
// except through the parallel.Executor handed to Generate.
package linsys
