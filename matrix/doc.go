// Package matrix provides the dense storage used by the lvgauss solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with checked accessors (At/Set/Row)
//     and an unchecked RawRow for kernels that partition rows across workers.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateUpperTriangular) shared by every solver entry point.
//   - MatVec for residual checks, and Fprint/FprintVec for the fixed-width
//     scientific dump used in debug mode.
//
// Everything is deterministic: fixed loop orders, no map iteration, no hidden
// randomness. Dense is NOT safe for concurrent mutation of the same element;
// solvers guarantee that concurrent writers touch disjoint rows.
package matrix
