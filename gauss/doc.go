// Package gauss solves a dense system Ax = b by Gaussian elimination without
// pivoting followed by back substitution, with every phase dispatched through
// a parallel.Executor.
//
// Phases and their parallel shape:
//
//	Eliminate        for pivot = 0..n-1 (strictly sequential):
//	                   rows pivot+1..n-1 split across units; each unit
//	                   updates only its own rows of A and entries of b.
//	BackSubRow       for row = n-1..0 (strictly sequential):
//	                   columns row+1..n-1 split across units; per-unit partial
//	                   sums merged in unit order after the barrier.
//	BackSubRowLocked same split, one shared accumulator behind a sync.Mutex.
//	BackSubColumn    x = b in parallel, then for col = n-1..0:
//	                   x[col] /= a[col][col]; rows 0..col-1 split across units,
//	                   each updating only its own x entries.
//
// Every dispatch is a barrier, so no partial result of one pivot, row or
// column step is visible to the next.
//
// Preconditions: A must be non-singular and produce no zero pivot without
// row exchanges (e.g. diagonally dominant). Violations are not detected:
// division by zero yields NaN/Inf in x, visible through MaxError.
package gauss
