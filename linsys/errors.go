// SPDX-License-Identifier: MIT

package linsys

import "errors"

// Every message is prefixed with "linsys: ...". Context is attached with
// fmt.Errorf at the detection site; callers match with errors.Is.
var (
	// ErrFormat marks malformed, truncated or unreadable augmented-matrix input.
	// Nothing is computed once it is returned.
	ErrFormat = errors.New("linsys: invalid matrix file format")

	// ErrAllocation marks a system whose n²+2n reals cannot be reserved, either
	// because the count overflows, exceeds the element budget, or the runtime
	// refused the allocation.
	ErrAllocation = errors.New("linsys: unable to allocate memory for linear system")

	// ErrNilSystem indicates a nil *System argument.
	ErrNilSystem = errors.New("linsys: nil system")
)
