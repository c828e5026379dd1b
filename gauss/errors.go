// SPDX-License-Identifier: MIT

package gauss

import "errors"

var (
	// ErrUnknownBackSub is returned by ParseBackSub and Solve for an
	// unrecognised back-substitution variant.
	ErrUnknownBackSub = errors.New("gauss: unknown back-substitution variant")

	// ErrNilExecutor indicates a kernel was called without an executor.
	ErrNilExecutor = errors.New("gauss: nil executor")

	// ErrNilSource indicates Run was called without a system source.
	ErrNilSource = errors.New("gauss: nil source")
)
