// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvgauss/matrix"
)

// DumpInput prints A and b as they are before elimination.
func DumpInput(w io.Writer, s *System) error {
	return dump(w, s, "Original A = ", "Original b = ", false)
}

// DumpResult prints the triangular A, the updated b and the solution x.
func DumpResult(w io.Writer, s *System) error {
	return dump(w, s, "Triangular A = ", "Updated b = ", true)
}

func dump(w io.Writer, s *System, aTitle, bTitle string, withX bool) error {
	if s == nil {
		return ErrNilSystem
	}
	if _, err := fmt.Fprintln(w, aTitle); err != nil {
		return err
	}
	if err := matrix.Fprint(w, s.A); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, bTitle); err != nil {
		return err
	}
	if err := matrix.FprintVec(w, s.B); err != nil {
		return err
	}
	if !withX {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Solution x = "); err != nil {
		return err
	}

	return matrix.FprintVec(w, s.X)
}
