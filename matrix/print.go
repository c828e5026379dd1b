// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// CellFormat is the fixed-width scientific layout of one printed cell.
const CellFormat = "%8.1e "

// Fprint writes m row by row, each cell formatted with CellFormat and each
// row terminated by a newline. Intended for small systems in debug mode.
// Complexity: O(r*c).
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Fprint", err)
	}
	bw := bufio.NewWriter(w)
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			fmt.Fprintf(bw, CellFormat, v)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// FprintVec writes v as an n×1 column, one CellFormat cell per line.
func FprintVec(w io.Writer, v []float64) error {
	bw := bufio.NewWriter(w)
	for _, x := range v {
		fmt.Fprintf(bw, CellFormat, x)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
