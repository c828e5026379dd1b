// SPDX-License-Identifier: MIT

package linsys

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Read parses an augmented matrix [A | b] from r:
//
//	n
//	a00 a01 … a0(n-1) b0
//	…
//
// Tokens are whitespace separated; line breaks carry no meaning. Anything
// after the last expected token is ignored.
//
// Errors:
//   - ErrFormat for a missing or non-integer n, n <= 0, a missing or
//     malformed number, or a read failure. The message names the row and
//     column of the offending token.
//   - ErrAllocation when n exceeds the element budget (WithMaxElements).
//
// Complexity: O(n²).
func Read(r io.Reader, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrFormat, err)
		}

		return "", io.ErrUnexpectedEOF
	}

	tok, err := next()
	if err != nil {
		return nil, fmt.Errorf("Read: dimension: %w", formatErr(err))
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("Read: dimension %q: %w", tok, ErrFormat)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Read: dimension %d must be positive: %w", n, ErrFormat)
	}

	s, err := allocate(n, o.maxElements)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	s.origin = OriginLoaded

	var v float64
	for row := 0; row < n; row++ {
		a := s.A.RawRow(row)
		for col := 0; col <= n; col++ {
			if tok, err = next(); err != nil {
				return nil, fmt.Errorf("Read: row %d col %d: %w", row, col, formatErr(err))
			}
			if v, err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("Read: row %d col %d: %q: %w", row, col, tok, ErrFormat)
			}
			if col < n {
				a[col] = v
			} else {
				s.B[row] = v
			}
		}
	}

	return s, nil
}

// formatErr folds end-of-input into ErrFormat; scanner errors already are.
func formatErr(err error) error {
	if err == io.ErrUnexpectedEOF {
		return fmt.Errorf("unexpected end of input: %w", ErrFormat)
	}

	return err
}

// Load opens path and Reads a system from it.
// An unopenable file is reported as ErrFormat wrapping the os error.
func Load(path string, opts ...Option) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w: %w", ErrFormat, err)
	}
	defer f.Close()

	s, err := Read(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, fmt.Errorf("Load %q: %w", path, err)
	}

	return s, nil
}

// Write emits s in the format Read accepts. Values use the shortest
// representation that parses back to the identical float64, so
// Write→Read reproduces A and b exactly.
func Write(w io.Writer, s *System) error {
	if s == nil {
		return fmt.Errorf("Write: %w", ErrNilSystem)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(s.n))
	bw.WriteByte('\n')

	buf := make([]byte, 0, 32)
	for row := 0; row < s.n; row++ {
		for _, v := range s.A.RawRow(row) {
			buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
			bw.Write(buf)
			bw.WriteByte(' ')
		}
		buf = strconv.AppendFloat(buf[:0], s.B[row], 'g', -1, 64)
		bw.Write(buf)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// Save writes s to path, creating or truncating the file.
func Save(path string, s *System) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save: %w", cerr)
		}
	}()

	return Write(f, s)
}
