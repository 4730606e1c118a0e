// SPDX-License-Identifier: MIT
// Package matrix - user-facing rendering.
//
// Format writes one row per line. Each element is printed with a minimum
// field width and a number of significant digits (the %*.*g verb), followed
// by a single space. A blank line terminates the matrix. Non-finite values
// render as inf, -inf and nan.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

const opFormat = "Format"

// Format renders m to w using the configured width and precision.
//
// Errors:
//   - ErrNilMatrix; any write error from w.
//
// Complexity:
//   - Time O(r*c).
func Format(w io.Writer, m Matrix, opts ...FormatOption) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFormat, err)
	}
	o := gatherFormatOptions(opts...)

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opFormat, err)
			}
			writeValue(bw, v, o)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	if err = bw.Flush(); err != nil {
		return matrixErrorf(opFormat, err)
	}

	return nil
}

// FormatString is Format into a string. Errors only on a nil matrix.
func FormatString(m Matrix, opts ...FormatOption) (string, error) {
	var b strings.Builder
	if err := Format(&b, m, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// writeValue prints one element and its trailing space.
func writeValue(w io.Writer, v float64, o formatOptions) {
	switch {
	case math.IsNaN(v):
		fmt.Fprintf(w, "%*s ", o.width, "nan")
	case math.IsInf(v, 1):
		fmt.Fprintf(w, "%*s ", o.width, "inf")
	case math.IsInf(v, -1):
		fmt.Fprintf(w, "%*s ", o.width, "-inf")
	default:
		fmt.Fprintf(w, "%*.*g ", o.width, o.precision, v)
	}
}
