// SPDX-License-Identifier: MIT
// Package matrix: plain-text codec used by persistence layers.
//
// Format:
//   - rows separated by '\n', values inside a row separated by a single space;
//   - shortest round-trip float formatting (strconv 'g', -1);
//   - no shape header: the caller stores dimensions out of band (XML attribute).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// MarshalText renders m in row-major text. Empty matrices render as "".
func MarshalText(m mat.Matrix) string {
	if IsEmpty(m) {
		return ""
	}
	r, c := m.Dims()
	var sb strings.Builder
	for i := 0; i < r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
	}

	return sb.String()
}

// UnmarshalText parses exactly rows·cols whitespace-separated finite numbers
// into a rows×cols matrix. rows == 0 or cols == 0 yields (nil, nil) when the
// text holds no value.
//
// Errors: ErrMalformedText (wrong count, unparsable or non-finite token,
// negative dimension).
func UnmarshalText(text string, rows, cols int) (*mat.Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opUnmarshalText, ErrMalformedText)
	}
	fields := strings.Fields(text)
	if rows == 0 || cols == 0 {
		if len(fields) != 0 {
			return nil, matrixErrorf(opUnmarshalText,
				fmt.Errorf("%w: want 0 values, got %d", ErrMalformedText, len(fields)))
		}
		return nil, nil
	}
	// rows·cols may overflow; compare through division instead.
	if len(fields)%cols != 0 || len(fields)/cols != rows {
		return nil, matrixErrorf(opUnmarshalText,
			fmt.Errorf("%w: want %d×%d values, got %d", ErrMalformedText, rows, cols, len(fields)))
	}
	data := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opUnmarshalText,
				fmt.Errorf("%w: value %d %q", ErrMalformedText, i, f))
		}
		data[i] = v
	}

	return mat.NewDense(rows, cols, data), nil
}
