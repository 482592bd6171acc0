// SPDX-License-Identifier: MIT
// Package dataset: conversions between nested slices and dense matrices.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/spdgeom/matrix"
	"gonum.org/v1/gonum/mat"
)

// FromRows builds a dense matrix from row slices. All rows must have the same
// non-zero length.
//
// Errors: ErrEmpty (no rows or empty first row), ErrRagged.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, datasetErrorf(opFromRows, ErrEmpty)
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, datasetErrorf(opFromRows, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(row), c))
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), c, data), nil
}

// ToRows copies m into row slices; an empty matrix yields nil.
func ToRows(m mat.Matrix) [][]float64 {
	r, c := matrix.Dims(m)
	if r == 0 || c == 0 {
		return nil
	}
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}

func fromSet(set [][][]float64) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(set))
	for i, rows := range set {
		m, err := FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i, err)
		}
		out[i] = m
	}

	return out, nil
}

func toSet(ms []*mat.Dense) [][][]float64 {
	out := make([][][]float64, len(ms))
	for i, m := range ms {
		out[i] = ToRows(m)
	}

	return out
}
