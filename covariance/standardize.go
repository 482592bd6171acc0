// SPDX-License-Identifier: MIT
// Package: spdgeom/covariance
//
// standardize.go: per-row centering and standard scaling of signal windows.

package covariance

import (
	"math"

	"github.com/katalvlaran/spdgeom/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// scaleEpsilon is the variance under which a row is only centered, not scaled.
const scaleEpsilon = 0x1p-52

// Standardize returns a standardized copy of samples; unknown modes copy unchanged.
func Standardize(samples mat.Matrix, std Standardization) *mat.Dense {
	switch std {
	case Center:
		return CenterRows(samples)
	case StandardScale:
		out, _ := StandardScaleRows(samples)
		return out
	default:
		return matrix.Clone(samples)
	}
}

// CenterRows returns a copy of samples with the mean of every row removed.
func CenterRows(samples mat.Matrix) *mat.Dense {
	out := matrix.Clone(samples)
	if out == nil {
		return nil
	}
	r, _ := out.Dims()
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		floats.AddConst(-floats.Sum(row)/float64(len(row)), row)
	}

	return out
}

// StandardScaleRows returns a copy of samples where every row is centered and
// divided by its standard deviation, together with the per-row scales. A row
// with (numerically) zero variance keeps scale 1.
func StandardScaleRows(samples mat.Matrix) (*mat.Dense, []float64) {
	out := matrix.Clone(samples)
	if out == nil {
		return nil, nil
	}
	r, _ := out.Dims()
	scale := make([]float64, r)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		v := Variance(row)
		scale[i] = 1
		if math.Abs(v) > scaleEpsilon {
			scale[i] = math.Sqrt(v)
		}
		floats.AddConst(-floats.Sum(row)/float64(len(row)), row)
		floats.Scale(1/scale[i], row)
	}

	return out, scale
}
