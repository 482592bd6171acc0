// SPDX-License-Identifier: MIT
// Package: spdgeom/covariance
//
// covariance.go: covariance estimators over a signal window.
//
// A window is a channels×samples matrix: every row is one channel. The
// estimated covariance is channels×channels.
//
// Determinism:
//   • Pure functions; inputs are never modified.
//
// Complexity:
//   • COV/COR: O(n²·s). SCM/LWF/OAS: O(n²·s) dominated by the products. IDE: O(n²).

package covariance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spdgeom/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// oasEpsilon is the denominator threshold of the OAS shrinkage.
const oasEpsilon = 0x1p-52

// Variance returns the population variance of x (0 for an empty slice).
// It is computed around the mean, so a large offset cannot drive it negative.
func Variance(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return math.Max(0, stat.PopVariance(x, nil))
}

// Covariance returns the population covariance of x and y (0 when the lengths
// differ or are zero), computed around the means.
func Covariance(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	return stat.Covariance(x, y, nil) * float64(n-1) / float64(n)
}

// Shrink returns (1−λ)·C + λ·tr(C)/n·I.
//
// Errors: ErrInvalidShrinkage, matrix.ErrEmpty, matrix.ErrNonSquare.
func Shrink(cov mat.Matrix, shrinkage float64) (*mat.Dense, error) {
	if !(shrinkage >= 0 && shrinkage <= 1) {
		return nil, covarianceErrorf(opShrink, ErrInvalidShrinkage)
	}
	if err := matrix.ValidateSquare(cov); err != nil {
		return nil, covarianceErrorf(opShrink, err)
	}

	return shrink(cov, shrinkage), nil
}

// shrink is the unchecked core of Shrink.
func shrink(cov mat.Matrix, shrinkage float64) *mat.Dense {
	n, _ := cov.Dims()
	coef := shrinkage * mat.Trace(cov) / float64(n)
	out := mat.NewDense(n, n, nil)
	out.Scale(1-shrinkage, cov)
	for i := 0; i < n; i++ {
		out.Set(i, i, out.At(i, i)+coef)
	}

	return out
}

// Estimate standardizes the rows of samples and returns the covariance chosen
// by est.
//
// Errors: matrix.ErrEmpty, ErrUnknownEstimator, ErrZeroVariance (COR).
func Estimate(samples mat.Matrix, est Estimator, std Standardization) (*mat.Dense, error) {
	if err := matrix.ValidateNotEmpty(samples); err != nil {
		return nil, covarianceErrorf(opEstimate, err)
	}
	x := Standardize(samples, std)

	switch est {
	case COV:
		return cov(x), nil
	case SCM:
		return scm(x), nil
	case LWF:
		return lwf(x), nil
	case OAS:
		return oas(x), nil
	case MCD, IDE:
		r, _ := x.Dims()
		return matrix.Identity(r), nil
	case COR:
		c, err := cor(x)
		if err != nil {
			return nil, covarianceErrorf(opEstimate, err)
		}
		return c, nil
	default:
		return nil, covarianceErrorf(opEstimate, fmt.Errorf("%w: %d", ErrUnknownEstimator, int(est)))
	}
}

// cov is the population covariance of the rows of x.
func cov(x *mat.Dense) *mat.Dense {
	n, _ := x.Dims()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		ri := x.RawRowView(i)
		out.Set(i, i, Variance(ri))
		for j := i + 1; j < n; j++ {
			c := Covariance(ri, x.RawRowView(j))
			out.Set(i, j, c)
			out.Set(j, i, c)
		}
	}

	return out
}

func scm(x *mat.Dense) *mat.Dense {
	n, _ := x.Dims()
	out := mat.NewDense(n, n, nil)
	out.Mul(x, x.T())
	if tr := mat.Trace(out); tr != 0 {
		out.Scale(1/tr, out)
	}

	return out
}

// lwf applies the Ledoit-Wolf shrinkage to the population covariance.
func lwf(x *mat.Dense) *mat.Dense {
	n, s := x.Dims()
	c := cov(x)
	mu := mat.Trace(c) / float64(n)

	var delta float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := c.At(i, j)
			if i == j {
				d -= mu
			}
			delta += d * d
		}
	}
	delta /= float64(n)

	x2 := mat.NewDense(n, s, nil)
	x2.MulElem(x, x)
	p := mat.NewDense(n, n, nil)
	p.Mul(x2, x2.T())
	var beta float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cij := c.At(i, j)
			beta += p.At(i, j)/float64(s) - cij*cij
		}
	}
	beta /= float64(n * s)

	beta = math.Min(beta, delta)
	shrinkage := 0.0
	if beta > 0 {
		shrinkage = beta / delta
	}

	return shrink(c, shrinkage)
}

// oas applies the oracle approximating shrinkage (Chen et al.).
func oas(x *mat.Dense) *mat.Dense {
	n, s := x.Dims()
	c := cov(x)
	mu := mat.Trace(c) / float64(n)
	mu2 := mu * mu

	var alpha float64
	for i := 0; i < n; i++ {
		row := c.RawRowView(i)
		alpha += floats.Dot(row, row)
	}
	alpha /= float64(n * n)

	num := alpha + mu2
	den := float64(s+1) * (alpha - mu2/float64(n))
	shrinkage := 1.0
	if math.Abs(den) > oasEpsilon {
		shrinkage = math.Min(num/den, 1)
	}

	return shrink(c, shrinkage)
}

// cor normalizes the covariance into Pearson correlations.
func cor(x *mat.Dense) (*mat.Dense, error) {
	c := cov(x)
	n, _ := c.Dims()
	d := make([]float64, n)
	for i := range d {
		v := c.At(i, i)
		if v <= 0 {
			return nil, ErrZeroVariance
		}
		d[i] = math.Sqrt(v)
	}
	c.Apply(func(i, j int, v float64) float64 { return v / (d[i] * d[j]) }, c)

	return c, nil
}
