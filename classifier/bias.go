// SPDX-License-Identifier: MIT
// Package classifier: Bias, a running reference covariance used to re-center
// (whiten) incoming covariances.
//
// State:
//   - bias         the reference matrix B,
//   - inverseSqrt  B^{-1/2}, recomputed by every mutator,
//   - count        number of Update calls since the last Compute.
//
// Every mutator validates and computes the new state before assigning it, so a
// failing call leaves the Bias exactly as it was.

package classifier

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"gonum.org/v1/gonum/mat"
)

// Bias holds a reference SPD matrix and its inverse square root. The zero
// value is an empty Bias with default geometry options.
type Bias struct {
	opts        []geometry.Option
	bias        *mat.Dense
	inverseSqrt *mat.Dense
	count       int
}

// NewBias returns an empty Bias; opts configure the means and geodesics it runs.
func NewBias(opts ...geometry.Option) *Bias {
	return &Bias{opts: opts}
}

// commit installs bias (owned by the callee) with its cache and count.
func (b *Bias) commit(tag string, bias *mat.Dense, count int) error {
	isr, err := matrix.InvSqrt(bias)
	if err != nil {
		return classifierErrorf(tag, err)
	}
	b.bias, b.inverseSqrt, b.count = bias, isr, count

	return nil
}

// Compute sets the bias to the mean of dataset under m and resets the count.
//
// Errors: geometry.ErrEmptyDataset and the errors of geometry.Mean and
// matrix.InvSqrt.
func (b *Bias) Compute(dataset []*mat.Dense, m metric.Metric) error {
	mean, err := geometry.Mean(dataset, m, b.opts...)
	if err != nil {
		return classifierErrorf(opBiasCompute, err)
	}

	return b.commit(opBiasCompute, mean, 0)
}

// ComputeGrouped flattens a per-class dataset and calls Compute.
func (b *Bias) ComputeGrouped(dataset [][]*mat.Dense, m metric.Metric) error {
	return b.Compute(flatten(dataset), m)
}

func flatten(dataset [][]*mat.Dense) []*mat.Dense {
	var out []*mat.Dense
	for _, class := range dataset {
		out = append(out, class...)
	}

	return out
}

// Apply returns B^{-1/2}·in·B^{-1/2}ᵀ. The Bias is not modified.
//
// Errors: ErrNotComputed, matrix.ErrEmpty, matrix.ErrDimensionMismatch.
func (b *Bias) Apply(in mat.Matrix) (*mat.Dense, error) {
	if b.inverseSqrt == nil {
		return nil, classifierErrorf(opBiasApply, ErrNotComputed)
	}
	if err := matrix.ValidateSameShape(b.inverseSqrt, in); err != nil {
		return nil, classifierErrorf(opBiasApply, err)
	}
	out, err := matrix.Congruence(b.inverseSqrt, in)
	if err != nil {
		return nil, classifierErrorf(opBiasApply, err)
	}

	return out, nil
}

// ApplyAll applies the bias to every matrix of in, stopping at the first error.
func (b *Bias) ApplyAll(in []*mat.Dense) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(in))
	for i, m := range in {
		var err error
		if out[i], err = b.Apply(m); err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i, err)
		}
	}

	return out, nil
}

// ApplyGrouped applies the bias to every matrix of a per-class dataset.
func (b *Bias) ApplyGrouped(in [][]*mat.Dense) ([][]*mat.Dense, error) {
	out := make([][]*mat.Dense, len(in))
	for k, class := range in {
		var err error
		if out[k], err = b.ApplyAll(class); err != nil {
			return nil, fmt.Errorf("class %d: %w", k, err)
		}
	}

	return out, nil
}

// Update folds sample into the running bias. The first sample after Compute
// (count 0) replaces the bias; later ones move it along the geodesic toward
// the sample by 1/count.
//
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// matrix.ErrNotPositiveDefinite and the errors of geometry.Geodesic.
func (b *Bias) Update(sample mat.Matrix, m metric.Metric) error {
	if err := matrix.ValidateSquare(sample); err != nil {
		return classifierErrorf(opBiasUpdate, err)
	}
	count := b.count + 1
	if count == 1 || b.bias == nil {
		return b.commit(opBiasUpdate, mat.DenseCopyOf(sample), count)
	}
	next, err := geometry.Geodesic(b.bias, sample, 1/float64(count), m, b.opts...)
	if err != nil {
		return classifierErrorf(opBiasUpdate, err)
	}

	return b.commit(opBiasUpdate, next, count)
}

// Set replaces the bias and keeps the count.
//
// Errors: matrix.ErrEmpty, matrix.ErrNonSquare, matrix.ErrNotPositiveDefinite.
func (b *Bias) Set(bias mat.Matrix) error {
	return b.Restore(bias, b.count)
}

// Restore replaces the bias and the count, as a loader does.
func (b *Bias) Restore(bias mat.Matrix, count int) error {
	if err := matrix.ValidateSquare(bias); err != nil {
		return classifierErrorf(opBiasSet, err)
	}

	return b.commit(opBiasSet, mat.DenseCopyOf(bias), count)
}

// Bias returns a copy of the reference matrix (nil when not computed).
func (b *Bias) Bias() *mat.Dense { return matrix.Clone(b.bias) }

// InverseSqrt returns a copy of B^{-1/2} (nil when not computed).
func (b *Bias) InverseSqrt() *mat.Dense { return matrix.Clone(b.inverseSqrt) }

// Count returns the number of updates since the last Compute.
func (b *Bias) Count() int { return b.count }

// EqualBias reports whether a and b hold the same bias (within precision, see
// matrix.Equal) and count. Two nil values are equal.
func EqualBias(a, b *Bias, precision float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.count == b.count && matrix.Equal(a.bias, b.bias, precision)
}

// String renders the bias for diagnostics.
func (b *Bias) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Number of updates: %d\n", b.count)
	if b.bias == nil {
		sb.WriteString("Bias: not computed\n")
		return sb.String()
	}
	sb.WriteString(matrix.Format("Bias", b.bias))
	sb.WriteByte('\n')

	return sb.String()
}
