// SPDX-License-Identifier: MIT
// Package: spdgeom/builder
//
// spd.go: random SPD matrices and class-structured SPD sets.
//
// Contract:
//   • RandomSPD returns A·G·Gᵀ + r·I with G ~ N(0,1)^{n×n}; r defaults to n,
//     so the smallest eigenvalue is bounded away from zero.
//   • ClassSets draws each class center with RandomSPD and every sample as
//     C^{1/2}·exp(σ·S)·C^{1/2}, S a random symmetric matrix; the samples
//     concentrate around C in the affine-invariant sense.
//
// Complexity: RandomSPD O(n³); ClassSets O(k·m·n³).

package builder

import (
	"fmt"

	"github.com/katalvlaran/spdgeom/matrix"
	"gonum.org/v1/gonum/mat"
)

// RandomSPD draws one n×n symmetric positive-definite matrix.
// Returns ErrBadSize if n < 1.
func RandomSPD(n int, seed int64, opts ...BuilderOption) (*mat.Dense, error) {
	if n < 1 {
		return nil, builderErrorf(MethodRandomSPD, fmt.Errorf("%w: n=%d", ErrBadSize, n))
	}
	cfg := newBuilderConfig(opts...)

	return randomSPD(n, cfg, rngFrom(cfg, seed)), nil
}

// SPDSet draws count independent n×n SPD matrices from one stream.
func SPDSet(count, n int, seed int64, opts ...BuilderOption) ([]*mat.Dense, error) {
	if count < 1 || n < 1 {
		return nil, builderErrorf(MethodSPDSet, fmt.Errorf("%w: count=%d n=%d", ErrBadSize, count, n))
	}
	cfg := newBuilderConfig(opts...)
	r := rngFrom(cfg, seed)
	out := make([]*mat.Dense, count)
	for i := range out {
		out[i] = randomSPD(n, cfg, r)
	}

	return out, nil
}

// ClassSets draws classes clusters of perClass n×n SPD matrices. Class k is
// centered on a RandomSPD scaled by (k+1), which keeps the centers apart
// along the determinant axis. Dispersion is set by WithSpread.
func ClassSets(classes, perClass, n int, seed int64, opts ...BuilderOption) ([][]*mat.Dense, error) {
	if classes < 1 || perClass < 1 || n < 1 {
		return nil, builderErrorf(MethodClassSets,
			fmt.Errorf("%w: classes=%d perClass=%d n=%d", ErrBadSize, classes, perClass, n))
	}
	cfg := newBuilderConfig(opts...)
	r := rngFrom(cfg, seed)

	out := make([][]*mat.Dense, classes)
	for k := range out {
		center := randomSPD(n, cfg, r)
		center.Scale(float64(k+1), center)
		root, err := matrix.Sqrt(center)
		if err != nil {
			return nil, builderErrorf(MethodClassSets, err)
		}
		out[k] = make([]*mat.Dense, perClass)
		for i := range out[k] {
			s := symmetricNoise(n, cfg.spread, r)
			e, err := matrix.Exp(s)
			if err != nil {
				return nil, builderErrorf(MethodClassSets, err)
			}
			sample, err := matrix.Congruence(root, e)
			if err != nil {
				return nil, builderErrorf(MethodClassSets, err)
			}
			out[k][i] = sample
		}
	}

	return out, nil
}

// randomSPD is the unchecked core of RandomSPD.
func randomSPD(n int, cfg builderConfig, r normalSource) *mat.Dense {
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, r.NormFloat64())
		}
	}
	out := mat.NewDense(n, n, nil)
	out.Mul(g, g.T())
	out.Scale(cfg.amplitude, out)

	ridge := float64(n)
	if cfg.ridgeSet {
		ridge = cfg.ridge
	}
	for i := 0; i < n; i++ {
		out.Set(i, i, out.At(i, i)+ridge)
	}

	return out
}

// symmetricNoise returns σ·(G+Gᵀ)/2 for a Gaussian G.
func symmetricNoise(n int, sigma float64, r normalSource) *mat.Dense {
	s := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := sigma * r.NormFloat64()
			if i != j {
				v /= 2
			}
			s.Set(i, j, v)
			s.Set(j, i, v)
		}
	}

	return s
}

// normalSource is the subset of *rand.Rand the generators draw from.
type normalSource interface {
	NormFloat64() float64
}
