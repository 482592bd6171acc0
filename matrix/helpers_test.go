// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic SPD fixtures for the spectral kernels.
//   • Keep all data finite and well-conditioned.

package matrix_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// tol is the absolute tolerance used by element-wise comparisons.
const tol = 1e-9

// zeros returns an r×c zero matrix.
func zeros(r, c int) *mat.Dense {
	return mat.NewDense(r, c, nil)
}

// diag returns the square diagonal matrix with the given entries.
func diag(values ...float64) *mat.Dense {
	m := mat.NewDense(len(values), len(values), nil)
	for i, v := range values {
		m.Set(i, i, v)
	}

	return m
}

// randomSPD returns G·Gᵀ + n·I for a Gaussian G drawn from a fixed seed.
func randomSPD(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, rng.NormFloat64())
		}
	}
	out := mat.NewDense(n, n, nil)
	out.Mul(g, g.T())
	for i := 0; i < n; i++ {
		out.Set(i, i, out.At(i, i)+float64(n))
	}

	return out
}
