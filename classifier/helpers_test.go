// SPDX-License-Identifier: MIT
package classifier_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

func diag(values ...float64) *mat.Dense {
	m := mat.NewDense(len(values), len(values), nil)
	for i, v := range values {
		m.Set(i, i, v)
	}

	return m
}

// scalar returns the 1×1 matrix {v}.
func scalar(v float64) *mat.Dense {
	return mat.NewDense(1, 1, []float64{v})
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
