// SPDX-License-Identifier: MIT
package xmlstore_test

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

// window returns a 4×128 Gaussian window whose channel i has standard
// deviation i+1, plus a large artifact on channel 0 when artifact is set.
func window(seed int64, artifact bool) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(4, 128, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 128; j++ {
			m.Set(i, j, rng.NormFloat64()*float64(i+1))
		}
	}
	if artifact {
		for j := 0; j < 128; j++ {
			m.Set(0, j, m.At(0, j)+200*rng.NormFloat64())
		}
	}

	return m
}

// calibration returns 200 clean windows.
func calibration() []*mat.Dense {
	out := make([]*mat.Dense, 200)
	for i := range out {
		out[i] = window(int64(i+1), false)
	}

	return out
}
