// SPDX-License-Identifier: MIT
// Package geometry_test contains shared fixtures for the geometry tests.

package geometry_test

import (
	"math/rand"

	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/gonum/mat"
)

// diag returns the square diagonal matrix with the given entries.
func diag(values ...float64) *mat.Dense {
	m := mat.NewDense(len(values), len(values), nil)
	for i, v := range values {
		m.Set(i, i, v)
	}

	return m
}

// scaledIdentity returns s·I of size n.
func scaledIdentity(n int, s float64) *mat.Dense {
	v := make([]float64, n)
	for i := range v {
		v[i] = s
	}

	return diag(v...)
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

// capture returns a debug-level logger whose entries are recorded by the hook,
// wrapped as a geometry option.
func capture() (geometry.Option, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return geometry.WithLogger(logger), hook
}
