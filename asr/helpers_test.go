// SPDX-License-Identifier: MIT
package asr_test

import (
	"math/rand"

	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/gonum/mat"
)

const (
	trainWindows = 200
	channels     = 4
	samples      = 128
)

// noise returns a channels×samples Gaussian window whose channel i has
// standard deviation i+1.
func noise(seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(channels, samples, nil)
	for i := 0; i < channels; i++ {
		for j := 0; j < samples; j++ {
			m.Set(i, j, rng.NormFloat64()*float64(i+1))
		}
	}

	return m
}

// calibration returns trainWindows clean windows.
func calibration() []*mat.Dense {
	out := make([]*mat.Dense, trainWindows)
	for i := range out {
		out[i] = noise(int64(i + 1))
	}

	return out
}

// artifact returns a window whose first channel carries a burst fifty times
// louder than the loudest clean channel.
func artifact(seed int64) *mat.Dense {
	w := noise(seed)
	rng := rand.New(rand.NewSource(-seed))
	for j := 0; j < samples; j++ {
		w.Set(0, j, w.At(0, j)+200*rng.NormFloat64())
	}

	return w
}

func diag(values ...float64) *mat.Dense {
	m := mat.NewDense(len(values), len(values), nil)
	for i, v := range values {
		m.Set(i, i, v)
	}

	return m
}

// capture returns a debug-level logger option and its recording hook.
func capture() (geometry.Option, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return geometry.WithLogger(logger), hook
}
