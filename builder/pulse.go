// SPDX-License-Identifier: MIT
// Package: spdgeom/builder
//
// pulse.go: rectangular gate and artifact bursts.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pulse returns n samples of a 0/1 rectangular wave with the given
// frequency in cycles per window and duty cycle in [0,1]. Sample t is 1 when
// the fractional phase t·frequency/n lies below duty.
// Returns nil if n < 1, frequency <= 0 or duty is outside [0,1].
func Pulse(n int, frequency, duty float64) []float64 {
	if n < 1 || !(frequency > 0) || !(duty >= 0 && duty <= 1) {
		return nil
	}
	out := make([]float64, n)
	for t := range out {
		phase := float64(t) * frequency / float64(n)
		if phase-math.Floor(phase) < duty {
			out[t] = 1
		}
	}

	return out
}

// AddBurst adds Gaussian noise with standard deviation amplitude to one
// channel of w in place. WithEnvelope restricts the burst to the samples
// where Pulse is 1; WithSeed and WithRand select the stream.
// Returns ErrBadChannel for an out-of-range channel and ErrBadSize for an
// empty window or a non-positive amplitude.
func AddBurst(w *mat.Dense, channel int, amplitude float64, seed int64, opts ...BuilderOption) error {
	if w == nil || w.IsEmpty() || !(amplitude > 0) {
		return builderErrorf(MethodAddBurst, fmt.Errorf("%w: amplitude=%g", ErrBadSize, amplitude))
	}
	rows, cols := w.Dims()
	if channel < 0 || channel >= rows {
		return builderErrorf(MethodAddBurst, fmt.Errorf("%w: %d of %d", ErrBadChannel, channel, rows))
	}
	cfg := newBuilderConfig(opts...)
	r := rngFrom(cfg, seed)

	gate := []float64(nil)
	if cfg.gated {
		gate = Pulse(cols, cfg.frequency, cfg.duty)
	}
	for t := 0; t < cols; t++ {
		if gate != nil && gate[t] == 0 {
			continue
		}
		w.Set(channel, t, w.At(channel, t)+amplitude*r.NormFloat64())
	}

	return nil
}
