// SPDX-License-Identifier: MIT
// Package: spdgeom/builder
//
// windows.go: Gaussian multichannel signal windows.
//
// A window is a channels×samples matrix, one row per channel. Channel i is
// zero-mean Gaussian noise with standard deviation amplitude·scale[i].

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Window draws one channels×samples window.
// Returns ErrBadSize if channels < 1 or samples < 2.
func Window(channels, samples int, seed int64, opts ...BuilderOption) (*mat.Dense, error) {
	if channels < 1 || samples < 2 {
		return nil, builderErrorf(MethodWindow,
			fmt.Errorf("%w: channels=%d samples=%d", ErrBadSize, channels, samples))
	}
	cfg := newBuilderConfig(opts...)

	return window(channels, samples, cfg, rngFrom(cfg, seed)), nil
}

// Windows draws count windows from one stream; window i differs from
// Window(channels, samples, seed) for i > 0.
func Windows(count, channels, samples int, seed int64, opts ...BuilderOption) ([]*mat.Dense, error) {
	if count < 1 || channels < 1 || samples < 2 {
		return nil, builderErrorf(MethodWindows,
			fmt.Errorf("%w: count=%d channels=%d samples=%d", ErrBadSize, count, channels, samples))
	}
	cfg := newBuilderConfig(opts...)
	r := rngFrom(cfg, seed)
	out := make([]*mat.Dense, count)
	for i := range out {
		out[i] = window(channels, samples, cfg, r)
	}

	return out, nil
}

func window(channels, samples int, cfg builderConfig, r normalSource) *mat.Dense {
	w := mat.NewDense(channels, samples, nil)
	for i := 0; i < channels; i++ {
		sd := cfg.scale(i)
		for j := 0; j < samples; j++ {
			w.Set(i, j, sd*r.NormFloat64())
		}
	}

	return w
}
