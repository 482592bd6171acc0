// SPDX-License-Identifier: MIT
// Package: spdgeom/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil   (each call seeds its own stream from the seed argument)
//   • amplitude = 1.0
//   • scales    = nil   (every channel at amplitude)
//   • spread    = 0.1
//   • ridge     = n     (RandomSPD dimension)
//   • envelope  = none  (AddBurst covers the whole window)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng       *rand.Rand
	amplitude float64   // > 0
	scales    []float64 // per-channel multipliers, > 0; cycled when shorter
	spread    float64   // > 0, class cluster dispersion
	ridge     float64   // ≥ 0 when ridgeSet
	ridgeSet  bool
	frequency float64 // > 0 when gated
	duty      float64 // [0,1] when gated
	gated     bool
}

const (
	defaultAmplitude = 1.0
	defaultSpread    = 0.1
)

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude: defaultAmplitude,
		spread:    defaultSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// scale returns the standard deviation of channel i.
func (c builderConfig) scale(i int) float64 {
	if len(c.scales) == 0 {
		return c.amplitude
	}

	return c.amplitude * c.scales[i%len(c.scales)]
}
