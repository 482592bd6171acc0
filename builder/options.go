// SPDX-License-Identifier: MIT
// Package: spdgeom/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: WithSeed or WithRand share one stream.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by every call that receives it.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed; it overrides the
// seed argument of the constructor.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude scales generated noise (windows) or G·Gᵀ (RandomSPD).
// Panics if a <= 0 or a is not finite.
func WithAmplitude(a float64) BuilderOption {
	if !(a > 0) || math.IsInf(a, 1) {
		panic("builder: WithAmplitude(a<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = a
	}
}

// WithChannelScales sets per-channel standard deviation multipliers, cycled
// when there are more channels than scales. Panics on an empty list or a
// non-positive scale.
func WithChannelScales(scales ...float64) BuilderOption {
	if len(scales) == 0 {
		panic("builder: WithChannelScales()")
	}
	for _, s := range scales {
		if !(s > 0) {
			panic("builder: WithChannelScales(s<=0)")
		}
	}
	copied := append([]float64(nil), scales...)
	return func(c *builderConfig) {
		c.scales = copied
	}
}

// WithSpread sets the dispersion σ of ClassSets clusters. Panics if s <= 0.
func WithSpread(s float64) BuilderOption {
	if !(s > 0) {
		panic("builder: WithSpread(s<=0)")
	}
	return func(c *builderConfig) {
		c.spread = s
	}
}

// WithRidge sets the diagonal loading of RandomSPD. Panics if r < 0.
func WithRidge(r float64) BuilderOption {
	if !(r >= 0) {
		panic("builder: WithRidge(r<0)")
	}
	return func(c *builderConfig) {
		c.ridge, c.ridgeSet = r, true
	}
}

// WithEnvelope gates AddBurst with Pulse(samples, frequency, duty).
// Panics if frequency <= 0 or duty is outside [0,1].
func WithEnvelope(frequency, duty float64) BuilderOption {
	if !(frequency > 0) {
		panic("builder: WithEnvelope(frequency<=0)")
	}
	if !(duty >= 0 && duty <= 1) {
		panic("builder: WithEnvelope(duty∉[0,1])")
	}
	return func(c *builderConfig) {
		c.frequency, c.duty, c.gated = frequency, duty, true
	}
}
