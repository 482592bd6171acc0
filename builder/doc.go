// SPDX-License-Identifier: MIT

// Package builder generates reproducible synthetic data for tests, examples
// and the spdgeom command: SPD matrices and per-class SPD clusters, Gaussian
// multichannel windows, and artifact bursts gated by a rectangular pulse.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     RNG, amplitude, channel scales, spread, ridge, envelope.
//   - Matrix constructors:
//     – RandomSPD:         A·G·Gᵀ + ridge·I for a Gaussian G.
//     – SPDSet:            count RandomSPD draws from one stream.
//     – ClassSets:         per-class clusters C_k^{1/2}·exp(σ·S)·C_k^{1/2}.
//   - Signal constructors:
//     – Window / Windows:  channels×samples Gaussian noise, channel i scaled.
//     – Pulse:             rectangular 0/1 gate.
//     – AddBurst:          additive Gaussian burst on one channel.
//
// Guarantees:
//
//   - Strict determinism per (sizes, seed, options); WithSeed or WithRand
//     share one stream across calls.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Structured runtime errors (ErrBadSize, ErrBadChannel) for invalid
//     build parameters, wrapped with the constructor name.
package builder
