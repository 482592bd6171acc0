// SPDX-License-Identifier: MIT

// Package geometry: functional configuration of the iterative means and of the
// metric dispatch policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options in order.
//
// Design goals:
//   - Deterministic behavior: no global state besides the default logger.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Strict mode turns every unimplemented metric/operation pair into
//     ErrUnsupportedMetric. The default keeps the lenient fallbacks (identity
//     geodesic, constant distance, stub ALE mean) and logs a warning instead.
//   - The same Option set is accepted by the stateful components built on top
//     of this package (ASR, Bias, MDM) so one configuration drives everything.
package geometry

import (
	"math"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the convergence tolerance of the iterative means.
	DefaultEpsilon = 1e-4

	// DefaultMaxIterations caps the iterations of the iterative means.
	DefaultMaxIterations = 50

	// DefaultStrictMetrics keeps the lenient fallbacks for unimplemented metrics.
	DefaultStrictMetrics = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "geometry: WithEpsilon: eps must be finite and > 0"
	panicIterationsInvalid = "geometry: WithMaxIterations: n must be ≥ 1"
	panicLoggerNil         = "geometry: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps     float64            // > 0; DefaultEpsilon
	maxIter int                // ≥ 1; DefaultMaxIterations
	strict  bool               // DefaultStrictMetrics
	logger  logrus.FieldLogger // logrus.StandardLogger() unless overridden
}

// WithEpsilon sets the convergence tolerance of the iterative means.
// Implementation:
//   - Stage 1: validate eps is finite and > 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - 1e-4 reproduces historical results; tighten to 1e-8 for reference computations.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps the number of iterations of the iterative means.
// Non-convergence within the cap is not an error: the last iterate is returned.
//
// Errors:
//   - Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithStrictMetrics makes unimplemented metric/operation pairs fail with
// ErrUnsupportedMetric instead of falling back silently.
func WithStrictMetrics() Option {
	return func(o *Options) { o.strict = true }
}

// WithLogger routes convergence diagnostics and fallback warnings to logger.
//
// Errors:
//   - Panics when logger is nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// Epsilon returns the convergence tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIterations returns the iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// Strict reports whether unsupported metrics are errors.
func (o Options) Strict() bool { return o.strict }

// Logger returns the configured logger.
func (o Options) Logger() logrus.FieldLogger { return o.logger }

// NewOptions resolves opts over the defaults. Components that store the
// configuration (ASR, Bias, MDM) call it once at construction.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user options over the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
		strict:  DefaultStrictMetrics,
		logger:  logrus.StandardLogger(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// Apply returns an Option that restores every field of o. It lets stateful
// components forward their stored configuration to Distance, Geodesic and Mean.
func (o Options) Apply() Option {
	return func(dst *Options) { *dst = o }
}
