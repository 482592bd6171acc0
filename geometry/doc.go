// SPDX-License-Identifier: MIT

// Package geometry implements distances, geodesics and means of symmetric
// positive-definite (SPD) matrices under the metrics enumerated by package metric.
//
// What:
//
//   - Distance(a, b, m)       scalar divergence between two SPD matrices.
//   - Geodesic(a, b, α, m)    point at position α on the path from a to b.
//   - Mean(ms, m)             central matrix of a set (closed form or fixed point).
//   - AffineTransform(r, m)   re-centering of m on the reference r.
//
// Support matrix:
//
//	metric        Distance   Geodesic   Mean
//	Riemann       yes        yes        iterative
//	Euclidean     yes        yes        closed form
//	LogEuclidean  yes        yes        closed form
//	LogDet        yes        fallback   iterative
//	Kullback      yes        fallback   closed form
//	ALE           fallback   fallback   iterative (unreliable)
//	Harmonic      fallback   fallback   closed form
//	Wasserstein   yes        fallback   iterative
//	Identity      1          I          I
//
// A fallback returns the constant 1 (distance) or the identity (geodesic) and
// logs a warning. WithStrictMetrics turns every fallback, and the ALE mean,
// into ErrUnsupportedMetric.
//
// Options:
//
//	WithEpsilon(1e-4), WithMaxIterations(50), WithStrictMetrics(), WithLogger(l).
//
// Errors:
//
//	Shape and spectral failures are the matrix package sentinels, wrapped with
//	the operation name; ErrEmptyDataset, ErrAlphaOutOfRange and
//	ErrUnsupportedMetric are specific to this package. Match with errors.Is.
//
// Concurrency:
//
//	Every function is pure and safe for concurrent use; the logger is the only
//	shared collaborator.
package geometry
