// SPDX-License-Identifier: MIT

// Package spdgeom is a toolkit for the Riemannian geometry of covariance
// matrices: means, distances and geodesics on the cone of symmetric
// positive-definite (SPD) matrices, and the signal-processing tools built on
// them.
//
// 🚀 What is spdgeom?
//
//	A gonum-based library plus a command line that brings together:
//		• Metrics: Riemann, Euclidean, Log-Euclidean, Log-Det, Kullback, Wasserstein…
//		• Geometry: Distance, Geodesic and the (iterative) Mean under every metric
//		• Covariance estimation: COV, SCM, Ledoit-Wolf, OAS, correlation
//		• Bias whitening: re-center a session on the identity, online updates
//		• MDM: minimum distance to mean classification with mean adaptation
//		• ASR: artifact subspace reconstruction of multichannel windows
//
// ✨ Why choose spdgeom?
//
//   - Explicit errors: every package exposes sentinels for errors.Is
//   - Atomic models: a failed Train, Classify or Process leaves state untouched
//   - Persistence: YAML datasets and XML models, round-trip exact
//   - Reproducible data: deterministic synthetic SPD sets and signal windows
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     : validators, spectral functions (Sqrt, Log, Exp, Pow) & codecs
//	metric/     : the Metric enum, names and parsing
//	covariance/ : row standardization & covariance estimators
//	geometry/   : Distance, Geodesic, Mean, AffineTransform & options
//	classifier/ : Bias whitening & the MDM classifier
//	asr/        : ASR calibration, processing & distribution fitting
//	builder/    : synthetic SPD sets, windows & artifact bursts
//	dataset/    : YAML matrix datasets
//	xmlstore/   : XML persistence of Bias, MDM & ASR
//	plotting/   : ASR calibration charts
//	cmd/spdgeom : the command line
//
// Quick example, the Riemannian midpoint of I and 4I:
//
//	g, _ := geometry.Geodesic(matrix.Identity(2), four, 0.5, metric.Riemann)
//	// g = 2I
//
//	go install github.com/katalvlaran/spdgeom/cmd/spdgeom@latest
package spdgeom
