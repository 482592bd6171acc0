// SPDX-License-Identifier: MIT
// Package matrix: shared constants of the SPD kernels.
//
// Purpose:
//   - Declare operation tags used for error wrapping (no magic strings).
//   - Declare numeric constants shared by spectral and comparison kernels.
//
// Notes:
//   - Implementations live in dedicated kernel files (spectral.go, algebra.go,
//     compare.go, codec.go) and use the central validators.

package matrix

// Operation name constants for unified error wrapping.
const (
	opEigen         = "Eigen"
	opSqrt          = "Sqrt"
	opInvSqrt       = "InvSqrt"
	opLog           = "Log"
	opExp           = "Exp"
	opPow           = "Pow"
	opInverse       = "Inverse"
	opPseudoInverse = "PseudoInverse"
	opCongruence    = "Congruence"
	opSymmetrize    = "Symmetrize"
	opLogDet        = "LogDet"
	opUnmarshalText = "UnmarshalText"
)

// ClampTolerance is the relative tolerance under which a slightly negative
// eigenvalue (round-off on a PSD input) is clamped to zero by Sqrt.
const ClampTolerance = 1e-12

// DefaultPrecision is the relative precision used by Equal callers that have no
// better value (persistence round trips, model comparison).
const DefaultPrecision = 1e-6
