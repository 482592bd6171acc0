// SPDX-License-Identifier: MIT

// Package matrix provides the symmetric positive-definite (SPD) primitives the
// geometry layers are built on, as thin, validated kernels over gonum's mat
// package.
//
// What:
//
//   - Validators: ValidateNotEmpty, ValidateSquare, ValidateSameShape, ValidateSet.
//   - Spectral functions of symmetric matrices: Sqrt, InvSqrt, Log, Exp, Pow,
//     SortedEigen, GeneralizedEigenvalues, LogDet.
//   - Algebra: Identity, Eye, Clone, Symmetrize, Inverse, PseudoInverse,
//     Congruence, Frobenius.
//   - Comparison and I/O: Equal, EqualSets, Format, MarshalText, UnmarshalText.
//
// Why:
//
//   - Riemannian distances, geodesics and means are compositions of a handful of
//     spectral maps. Centralizing them keeps symmetrization, eigenvalue clamping
//     and error reporting identical everywhere.
//
// Errors:
//
//	All kernels return package sentinels (ErrEmpty, ErrDimensionMismatch,
//	ErrNonSquare, ErrNotPositiveDefinite, ErrSingular, ErrEigenFailed,
//	ErrMalformedText) wrapped with an operation tag; match them with errors.Is.
//	No kernel panics on user input.
//
// Complexity:
//
//	Spectral functions and inversions are O(n³); comparisons and the text codec
//	are O(r·c).
//
// Example:
//
//	a := mat.NewDense(2, 2, []float64{4, 0, 0, 9})
//	s, _ := matrix.Sqrt(a) // [[2 0] [0 3]]
package matrix
