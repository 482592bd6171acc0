// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the geometry layers built on top of it. All kernels MUST return
// these sentinels (optionally wrapped with matrixErrorf) and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// matrixErrorf("Op", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/empty -> dimension mismatch -> non-square -> spectral violations (not PD, singular).

var (
	// ErrEmpty is returned when a matrix with no element (nil or 0×0) is used
	// where actual data is required.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotPositiveDefinite signals that a spectral function needing strictly
	// positive eigenvalues (log, inverse square root, fractional power) met a
	// non-positive one.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrSingular is returned when an inversion meets an exactly singular matrix.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the symmetric eigen solver or the SVD did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrMalformedText is returned by the text codec when the payload does not
	// hold exactly rows*cols finite numbers.
	ErrMalformedText = errors.New("matrix: malformed matrix text")
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
