// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks on gonum matrices.
//   - Keep spectral kernels and geometry code minimal by delegating nil/shape checks here.
//   - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - A typed nil *mat.Dense stored in a mat.Matrix is treated as empty; gonum would
//     panic on Dims() for it, so every entry point goes through Dims below.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dims returns the shape of m, reporting (0, 0) for nil values and empty gonum
// receivers instead of panicking.
func Dims(m mat.Matrix) (r, c int) {
	switch v := m.(type) {
	case nil:
		return 0, 0
	case *mat.Dense:
		if v == nil || v.IsEmpty() {
			return 0, 0
		}
	case *mat.SymDense:
		if v == nil || v.IsEmpty() {
			return 0, 0
		}
	}

	return m.Dims()
}

// IsEmpty reports whether m holds no element.
func IsEmpty(m mat.Matrix) bool {
	r, c := Dims(m)

	return r == 0 || c == 0
}

// IsSquare reports whether m is non-empty and has as many rows as columns.
func IsSquare(m mat.Matrix) bool {
	r, c := Dims(m)

	return r != 0 && r == c
}

// SameSize reports whether a is non-empty and b has the same shape.
func SameSize(a, b mat.Matrix) bool {
	ar, ac := Dims(a)
	br, bc := Dims(b)

	return ar != 0 && ac != 0 && ar == br && ac == bc
}

// ValidateNotEmpty ensures m holds at least one element.
//
// Errors: ErrEmpty.
// Complexity: O(1).
func ValidateNotEmpty(m mat.Matrix) error {
	if IsEmpty(m) {
		return validatorErrorf("ValidateNotEmpty", ErrEmpty)
	}

	return nil
}

// ValidateSquare checks that m is non-empty and square.
//
// Errors: ErrEmpty if m has no element, ErrNonSquare otherwise.
// Complexity: O(1).
// AI-Hints: Use before spectral or factorization methods.
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNotEmpty(m); err != nil {
		return err
	}
	if !IsSquare(m) {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-empty with equal dimensions.
//
// Errors: ErrEmpty, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	if err := ValidateNotEmpty(a); err != nil {
		return err
	}
	ar, ac := Dims(a)
	br, bc := Dims(b)
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSet checks a whole dataset: non-empty slice, every matrix non-empty and
// shaped like the first one, and square when square is true.
//
// Errors: ErrEmpty, ErrDimensionMismatch, ErrNonSquare (in this priority order).
// Complexity: O(k) for k matrices.
func ValidateSet(ms []*mat.Dense, square bool) error {
	if len(ms) == 0 {
		return validatorErrorf("ValidateSet", ErrEmpty)
	}
	for i := range ms {
		if IsEmpty(ms[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateSet[%d]", i), ErrEmpty)
		}
		if !SameSize(ms[0], ms[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateSet[%d]", i), ErrDimensionMismatch)
		}
	}
	if square && !IsSquare(ms[0]) {
		return validatorErrorf("ValidateSet", ErrNonSquare)
	}

	return nil
}
