// SPDX-License-Identifier: MIT
// Package matrix: dense algebra helpers over gonum.
//
// Purpose:
//   - Constructors (Identity, Eye, Clone) returning freshly allocated *mat.Dense.
//   - Inversions (Inverse, PseudoInverse) mapped onto package sentinels.
//   - Congruence T·A·Tᵀ and the generalized eigenvalues of an SPD pencil.
//
// Determinism:
//   - No hidden state; every function allocates its result.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n×n identity matrix. n ≤ 0 yields nil.
func Identity(n int) *mat.Dense {
	return Eye(n, n)
}

// Eye returns an r×c matrix with ones on the main diagonal. A zero or negative
// dimension yields nil (an empty matrix).
func Eye(r, c int) *mat.Dense {
	if r <= 0 || c <= 0 {
		return nil
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r && i < c; i++ {
		out.Set(i, i, 1)
	}

	return out
}

// Clone returns a deep copy of m as *mat.Dense; empty inputs yield nil.
func Clone(m mat.Matrix) *mat.Dense {
	if IsEmpty(m) {
		return nil
	}

	return mat.DenseCopyOf(m)
}

// Symmetrize returns (A + Aᵀ)/2.
//
// Errors: ErrEmpty, ErrNonSquare.
func Symmetrize(m mat.Matrix) (*mat.Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return mat.DenseCopyOf(symmetric(m)), nil
}

// Frobenius returns the Frobenius norm of m; empty matrices have norm 0.
func Frobenius(m mat.Matrix) float64 {
	if IsEmpty(m) {
		return 0
	}

	return mat.Norm(m, 2)
}

// Inverse returns A⁻¹ through an LU factorization.
// Ill-conditioned but invertible inputs are accepted; only an exactly singular
// factorization is reported.
//
// Errors: ErrEmpty, ErrNonSquare, ErrSingular.
// Complexity: O(n³).
func Inverse(m mat.Matrix) (*mat.Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	out := new(mat.Dense)
	if err := out.Inverse(m); err != nil && isSingular(err) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return out, nil
}

// PseudoInverse returns the Moore-Penrose pseudo-inverse of any r×c matrix
// through a thin SVD. Singular values at or below max(r,c)·σmax·ε are treated
// as zero.
//
// Errors: ErrEmpty, ErrEigenFailed (SVD did not converge).
// Complexity: O(r·c·min(r,c)).
func PseudoInverse(m mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	r, c := m.Dims()
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, matrixErrorf(opPseudoInverse, ErrEigenFailed)
	}
	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := float64(max(r, c)) * values[0] * epsilon64
	// V·diag(1/σ)
	v.Apply(func(_, j int, x float64) float64 {
		if values[j] <= tol {
			return 0
		}

		return x / values[j]
	}, &v)

	out := mat.NewDense(c, r, nil)
	out.Mul(&v, u.T())

	return out, nil
}

// epsilon64 is the float64 machine epsilon.
const epsilon64 = 0x1p-52

// Congruence returns T·A·Tᵀ.
//
// Errors: ErrEmpty, ErrNonSquare (A), ErrDimensionMismatch (columns of T ≠ size of A).
// Complexity: O(r·n²).
func Congruence(t, a mat.Matrix) (*mat.Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	if err := ValidateNotEmpty(t); err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	r, c := t.Dims()
	n, _ := a.Dims()
	if c != n {
		return nil, matrixErrorf(opCongruence, ErrDimensionMismatch)
	}
	tmp := mat.NewDense(r, n, nil)
	tmp.Mul(t, a)
	out := mat.NewDense(r, r, nil)
	out.Mul(tmp, t.T())

	return out, nil
}

// GeneralizedEigenvalues returns the eigenvalues λ (ascending) of the pencil
// (A, B), i.e. the solutions of A·v = λ·B·v, for symmetric A and SPD B.
//
// Implementation:
//   - Stage 1: Cholesky B = L·Lᵀ.
//   - Stage 2: X = L⁻¹·A·L⁻ᵀ via two triangular solves.
//   - Stage 3: eigenvalues of the symmetric part of X.
//
// Errors: ErrEmpty, ErrNonSquare, ErrDimensionMismatch, ErrNotPositiveDefinite (B),
// ErrEigenFailed.
// Complexity: O(n³).
func GeneralizedEigenvalues(a, b mat.Matrix) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	var chol mat.Cholesky
	if !chol.Factorize(symmetric(b)) {
		return nil, matrixErrorf(opEigen, ErrNotPositiveDefinite)
	}
	var l mat.TriDense
	chol.LTo(&l)

	// Y = L⁻¹·A, then X = L⁻¹·Yᵀ = L⁻¹·A·L⁻ᵀ (A symmetric).
	var y, x mat.Dense
	if err := l.SolveTo(&y, false, a); err != nil && isSingular(err) {
		return nil, matrixErrorf(opEigen, ErrNotPositiveDefinite)
	}
	if err := l.SolveTo(&x, false, y.T()); err != nil && isSingular(err) {
		return nil, matrixErrorf(opEigen, ErrNotPositiveDefinite)
	}
	values, _, err := eigenSym(opEigen, &x)
	if err != nil {
		return nil, err
	}

	return values, nil
}

// isSingular reports whether a gonum solve error means exact singularity
// rather than a mere conditioning warning.
func isSingular(err error) bool {
	c, ok := err.(mat.Condition)

	return !ok || math.IsInf(float64(c), 1)
}
