// SPDX-License-Identifier: MIT
// Package matrix: spectral functions of symmetric matrices.
//
// Every function here follows the same recipe on a square input A:
//
//	S = (A + Aᵀ)/2,  S = V·diag(λ)·Vᵀ  (gonum EigenSym, λ ascending),
//	f(A) = V·diag(f(λ))·Vᵀ.
//
// The symmetrization absorbs the round-off asymmetry that products such as
// sqrt(M)·X·sqrt(M) accumulate during iterative means.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// symmetric returns the symmetric part of the square matrix m.
func symmetric(m mat.Matrix) *mat.SymDense {
	n, _ := m.Dims()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, 0.5*(m.At(i, j)+m.At(j, i)))
		}
	}

	return s
}

// eigenSym factorizes the symmetric part of m.
func eigenSym(tag string, m mat.Matrix) ([]float64, *mat.Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	var es mat.EigenSym
	if !es.Factorize(symmetric(m), true) {
		return nil, nil, matrixErrorf(tag, ErrEigenFailed)
	}
	vectors := new(mat.Dense)
	es.VectorsTo(vectors)

	return es.Values(nil), vectors, nil
}

// rebuild returns V·diag(values)·Vᵀ.
func rebuild(values []float64, vectors *mat.Dense) *mat.Dense {
	n := len(values)
	scaled := mat.NewDense(n, n, nil)
	scaled.Apply(func(_, j int, v float64) float64 { return v * values[j] }, vectors)
	out := mat.NewDense(n, n, nil)
	out.Mul(scaled, vectors.T())

	return out
}

// spectral applies fn to every eigenvalue of m. When positive is true, any
// eigenvalue ≤ 0 yields ErrNotPositiveDefinite.
func spectral(tag string, m mat.Matrix, positive bool, fn func(float64) float64) (*mat.Dense, error) {
	values, vectors, err := eigenSym(tag, m)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if positive && !(v > 0) {
			return nil, matrixErrorf(tag, ErrNotPositiveDefinite)
		}
		values[i] = fn(v)
	}

	return rebuild(values, vectors), nil
}

// SortedEigen returns the eigenvalues of the symmetric part of m in ascending
// order together with the matching unit eigenvectors stored as columns.
//
// Errors: ErrEmpty, ErrNonSquare, ErrEigenFailed.
// Complexity: O(n³).
func SortedEigen(m mat.Matrix) ([]float64, *mat.Dense, error) {
	return eigenSym(opEigen, m)
}

// Sqrt returns the principal square root of a symmetric positive
// semi-definite matrix.
//
// Implementation:
//   - Stage 1: eigen-decompose the symmetric part.
//   - Stage 2: clamp eigenvalues in [-tol, 0) to 0, tol = ClampTolerance·max(1, |λmax|).
//   - Stage 3: rebuild V·diag(√λ)·Vᵀ.
//
// Errors: ErrEmpty, ErrNonSquare, ErrEigenFailed, ErrNotPositiveDefinite
// (an eigenvalue below -tol).
// Complexity: O(n³).
func Sqrt(m mat.Matrix) (*mat.Dense, error) {
	values, vectors, err := eigenSym(opSqrt, m)
	if err != nil {
		return nil, err
	}
	tol := ClampTolerance * math.Max(1, math.Abs(values[len(values)-1]))
	for i, v := range values {
		switch {
		case v >= 0:
			values[i] = math.Sqrt(v)
		case v >= -tol:
			values[i] = 0
		default:
			return nil, matrixErrorf(opSqrt, ErrNotPositiveDefinite)
		}
	}

	return rebuild(values, vectors), nil
}

// InvSqrt returns the inverse of the principal square root, A^{-1/2}.
//
// Errors: ErrEmpty, ErrNonSquare, ErrEigenFailed, ErrNotPositiveDefinite.
// Complexity: O(n³).
func InvSqrt(m mat.Matrix) (*mat.Dense, error) {
	return spectral(opInvSqrt, m, true, func(v float64) float64 { return 1 / math.Sqrt(v) })
}

// Log returns the principal matrix logarithm of an SPD matrix.
//
// Errors: ErrEmpty, ErrNonSquare, ErrEigenFailed, ErrNotPositiveDefinite.
// Complexity: O(n³).
func Log(m mat.Matrix) (*mat.Dense, error) {
	return spectral(opLog, m, true, math.Log)
}

// Exp returns the matrix exponential of a symmetric matrix. The result is SPD.
//
// Errors: ErrEmpty, ErrNonSquare, ErrEigenFailed.
// Complexity: O(n³).
func Exp(m mat.Matrix) (*mat.Dense, error) {
	return spectral(opExp, m, false, math.Exp)
}

// Pow returns A^p for an SPD matrix and any real exponent p.
//
// Errors: ErrEmpty, ErrNonSquare, ErrEigenFailed, ErrNotPositiveDefinite.
// Complexity: O(n³).
func Pow(m mat.Matrix, p float64) (*mat.Dense, error) {
	return spectral(opPow, m, true, func(v float64) float64 { return math.Pow(v, p) })
}

// LogDet returns log(det(A)) of an SPD matrix through its Cholesky factor.
//
// Errors: ErrEmpty, ErrNonSquare, ErrNotPositiveDefinite.
// Complexity: O(n³).
func LogDet(m mat.Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opLogDet, err)
	}
	var chol mat.Cholesky
	if !chol.Factorize(symmetric(m)) {
		return 0, matrixErrorf(opLogDet, ErrNotPositiveDefinite)
	}

	return chol.LogDet(), nil
}
