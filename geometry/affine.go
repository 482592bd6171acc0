// SPDX-License-Identifier: MIT
package geometry

import (
	"github.com/katalvlaran/spdgeom/matrix"
	"gonum.org/v1/gonum/mat"
)

// AffineTransform re-centers m on the reference ref: ref^{-1/2}·m·ref^{-1/2}.
// Transforming ref itself yields the identity.
//
// Errors: matrix.ErrEmpty, matrix.ErrDimensionMismatch, matrix.ErrNonSquare,
// matrix.ErrNotPositiveDefinite (ref).
func AffineTransform(ref, m mat.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateSameShape(ref, m); err != nil {
		return nil, geometryErrorf(opAffine, err)
	}
	isr, err := matrix.InvSqrt(ref)
	if err != nil {
		return nil, geometryErrorf(opAffine, err)
	}
	out, err := matrix.Congruence(isr, m)
	if err != nil {
		return nil, geometryErrorf(opAffine, err)
	}

	return out, nil
}
