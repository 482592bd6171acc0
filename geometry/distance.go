// SPDX-License-Identifier: MIT
// Package geometry: distances between SPD matrices.
//
// Purpose:
//   - One entry point (Distance) dispatching on metric.Metric to per-metric kernels.
//   - Kernels assume validated inputs; Distance owns validation and error tagging.
//
// Determinism & Numerical notes:
//   - Riemann uses the Cholesky factor of B (generalized eigenvalues of the pencil).
//   - LogDet and Wasserstein radicands are clamped at 0 against round-off.

package geometry

import (
	"math"

	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Distance returns the distance between a and b under the metric m.
//
// Implementation:
//   - Stage 1: validate shapes (same size; square unless Euclidean).
//   - Stage 2: dispatch to the metric kernel.
//
// Behavior highlights:
//   - Identity, ALE and Harmonic have no distance: the constant 1 is returned.
//     Under WithStrictMetrics, ALE and Harmonic fail with ErrUnsupportedMetric.
//   - Kullback is the symmetrized divergence k(A,B) + k(B,A).
//
// Inputs:
//   - a, b: matrices of identical shape (SPD for every metric but Euclidean).
//
// Returns:
//   - float64: the distance (0 on error).
//
// Errors:
//   - matrix.ErrEmpty, matrix.ErrDimensionMismatch, matrix.ErrNonSquare,
//     matrix.ErrNotPositiveDefinite, ErrUnsupportedMetric.
//
// Complexity:
//   - Euclidean O(n²); every other metric O(n³).
//
// AI-Hints:
//   - Distance(A, A, m) is 0 for Riemann, Euclidean, LogEuclidean, LogDet,
//     Kullback and Wasserstein.
func Distance(a, b mat.Matrix, m metric.Metric, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return 0, geometryErrorf(opDistance, err)
	}
	if m != metric.Euclidean {
		if err := matrix.ValidateSquare(a); err != nil {
			return 0, geometryErrorf(opDistance, err)
		}
	}

	var (
		d   float64
		err error
	)
	switch m {
	case metric.Riemann:
		d, err = distanceRiemann(a, b)
	case metric.Euclidean:
		d = distanceEuclidean(a, b)
	case metric.LogEuclidean:
		d, err = distanceLogEuclidean(a, b)
	case metric.LogDet:
		d, err = distanceLogDet(a, b)
	case metric.Kullback:
		d, err = distanceKullback(a, b)
	case metric.Wasserstein:
		d, err = distanceWasserstein(a, b)
	case metric.Identity:
		d = 1
	case metric.ALE, metric.Harmonic:
		if err = unsupported(o, opDistance, m); err == nil {
			d = 1
		}
	default:
		err = ErrUnsupportedMetric
	}
	if err != nil {
		return 0, geometryErrorf(opDistance, err)
	}

	return d, nil
}

// unsupported reports an unimplemented metric/operation pair: an error in
// strict mode, a warning otherwise.
func unsupported(o Options, op string, m metric.Metric) error {
	if o.strict {
		return ErrUnsupportedMetric
	}
	o.logger.WithFields(logrus.Fields{
		"operation": op,
		"metric":    m.String(),
	}).Warn("metric not implemented for this operation, using fallback")

	return nil
}

// distanceRiemann is sqrt(Σ log² λ) over the eigenvalues of the pencil (A, B).
func distanceRiemann(a, b mat.Matrix) (float64, error) {
	values, err := matrix.GeneralizedEigenvalues(a, b)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range values {
		if !(v > 0) {
			return 0, matrix.ErrNotPositiveDefinite
		}
		l := math.Log(v)
		sum += l * l
	}

	return math.Sqrt(sum), nil
}

// distanceEuclidean is ‖B − A‖_F.
func distanceEuclidean(a, b mat.Matrix) float64 {
	var diff mat.Dense
	diff.Sub(b, a)

	return mat.Norm(&diff, 2)
}

// distanceLogEuclidean is ‖log A − log B‖_F.
func distanceLogEuclidean(a, b mat.Matrix) (float64, error) {
	la, err := matrix.Log(a)
	if err != nil {
		return 0, err
	}
	lb, err := matrix.Log(b)
	if err != nil {
		return 0, err
	}

	return distanceEuclidean(la, lb), nil
}

// distanceLogDet is sqrt(logdet((A+B)/2) − ½(logdet A + logdet B)).
func distanceLogDet(a, b mat.Matrix) (float64, error) {
	var mid mat.Dense
	mid.Add(a, b)
	mid.Scale(0.5, &mid)
	lm, err := matrix.LogDet(&mid)
	if err != nil {
		return 0, err
	}
	la, err := matrix.LogDet(a)
	if err != nil {
		return 0, err
	}
	lb, err := matrix.LogDet(b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(math.Max(0, lm-0.5*(la+lb))), nil
}

// kullback is tr(B⁻¹A) − N + log(det B / det A).
func kullback(a, b mat.Matrix) (float64, error) {
	ib, err := matrix.Inverse(b)
	if err != nil {
		return 0, err
	}
	la, err := matrix.LogDet(a)
	if err != nil {
		return 0, err
	}
	lb, err := matrix.LogDet(b)
	if err != nil {
		return 0, err
	}
	var p mat.Dense
	p.Mul(ib, a)
	n, _ := a.Dims()

	return mat.Trace(&p) - float64(n) + lb - la, nil
}

// distanceKullback is the symmetrized divergence k(A,B) + k(B,A).
func distanceKullback(a, b mat.Matrix) (float64, error) {
	ab, err := kullback(a, b)
	if err != nil {
		return 0, err
	}
	ba, err := kullback(b, a)
	if err != nil {
		return 0, err
	}

	return ab + ba, nil
}

// distanceWasserstein is sqrt(tr(A + B − 2·sqrt(sqrt(B)·A·sqrt(B)))).
func distanceWasserstein(a, b mat.Matrix) (float64, error) {
	sb, err := matrix.Sqrt(b)
	if err != nil {
		return 0, err
	}
	inner, err := matrix.Congruence(sb, a)
	if err != nil {
		return 0, err
	}
	cross, err := matrix.Sqrt(inner)
	if err != nil {
		return 0, err
	}
	v := mat.Trace(a) + mat.Trace(b) - 2*mat.Trace(cross)

	return math.Sqrt(math.Max(0, v)), nil
}
