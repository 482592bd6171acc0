// SPDX-License-Identifier: MIT
// Package geometry: means of SPD matrix sets.
//
// Closed forms: Euclidean, LogEuclidean, Harmonic, Identity, Kullback.
// Fixed-point iterations (start from the Euclidean mean, stop on the iteration
// cap or when the change criterion falls below epsilon): Riemann, LogDet,
// Wasserstein, ALE. Hitting the cap is not an error; the last iterate is
// returned and the outcome is logged at debug level.

package geometry

import (
	"math"

	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Riemann step-size schedule.
const (
	stepShrinkConverging = 0.95
	stepShrinkDiverging  = 0.5
)

// Mean returns the mean of ms under the metric m.
//
// Implementation:
//   - Stage 1: empty set → ErrEmptyDataset; single matrix → copy (no other check).
//   - Stage 2: same sizes; square unless Euclidean or Identity.
//   - Stage 3: dispatch to the closed form or the fixed-point iteration.
//
// Behavior highlights:
//   - ALE starts from an identity joint diagonalizer and is unreliable: it runs
//     with a warning, or fails with ErrUnsupportedMetric in strict mode.
//   - Euclidean and Identity accept rectangular matrices.
//
// Errors:
//   - ErrEmptyDataset, matrix.ErrEmpty, matrix.ErrDimensionMismatch,
//     matrix.ErrNonSquare, matrix.ErrNotPositiveDefinite, matrix.ErrSingular,
//     ErrUnsupportedMetric.
//
// Complexity:
//   - Closed forms O(k·n³) (Euclidean O(k·n²)); iterative forms O(iter·k·n³).
//
// AI-Hints:
//   - Mean([A, A, A], m) == A for every metric with a real implementation.
//   - Tune WithEpsilon / WithMaxIterations for precision vs. speed.
func Mean(ms []*mat.Dense, m metric.Metric, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)
	if len(ms) == 0 {
		return nil, geometryErrorf(opMean, ErrEmptyDataset)
	}
	if len(ms) == 1 {
		if err := matrix.ValidateNotEmpty(ms[0]); err != nil {
			return nil, geometryErrorf(opMean, err)
		}
		return matrix.Clone(ms[0]), nil
	}
	if err := matrix.ValidateSet(ms, false); err != nil {
		return nil, geometryErrorf(opMean, err)
	}
	if m != metric.Euclidean && m != metric.Identity && !matrix.IsSquare(ms[0]) {
		return nil, geometryErrorf(opMean, matrix.ErrNonSquare)
	}

	var (
		out *mat.Dense
		err error
	)
	switch m {
	case metric.Riemann:
		out, err = meanRiemann(ms, o)
	case metric.Euclidean:
		out = meanEuclidean(ms)
	case metric.LogEuclidean:
		out, err = meanLogEuclidean(ms)
	case metric.LogDet:
		out, err = meanLogDet(ms, o)
	case metric.Kullback:
		out, err = meanKullback(ms)
	case metric.ALE:
		if err = unsupported(o, opMean, m); err == nil {
			out, err = meanALE(ms, o)
		}
	case metric.Harmonic:
		out, err = meanHarmonic(ms)
	case metric.Wasserstein:
		out, err = meanWasserstein(ms, o)
	case metric.Identity:
		out = matrix.Eye(ms[0].Dims())
	default:
		err = ErrUnsupportedMetric
	}
	if err != nil {
		return nil, geometryErrorf(opMean, err)
	}

	return out, nil
}

// logConvergence reports the outcome of an iterative mean at debug level.
func logConvergence(o Options, m metric.Metric, iterations int, crit float64) {
	o.logger.WithFields(logrus.Fields{
		"metric":     m.String(),
		"iterations": iterations,
		"criterion":  crit,
		"converged":  crit <= o.eps,
	}).Debug("iterative mean finished")
}

// meanEuclidean is the arithmetic mean (any shape).
func meanEuclidean(ms []*mat.Dense) *mat.Dense {
	r, c := ms[0].Dims()
	out := mat.NewDense(r, c, nil)
	for _, m := range ms {
		out.Add(out, m)
	}
	out.Scale(1/float64(len(ms)), out)

	return out
}

// meanOf maps every matrix through fn and returns the arithmetic mean of the results.
func meanOf(ms []*mat.Dense, fn func(*mat.Dense) (*mat.Dense, error)) (*mat.Dense, error) {
	mapped := make([]*mat.Dense, len(ms))
	for i, m := range ms {
		v, err := fn(m)
		if err != nil {
			return nil, err
		}
		mapped[i] = v
	}

	return meanEuclidean(mapped), nil
}

// meanLogEuclidean is exp(mean log Mi).
func meanLogEuclidean(ms []*mat.Dense) (*mat.Dense, error) {
	l, err := meanOf(ms, func(m *mat.Dense) (*mat.Dense, error) { return matrix.Log(m) })
	if err != nil {
		return nil, err
	}

	return matrix.Exp(l)
}

// meanHarmonic is inv(mean inv Mi).
func meanHarmonic(ms []*mat.Dense) (*mat.Dense, error) {
	s, err := meanOf(ms, func(m *mat.Dense) (*mat.Dense, error) { return matrix.Inverse(m) })
	if err != nil {
		return nil, err
	}

	return matrix.Inverse(s)
}

// meanKullback is the Riemannian midpoint of the Euclidean and Harmonic means.
func meanKullback(ms []*mat.Dense) (*mat.Dense, error) {
	h, err := meanHarmonic(ms)
	if err != nil {
		return nil, err
	}

	return geodesicRiemann(meanEuclidean(ms), h, 0.5)
}

// meanRiemann runs the gradient descent of the affine-invariant mean.
//
// Implementation:
//   - Stage 1: M = Euclidean mean, ν = 1, τ = +∞.
//   - Stage 2: J = mean log(M^{-1/2}·Mi·M^{-1/2}); crit = ‖J‖; M = M^{1/2}·exp(ν·J)·M^{1/2}.
//   - Stage 3: h = ν·crit; if h < τ then ν ×= 0.95, τ = h; else ν ×= 0.5.
//   - Stop on the cap, crit ≤ ε or ν ≤ ε.
func meanRiemann(ms []*mat.Dense, o Options) (*mat.Dense, error) {
	mean := meanEuclidean(ms)
	nu, tau, crit := 1.0, math.MaxFloat64, math.MaxFloat64

	it := 0
	for it < o.maxIter && o.eps < crit && o.eps < nu {
		it++
		sc, err := matrix.Sqrt(mean)
		if err != nil {
			return nil, err
		}
		isc, err := matrix.InvSqrt(mean)
		if err != nil {
			return nil, err
		}
		j, err := meanOf(ms, func(m *mat.Dense) (*mat.Dense, error) {
			inner, err := matrix.Congruence(isc, m)
			if err != nil {
				return nil, err
			}
			return matrix.Log(inner)
		})
		if err != nil {
			return nil, err
		}
		crit = mat.Norm(j, 2)

		j.Scale(nu, j)
		e, err := matrix.Exp(j)
		if err != nil {
			return nil, err
		}
		if mean, err = matrix.Congruence(sc, e); err != nil {
			return nil, err
		}

		if h := nu * crit; h < tau {
			nu *= stepShrinkConverging
			tau = h
		} else {
			nu *= stepShrinkDiverging
		}
	}
	logConvergence(o, metric.Riemann, it, crit)

	return mean, nil
}

// meanLogDet iterates M = inv(mean inv((Mi+M)/2)).
func meanLogDet(ms []*mat.Dense, o Options) (*mat.Dense, error) {
	mean := meanEuclidean(ms)
	crit := math.MaxFloat64

	it := 0
	for it < o.maxIter && o.eps < crit {
		it++
		s, err := meanOf(ms, func(m *mat.Dense) (*mat.Dense, error) {
			var mid mat.Dense
			mid.Add(m, mean)
			mid.Scale(0.5, &mid)
			return matrix.Inverse(&mid)
		})
		if err != nil {
			return nil, err
		}
		next, err := matrix.Inverse(s)
		if err != nil {
			return nil, err
		}
		crit = distanceEuclidean(next, mean)
		mean = next
	}
	logConvergence(o, metric.LogDet, it, crit)

	return mean, nil
}

// meanWasserstein iterates sC = sqrt(mean sqrt(sC·Mi·sC)) and returns sC².
func meanWasserstein(ms []*mat.Dense, o Options) (*mat.Dense, error) {
	sc, err := matrix.Sqrt(meanEuclidean(ms))
	if err != nil {
		return nil, err
	}
	crit := math.MaxFloat64

	it := 0
	for it < o.maxIter && o.eps < crit {
		it++
		j, err := meanOf(ms, func(m *mat.Dense) (*mat.Dense, error) {
			inner, err := matrix.Congruence(sc, m)
			if err != nil {
				return nil, err
			}
			return matrix.Sqrt(inner)
		})
		if err != nil {
			return nil, err
		}
		sj, err := matrix.Sqrt(j)
		if err != nil {
			return nil, err
		}
		crit = distanceEuclidean(sj, sc)
		sc = sj
	}
	logConvergence(o, metric.Wasserstein, it, crit)

	out := new(mat.Dense)
	out.Mul(sc, sc)

	return out, nil
}

// meanALE runs the ALE update from an identity joint diagonalizer C:
//
//	J = mean log(Cᵀ·Mi·C), U = diag(exp J), C = C·U^{-1/2}, crit = ‖log U‖,
//
// then returns C^{-ᵀ}·exp(J)·C^{-1} for the final C.
func meanALE(ms []*mat.Dense, o Options) (*mat.Dense, error) {
	n := rows(ms[0])
	c := matrix.Identity(n)
	crit := math.MaxFloat64

	logMean := func() (*mat.Dense, error) {
		return meanOf(ms, func(m *mat.Dense) (*mat.Dense, error) {
			inner, err := matrix.Congruence(c.T(), m)
			if err != nil {
				return nil, err
			}
			return matrix.Log(inner)
		})
	}

	it := 0
	for it < o.maxIter && o.eps < crit {
		it++
		j, err := logMean()
		if err != nil {
			return nil, err
		}
		e, err := matrix.Exp(j)
		if err != nil {
			return nil, err
		}
		var sum float64
		for i := 0; i < n; i++ {
			u := e.At(i, i)
			l := math.Log(u)
			sum += l * l
			s := 1 / math.Sqrt(u)
			for r := 0; r < n; r++ {
				c.Set(r, i, c.At(r, i)*s)
			}
		}
		crit = math.Sqrt(sum)
	}
	logConvergence(o, metric.ALE, it, crit)

	j, err := logMean()
	if err != nil {
		return nil, err
	}
	e, err := matrix.Exp(j)
	if err != nil {
		return nil, err
	}
	ic, err := matrix.Inverse(c)
	if err != nil {
		return nil, err
	}

	return matrix.Congruence(ic.T(), e)
}
