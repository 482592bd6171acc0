// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tight makes the iterative means converge to reference precision.
var tight = []geometry.Option{geometry.WithEpsilon(1e-12), geometry.WithMaxIterations(500)}

// realMeans lists the metrics whose mean is a genuine implementation.
var realMeans = []metric.Metric{
	metric.Riemann, metric.Euclidean, metric.LogEuclidean, metric.LogDet,
	metric.Kullback, metric.Harmonic, metric.Wasserstein,
}

func TestMean_EuclideanScenario(t *testing.T) {
	t.Parallel()

	m, err := geometry.Mean([]*mat.Dense{diag(2, 2), diag(4, 4)}, metric.Euclidean)
	require.NoError(t, err)
	require.True(t, mat.Equal(m, diag(3, 3)))
}

func TestMean_Single(t *testing.T) {
	t.Parallel()

	a := randomSPD(3, 31)
	for _, m := range metric.All() {
		out, err := geometry.Mean([]*mat.Dense{a}, m, geometry.WithStrictMetrics())
		require.NoError(t, err, m.String())
		require.True(t, mat.Equal(out, a), m.String())
		out.Set(0, 0, -1)
		require.NotEqual(t, -1.0, a.At(0, 0), "result must not alias the input")
	}
}

func TestMean_IdenticalInputs(t *testing.T) {
	t.Parallel()

	a := randomSPD(3, 32)
	set := []*mat.Dense{a, matrix.Clone(a), matrix.Clone(a)}
	for _, m := range realMeans {
		out, err := geometry.Mean(set, m)
		require.NoError(t, err, m.String())
		require.True(t, matrix.Equal(out, a, 1e-6), m.String())
	}
}

// TestMean_Commuting checks closed-form values on diagonal inputs {I, diag(4,9)}.
func TestMean_Commuting(t *testing.T) {
	t.Parallel()

	set := []*mat.Dense{diag(1, 1), diag(4, 9)}
	tests := []struct {
		m    metric.Metric
		want *mat.Dense
	}{
		{metric.Riemann, diag(2, 3)},
		{metric.LogEuclidean, diag(2, 3)},
		{metric.ALE, diag(2, 3)},
		{metric.Harmonic, diag(8.0/5, 18.0/10)},
		{metric.Wasserstein, diag(2.25, 4)},
		{metric.LogDet, diag(2, 3)},
		{metric.Kullback, diag(math.Sqrt(2.5*8.0/5), math.Sqrt(5*18.0/10))},
		{metric.Identity, diag(1, 1)},
	}
	for _, tc := range tests {
		out, err := geometry.Mean(set, tc.m, tight...)
		require.NoError(t, err, tc.m.String())
		require.True(t, mat.EqualApprox(out, tc.want, 1e-8), "%s: %v", tc.m, mat.Formatted(out))
	}
}

// TestMean_RiemannStationary: the Riemannian mean zeroes the mean log map.
func TestMean_RiemannStationary(t *testing.T) {
	t.Parallel()

	// Moderately spread inputs: eigenvalues within a factor of about two.
	set := make([]*mat.Dense, 4)
	for i := range set {
		c := randomSPD(4, int64(33+i))
		c.Scale(0.25, c)
		c.Add(c, scaledIdentity(4, 4))
		set[i] = c
	}
	m, err := geometry.Mean(set, metric.Riemann, tight...)
	require.NoError(t, err)

	isc, err := matrix.InvSqrt(m)
	require.NoError(t, err)
	sum := mat.NewDense(4, 4, nil)
	for _, c := range set {
		inner, err := matrix.Congruence(isc, c)
		require.NoError(t, err)
		l, err := matrix.Log(inner)
		require.NoError(t, err)
		sum.Add(sum, l)
	}
	require.Less(t, mat.Norm(sum, 2), 1e-7)
}

func TestMean_Rectangular(t *testing.T) {
	t.Parallel()

	set := []*mat.Dense{
		mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
		mat.NewDense(2, 3, []float64{3, 2, 1, 0, 1, 2}),
	}
	out, err := geometry.Mean(set, metric.Euclidean)
	require.NoError(t, err)
	require.True(t, mat.Equal(out, mat.NewDense(2, 3, []float64{2, 2, 2, 2, 3, 4})))

	out, err = geometry.Mean(set, metric.Identity)
	require.NoError(t, err)
	require.True(t, mat.Equal(out, matrix.Eye(2, 3)))

	_, err = geometry.Mean(set, metric.Riemann)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestMean_Errors(t *testing.T) {
	t.Parallel()

	_, err := geometry.Mean(nil, metric.Riemann)
	require.ErrorIs(t, err, geometry.ErrEmptyDataset)
	_, err = geometry.Mean([]*mat.Dense{nil}, metric.Riemann)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = geometry.Mean([]*mat.Dense{diag(1, 1), diag(1, 1, 1)}, metric.Euclidean)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = geometry.Mean([]*mat.Dense{diag(1, 1), diag(1, 0)}, metric.LogEuclidean)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
	_, err = geometry.Mean([]*mat.Dense{diag(1, 1), diag(2, 2)}, metric.ALE, geometry.WithStrictMetrics())
	require.ErrorIs(t, err, geometry.ErrUnsupportedMetric)
	_, err = geometry.Mean([]*mat.Dense{diag(1, 1), diag(2, 2)}, metric.Metric(100))
	require.ErrorIs(t, err, geometry.ErrUnsupportedMetric)
}

// TestMean_Logging: iterative means report convergence at debug level and the
// ALE mean warns about its stub initialization.
func TestMean_Logging(t *testing.T) {
	t.Parallel()

	opt, hook := capture()
	set := []*mat.Dense{randomSPD(3, 37), randomSPD(3, 38)}

	_, err := geometry.Mean(set, metric.Riemann, opt, geometry.WithMaxIterations(1))
	require.NoError(t, err)
	e := hook.LastEntry()
	require.Equal(t, logrus.DebugLevel, e.Level)
	require.Equal(t, 1, e.Data["iterations"])
	require.Equal(t, "Riemann", e.Data["metric"])

	hook.Reset()
	_, err = geometry.Mean(set, metric.ALE, opt)
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, hook.AllEntries()[0].Level)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { geometry.WithEpsilon(0) })
	require.Panics(t, func() { geometry.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { geometry.WithMaxIterations(0) })
	require.Panics(t, func() { geometry.WithLogger(nil) })

	o := geometry.NewOptions(geometry.WithEpsilon(1e-6), geometry.WithMaxIterations(7), geometry.WithStrictMetrics())
	require.Equal(t, 1e-6, o.Epsilon())
	require.Equal(t, 7, o.MaxIterations())
	require.True(t, o.Strict())
	require.NotNil(t, o.Logger())

	d := geometry.NewOptions()
	require.Equal(t, geometry.DefaultEpsilon, d.Epsilon())
	require.Equal(t, geometry.DefaultMaxIterations, d.MaxIterations())
	require.False(t, d.Strict())

	copied := geometry.NewOptions(o.Apply())
	require.Equal(t, o, copied)
}
