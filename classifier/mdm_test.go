// SPDX-License-Identifier: MIT
package classifier_test

import (
	"testing"

	"github.com/katalvlaran/spdgeom/classifier"
	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"
)

// MDMSuite works on two 1×1 classes {5} and {10} under the Euclidean metric.
type MDMSuite struct {
	suite.Suite
	c *classifier.MDM
}

func (s *MDMSuite) SetupTest() {
	s.c = classifier.NewMDM(0, metric.Euclidean)
	require.NoError(s.T(), s.c.Train([][]*mat.Dense{{scalar(5)}, {scalar(10)}}))
}

func (s *MDMSuite) TestScenario() {
	res, err := s.c.Classify(scalar(6), classifier.None, classifier.NoClass)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.ClassID)
	require.InDeltaSlice(s.T(), []float64{1, 4}, res.Distances, 1e-12)
	require.InDeltaSlice(s.T(), []float64{0.8, 0.2}, res.Probabilities, 1e-12)

	again, err := s.c.Classify(scalar(6), classifier.None, classifier.NoClass)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res, again)
	require.Equal(s.T(), []int{1, 1}, s.c.Trials())
}

func (s *MDMSuite) TestSupervised() {
	res, err := s.c.Classify(scalar(6), classifier.Supervised, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.ClassID)
	require.Equal(s.T(), []int{1, 2}, s.c.Trials())
	require.InDelta(s.T(), 8, s.c.Means()[1].At(0, 0), 1e-12)
	require.InDelta(s.T(), 5, s.c.Means()[0].At(0, 0), 1e-12)
}

func (s *MDMSuite) TestUnsupervised() {
	_, err := s.c.Classify(scalar(6), classifier.Unsupervised, classifier.NoClass)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{2, 1}, s.c.Trials())
	require.InDelta(s.T(), 5.5, s.c.Means()[0].At(0, 0), 1e-12)
}

// TestInvalidClass: the Result is filled but nothing is adapted.
func (s *MDMSuite) TestInvalidClass() {
	for _, id := range []int{classifier.NoClass, 2} {
		res, err := s.c.Classify(scalar(6), classifier.Supervised, id)
		require.ErrorIs(s.T(), err, classifier.ErrInvalidClass)
		require.Equal(s.T(), 0, res.ClassID)
		require.Len(s.T(), res.Probabilities, 2)
	}
	res, err := s.c.Classify(scalar(6), classifier.Adaptation(7), 0)
	require.ErrorIs(s.T(), err, classifier.ErrUnknownAdaptation)
	require.Equal(s.T(), 0, res.ClassID)
	require.Equal(s.T(), []int{1, 1}, s.c.Trials())
}

func (s *MDMSuite) TestErrors() {
	res, err := s.c.Classify(mat.NewDense(1, 2, nil), classifier.None, classifier.NoClass)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
	require.Equal(s.T(), classifier.NoClass, res.ClassID)
	require.Nil(s.T(), res.Distances)

	_, err = s.c.Classify(diag(1, 1), classifier.None, classifier.NoClass)
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)

	// Failed training keeps the previous model.
	before := s.c.Means()
	require.ErrorIs(s.T(), s.c.Train(nil), geometry.ErrEmptyDataset)
	require.ErrorIs(s.T(), s.c.Train([][]*mat.Dense{{scalar(1)}, {}}), geometry.ErrEmptyDataset)
	require.ErrorIs(s.T(), s.c.Train([][]*mat.Dense{{scalar(1), diag(1, 1)}}), matrix.ErrDimensionMismatch)
	require.True(s.T(), matrix.EqualSets(before, s.c.Means(), 0))
	require.Equal(s.T(), 2, s.c.ClassCount())
}

func (s *MDMSuite) TestSetClassCount() {
	require.NoError(s.T(), s.c.SetClassCount(3))
	means := s.c.Means()
	require.Len(s.T(), means, 3)
	require.Nil(s.T(), means[2])
	require.Equal(s.T(), 10.0, means[1].At(0, 0))
	require.Equal(s.T(), []int{1, 1, 0}, s.c.Trials())

	_, err := s.c.Classify(scalar(6), classifier.None, classifier.NoClass)
	require.ErrorIs(s.T(), err, classifier.ErrNotTrained)

	require.NoError(s.T(), s.c.SetClassCount(1))
	require.Equal(s.T(), 1, s.c.ClassCount())
	require.ErrorIs(s.T(), s.c.SetClassCount(-1), classifier.ErrInvalidClassCount)
	require.Equal(s.T(), 1, s.c.ClassCount())
}

func (s *MDMSuite) TestString() {
	out := s.c.String()
	require.Contains(s.T(), out, "MDM Classifier")
	require.Contains(s.T(), out, "Metric: Euclidean")
	require.Contains(s.T(), out, "Mean of class 1 (1 trials) (1×1):")
}

func TestMDMSuite(t *testing.T) {
	suite.Run(t, new(MDMSuite))
}

// TestClassify_ZeroDistance: classes at distance 0 share the probability mass.
func TestClassify_ZeroDistance(t *testing.T) {
	t.Parallel()

	c := classifier.NewMDM(0, metric.Euclidean)
	require.NoError(t, c.Train([][]*mat.Dense{{scalar(5)}, {scalar(5)}, {scalar(10)}}))
	res, err := c.Classify(scalar(5), classifier.None, classifier.NoClass)
	require.NoError(t, err)
	require.Equal(t, 0, res.ClassID)
	require.Equal(t, []float64{0.5, 0.5, 0}, res.Probabilities)
}

// TestClassify_Riemann: a class mean is classified as its own class.
func TestClassify_Riemann(t *testing.T) {
	t.Parallel()

	data := [][]*mat.Dense{
		{randomSPD(3, 1), randomSPD(3, 2)},
		{diag(50, 50, 50), diag(60, 40, 55)},
	}
	c := classifier.NewMDM(2, metric.Riemann, geometry.WithEpsilon(1e-10))
	require.NoError(t, c.Train(data))
	require.Equal(t, []int{2, 2}, c.Trials())

	for k, mean := range c.Means() {
		res, err := c.Classify(mean, classifier.None, classifier.NoClass)
		require.NoError(t, err)
		require.Equal(t, k, res.ClassID)
		require.InDelta(t, 0, res.Distances[k], 1e-6)
	}
}

func TestNewMDM_Untrained(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-3, 0, 2} {
		c := classifier.NewMDM(n, metric.Riemann)
		require.Equal(t, max(n, 0), c.ClassCount())
		_, err := c.Classify(diag(1, 1), classifier.None, classifier.NoClass)
		require.ErrorIs(t, err, classifier.ErrNotTrained)
	}
}

func TestSetMeans(t *testing.T) {
	t.Parallel()

	c := classifier.NewMDM(0, metric.LogEuclidean)
	require.ErrorIs(t, c.SetMeans([]*mat.Dense{diag(1, 1)}, nil), classifier.ErrInvalidClassCount)
	require.ErrorIs(t, c.SetMeans([]*mat.Dense{diag(1, 1)}, []int{-1}), classifier.ErrInvalidClassCount)
	require.ErrorIs(t, c.SetMeans([]*mat.Dense{diag(1, 1), diag(1)}, []int{1, 1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, c.SetMeans([]*mat.Dense{mat.NewDense(1, 2, nil)}, []int{1}), matrix.ErrNonSquare)
	require.Zero(t, c.ClassCount())

	in := []*mat.Dense{diag(1, 1), diag(2, 2)}
	require.NoError(t, c.SetMeans(in, []int{3, 4}))
	in[0].Set(0, 0, 99)
	require.Equal(t, 1.0, c.Means()[0].At(0, 0), "SetMeans copies its input")
	require.Equal(t, []int{3, 4}, c.Trials())
}

func TestEqualMDM(t *testing.T) {
	t.Parallel()

	build := func(m metric.Metric, v float64, trials int) *classifier.MDM {
		c := classifier.NewMDM(0, m)
		require.NoError(t, c.SetMeans([]*mat.Dense{diag(v, v)}, []int{trials}))
		return c
	}
	a := build(metric.Riemann, 2, 3)
	require.True(t, classifier.EqualMDM(a, build(metric.Riemann, 2, 3), matrix.DefaultPrecision))
	require.False(t, classifier.EqualMDM(a, build(metric.Euclidean, 2, 3), matrix.DefaultPrecision))
	require.False(t, classifier.EqualMDM(a, build(metric.Riemann, 3, 3), matrix.DefaultPrecision))
	require.False(t, classifier.EqualMDM(a, build(metric.Riemann, 2, 4), matrix.DefaultPrecision))
	require.False(t, classifier.EqualMDM(a, classifier.NewMDM(2, metric.Riemann), matrix.DefaultPrecision))
	require.True(t, classifier.EqualMDM(nil, nil, 0))
	require.False(t, classifier.EqualMDM(a, nil, 0))
}

func TestAdaptation(t *testing.T) {
	t.Parallel()

	for _, a := range []classifier.Adaptation{classifier.None, classifier.Supervised, classifier.Unsupervised} {
		got, err := classifier.ParseAdaptation(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	got, err := classifier.ParseAdaptation(" unsupervised ")
	require.NoError(t, err)
	require.Equal(t, classifier.Unsupervised, got)

	_, err = classifier.ParseAdaptation("semi")
	require.ErrorIs(t, err, classifier.ErrUnknownAdaptation)
	require.Equal(t, "Unknown", classifier.Adaptation(9).String())
}
