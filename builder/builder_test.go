// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spdgeom/builder"
	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// requireSPD asserts symmetry and a strictly positive spectrum.
func requireSPD(t *testing.T, m *mat.Dense) {
	t.Helper()
	require.True(t, matrix.Equal(m, m.T(), 1e-12), "not symmetric")
	values, _, err := matrix.SortedEigen(m)
	require.NoError(t, err)
	require.Greater(t, values[0], 0.0)
}

func TestRandomSPD(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 12} {
		m, err := builder.RandomSPD(n, int64(n))
		require.NoError(t, err)
		r, c := m.Dims()
		require.Equal(t, n, r)
		require.Equal(t, n, c)
		requireSPD(t, m)
	}

	a, err := builder.RandomSPD(4, 7)
	require.NoError(t, err)
	b, err := builder.RandomSPD(4, 7)
	require.NoError(t, err)
	require.True(t, mat.Equal(a, b), "same seed must reproduce")

	c, err := builder.RandomSPD(4, 8)
	require.NoError(t, err)
	require.False(t, mat.Equal(a, c))

	_, err = builder.RandomSPD(0, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

// TestRandomSPD_Ridge: with a zero ridge and a 1×1 output, the value is the
// scaled square of one Gaussian draw.
func TestRandomSPD_Ridge(t *testing.T) {
	t.Parallel()

	g := rand.New(rand.NewSource(3)).NormFloat64()
	m, err := builder.RandomSPD(1, 3, builder.WithRidge(0), builder.WithAmplitude(2))
	require.NoError(t, err)
	require.InDelta(t, 2*g*g, m.At(0, 0), 1e-12)

	m, err = builder.RandomSPD(1, 3, builder.WithRidge(5))
	require.NoError(t, err)
	require.InDelta(t, g*g+5, m.At(0, 0), 1e-12)
}

func TestSPDSet(t *testing.T) {
	t.Parallel()

	set, err := builder.SPDSet(6, 3, 11)
	require.NoError(t, err)
	require.Len(t, set, 6)
	require.NoError(t, matrix.ValidateSet(set, true))
	for _, m := range set {
		requireSPD(t, m)
	}
	require.False(t, mat.Equal(set[0], set[1]))

	again, err := builder.SPDSet(6, 3, 11)
	require.NoError(t, err)
	require.True(t, matrix.EqualSets(set, again, 0))

	_, err = builder.SPDSet(0, 3, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.SPDSet(2, 0, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

// TestClassSets: each sample lies closer to its own class mean than to the
// other class means.
func TestClassSets(t *testing.T) {
	t.Parallel()

	sets, err := builder.ClassSets(3, 8, 3, 21, builder.WithSpread(0.05))
	require.NoError(t, err)
	require.Len(t, sets, 3)

	means := make([]*mat.Dense, len(sets))
	for k, set := range sets {
		require.Len(t, set, 8)
		for _, m := range set {
			requireSPD(t, m)
		}
		means[k], err = geometry.Mean(set, metric.Riemann)
		require.NoError(t, err)
	}
	for k, set := range sets {
		for _, m := range set {
			own, err := geometry.Distance(m, means[k], metric.Riemann)
			require.NoError(t, err)
			for j := range means {
				if j == k {
					continue
				}
				other, err := geometry.Distance(m, means[j], metric.Riemann)
				require.NoError(t, err)
				require.Less(t, own, other, "class %d sample vs class %d", k, j)
			}
		}
	}

	_, err = builder.ClassSets(0, 1, 2, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestWindow(t *testing.T) {
	t.Parallel()

	w, err := builder.Window(3, 4000, 5, builder.WithChannelScales(1, 10))
	require.NoError(t, err)
	r, c := w.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4000, c)

	// Scales cycle: channel 2 reuses scale 1.
	want := []float64{1, 10, 1}
	for i := 0; i < r; i++ {
		sd := stat.StdDev(mat.Row(nil, i, w), nil)
		require.InDelta(t, want[i], sd, 0.1*want[i], "channel %d", i)
	}

	_, err = builder.Window(0, 10, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Window(2, 1, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestWindows_SharedStream(t *testing.T) {
	t.Parallel()

	ws, err := builder.Windows(3, 2, 16, 9)
	require.NoError(t, err)
	require.Len(t, ws, 3)
	first, err := builder.Window(2, 16, 9)
	require.NoError(t, err)
	require.True(t, mat.Equal(ws[0], first))
	require.False(t, mat.Equal(ws[0], ws[1]))

	// WithRand continues one stream across calls.
	r := rand.New(rand.NewSource(9))
	a, err := builder.Window(2, 16, 0, builder.WithRand(r))
	require.NoError(t, err)
	b, err := builder.Window(2, 16, 0, builder.WithRand(r))
	require.NoError(t, err)
	require.True(t, mat.Equal(a, ws[0]))
	require.True(t, mat.Equal(b, ws[1]))

	_, err = builder.Windows(0, 2, 16, 1)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestPulse(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, 1, 0, 0, 1, 1, 0, 0}, builder.Pulse(8, 2, 0.5))
	require.Equal(t, []float64{1, 1, 1, 1}, builder.Pulse(4, 1, 1))
	require.Equal(t, []float64{0, 0, 0}, builder.Pulse(3, 1, 0))

	require.Nil(t, builder.Pulse(0, 1, 0.5))
	require.Nil(t, builder.Pulse(4, 0, 0.5))
	require.Nil(t, builder.Pulse(4, 1, 1.5))
	require.Nil(t, builder.Pulse(4, 1, math.NaN()))
}

func TestAddBurst(t *testing.T) {
	t.Parallel()

	w := mat.NewDense(2, 8, nil)
	require.NoError(t, builder.AddBurst(w, 1, 3, 4, builder.WithEnvelope(2, 0.5)))
	gate := builder.Pulse(8, 2, 0.5)
	for j := 0; j < 8; j++ {
		require.Zero(t, w.At(0, j), "untouched channel")
		if gate[j] == 0 {
			require.Zero(t, w.At(1, j), "gated sample %d", j)
		} else {
			require.NotZero(t, w.At(1, j), "burst sample %d", j)
		}
	}

	full := mat.NewDense(1, 5, nil)
	require.NoError(t, builder.AddBurst(full, 0, 1, 4))
	for j := 0; j < 5; j++ {
		require.NotZero(t, full.At(0, j))
	}

	require.ErrorIs(t, builder.AddBurst(w, 2, 1, 1), builder.ErrBadChannel)
	require.ErrorIs(t, builder.AddBurst(w, -1, 1, 1), builder.ErrBadChannel)
	require.ErrorIs(t, builder.AddBurst(w, 0, 0, 1), builder.ErrBadSize)
	require.ErrorIs(t, builder.AddBurst(nil, 0, 1, 1), builder.ErrBadSize)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithAmplitude(0) })
	require.Panics(t, func() { builder.WithAmplitude(math.NaN()) })
	require.Panics(t, func() { builder.WithChannelScales() })
	require.Panics(t, func() { builder.WithChannelScales(1, -1) })
	require.Panics(t, func() { builder.WithSpread(0) })
	require.Panics(t, func() { builder.WithRidge(-1) })
	require.Panics(t, func() { builder.WithEnvelope(0, 0.5) })
	require.Panics(t, func() { builder.WithEnvelope(1, 2) })
}
