// SPDX-License-Identifier: MIT
package plotting_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spdgeom/asr"
	"github.com/katalvlaran/spdgeom/plotting"
	"github.com/stretchr/testify/require"
)

// fit returns a component fit with 500 RMS values around mu.
func fit(seed int64, mu float64) asr.ComponentFit {
	rng := rand.New(rand.NewSource(seed))
	rms := make([]float64, 500)
	for i := range rms {
		rms[i] = mu + 0.1*mu*rng.NormFloat64()
	}

	return asr.ComponentFit{RMS: rms, Mu: mu, Sigma: 0.1 * mu, Limit: 1.5 * mu}
}

func TestCalibration(t *testing.T) {
	t.Parallel()

	p, err := plotting.Calibration(fit(1, 2), "channel 0")
	require.NoError(t, err)
	require.Equal(t, "channel 0", p.Title.Text)
	require.LessOrEqual(t, p.X.Min, 2.0)
	require.GreaterOrEqual(t, p.X.Max, 3.0)

	_, err = plotting.Calibration(asr.ComponentFit{}, "empty")
	require.ErrorIs(t, err, plotting.ErrNoData)
}

func TestSaveCalibration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"c.png", "c.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, plotting.SaveCalibration(path, fit(2, 1), name))
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}

	err := plotting.SaveCalibration(filepath.Join(dir, "c.doc"), fit(2, 1), "x")
	require.ErrorIs(t, err, plotting.ErrUnsupportedFormat)
	err = plotting.SaveCalibration(filepath.Join(dir, "noext"), fit(2, 1), "x")
	require.ErrorIs(t, err, plotting.ErrUnsupportedFormat)
}

func TestSaveReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.png")
	fits := []asr.ComponentFit{fit(3, 1), fit(4, 2), fit(5, 4)}
	require.NoError(t, plotting.SaveReport(path, fits))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	require.ErrorIs(t, plotting.SaveReport(path, nil), plotting.ErrNoData)
	require.ErrorIs(t, plotting.SaveReport(path, []asr.ComponentFit{fit(6, 1), {}}), plotting.ErrNoData)
}
