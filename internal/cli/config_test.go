// SPDX-License-Identifier: MIT
package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/internal/cli"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg, err := cli.LoadConfig(file(t, dir, "full.yaml",
		"log-level: debug\nepsilon: 1e-8\nmax-iterations: 200\nstrict: true\nmetric: logdet\n"))
	require.NoError(t, err)
	require.Equal(t, cli.Config{
		LogLevel:      "debug",
		Epsilon:       1e-8,
		MaxIterations: 200,
		Strict:        true,
		Metric:        "logdet",
	}, cfg)

	cfg, err = cli.LoadConfig(file(t, dir, "empty.yaml", ""))
	require.NoError(t, err)
	require.Equal(t, cli.DefaultConfig(), cfg)
	require.Equal(t, geometry.DefaultEpsilon, cfg.Epsilon)

	tests := []struct {
		name, doc string
		want      error
	}{
		{"Epsilon", "epsilon: 0\n", cli.ErrInvalidConfig},
		{"EpsilonInf", "epsilon: .inf\n", cli.ErrInvalidConfig},
		{"EpsilonNaN", "epsilon: .nan\n", cli.ErrInvalidConfig},
		{"Iterations", "max-iterations: 0\n", cli.ErrInvalidConfig},
		{"Level", "log-level: loud\n", cli.ErrInvalidConfig},
		{"Metric", "metric: bogus\n", metric.ErrUnknownMetric},
	}
	for _, tc := range tests {
		_, err := cli.LoadConfig(file(t, dir, tc.name+".yaml", tc.doc))
		require.ErrorIs(t, err, tc.want, tc.name)
	}

	_, err = cli.LoadConfig(file(t, dir, "unknown.yaml", "epsilonn: 1\n"))
	require.Error(t, err)
	_, err = cli.LoadConfig(filepath.Join(dir, "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestConfigFlagOverride: the file sets the metric, a flag overrides it.
func TestConfigFlagOverride(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	config := file(t, dir, "config.yaml", "metric: euclidean\nlog-level: warn\n")
	set := file(t, dir, "set.yaml", "matrices: [[[1]], [[4]]]\n")

	out, _, err := run("--config", config, "mean", set)
	require.NoError(t, err)
	require.InDelta(t, 2.5, parse(t, out).Flat()[0].At(0, 0), 1e-12)

	out, _, err = run("--config", config, "--metric", "riemann", "mean", set)
	require.NoError(t, err)
	require.InDelta(t, 2, parse(t, out).Flat()[0].At(0, 0), 1e-9)

	_, stderr, err := run("--config", config, "mean", "-o", filepath.Join(dir, "m.yaml"), set)
	require.NoError(t, err)
	require.NotContains(t, stderr, "dataset written", "warn level hides info entries")
}

func TestFlagErrors(t *testing.T) {
	t.Parallel()

	set := file(t, t.TempDir(), "set.yaml", "matrices: [[[1]]]\n")
	_, _, err := run("--epsilon", "-1", "mean", set)
	require.ErrorIs(t, err, cli.ErrInvalidConfig)
	_, _, err = run("mean", "--epsilon", "inf", set)
	require.ErrorIs(t, err, cli.ErrInvalidConfig)
	_, _, err = run("--log-level", "loud", "mean", set)
	require.ErrorIs(t, err, cli.ErrInvalidConfig)
	_, _, err = run("--metric", "bogus", "mean", set)
	require.ErrorIs(t, err, metric.ErrUnknownMetric)
	_, _, err = run("--strict", "--metric", "ale", "mean", set)
	require.NoError(t, err, "a single matrix is its own mean")
}
