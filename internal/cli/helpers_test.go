// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spdgeom/builder"
	"github.com/katalvlaran/spdgeom/dataset"
	"github.com/katalvlaran/spdgeom/internal/cli"
	"github.com/stretchr/testify/require"
)

// run executes the root command and returns its standard and error output.
func run(args ...string) (string, string, error) {
	cmd := cli.New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// file writes content into dir/name and returns the path.
func file(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// parse decodes a dataset printed on standard output.
func parse(t *testing.T, out string) *dataset.Dataset {
	t.Helper()

	d, err := dataset.Load(strings.NewReader(out))
	require.NoError(t, err)

	return d
}

// windows writes n 4×128 Gaussian windows with channel i at standard
// deviation i+1; artifact adds a burst on channel 0.
func windows(t *testing.T, path string, n int, seed int64, artifact bool) {
	t.Helper()

	set, err := builder.Windows(n, 4, 128, seed, builder.WithChannelScales(1, 2, 3, 4))
	require.NoError(t, err)
	if artifact {
		for k, w := range set {
			require.NoError(t, builder.AddBurst(w, 0, 200, seed+int64(k)+1))
		}
	}
	d, err := dataset.New(set, nil)
	require.NoError(t, err)
	require.NoError(t, dataset.WriteFile(path, d))
}
