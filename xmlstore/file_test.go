// SPDX-License-Identifier: MIT
package xmlstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spdgeom/asr"
	"github.com/katalvlaran/spdgeom/classifier"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/katalvlaran/spdgeom/xmlstore"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	b := classifier.NewBias()
	require.NoError(t, b.Restore(diag(2, 3), 4))
	path := filepath.Join(dir, "bias.xml")
	require.NoError(t, xmlstore.SaveBiasFile(path, b))
	rb := classifier.NewBias()
	require.NoError(t, xmlstore.LoadBiasFile(path, rb))
	require.True(t, classifier.EqualBias(b, rb, 0))

	c := classifier.NewMDM(0, metric.Kullback)
	require.NoError(t, c.SetMeans([]*mat.Dense{diag(1, 2), diag(3, 4)}, []int{5, 6}))
	path = filepath.Join(dir, "mdm.xml")
	require.NoError(t, xmlstore.SaveMDMFile(path, c))
	rc := classifier.NewMDM(0, metric.Riemann)
	require.NoError(t, xmlstore.LoadMDMFile(path, rc))
	require.True(t, classifier.EqualMDM(c, rc, 0))

	a := asr.New(metric.Riemann)
	require.NoError(t, a.SetMatrices(diag(2, 2), diag(3, 3), nil, nil))
	path = filepath.Join(dir, "asr.xml")
	require.NoError(t, xmlstore.SaveASRFile(path, a))
	ra := asr.New(metric.Euclidean)
	require.NoError(t, xmlstore.LoadASRFile(path, ra))
	require.True(t, asr.Equal(a, ra, 0))
}

func TestFiles_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.xml")
	require.ErrorIs(t, xmlstore.LoadBiasFile(path, classifier.NewBias()), os.ErrNotExist)
	require.ErrorIs(t, xmlstore.LoadMDMFile(path, classifier.NewMDM(0, metric.Riemann)), os.ErrNotExist)
	require.ErrorIs(t, xmlstore.LoadASRFile(path, asr.New(metric.Riemann)), os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "no-such-dir", "bias.xml")
	b := classifier.NewBias()
	require.NoError(t, b.Restore(diag(1), 0))
	require.Error(t, xmlstore.SaveBiasFile(bad, b))
}
