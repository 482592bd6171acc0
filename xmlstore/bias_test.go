// SPDX-License-Identifier: MIT
package xmlstore_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/katalvlaran/spdgeom/classifier"
	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/katalvlaran/spdgeom/xmlstore"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBias_RoundTrip(t *testing.T) {
	t.Parallel()

	b := classifier.NewBias()
	require.NoError(t, b.Compute([]*mat.Dense{randomSPD(3, 1), randomSPD(3, 2), randomSPD(3, 3)}, metric.Riemann))
	require.NoError(t, b.Update(randomSPD(3, 4), metric.Riemann))

	var buf bytes.Buffer
	require.NoError(t, xmlstore.SaveBias(&buf, b))

	restored := classifier.NewBias()
	require.NoError(t, xmlstore.LoadBias(&buf, restored))
	require.True(t, classifier.EqualBias(b, restored, matrix.DefaultPrecision))
	require.Equal(t, b.Count(), restored.Count())

	in := randomSPD(3, 5)
	want, err := b.Apply(in)
	require.NoError(t, err)
	got, err := restored.Apply(in)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, got, 1e-12))
}

func TestBias_Layout(t *testing.T) {
	t.Parallel()

	b := classifier.NewBias()
	require.NoError(t, b.Restore(diag(1, 2), 3))

	var buf bytes.Buffer
	require.NoError(t, xmlstore.SaveBias(&buf, b))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, xml.Header))
	require.Contains(t, out, "<Bias-data>")
	require.Contains(t, out, `<Bias n="3" size="2">`)
	require.Contains(t, out, "\n1 0\n0 2\n</Bias>")
}

func TestBias_SaveNotComputed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := xmlstore.SaveBias(&buf, classifier.NewBias())
	require.ErrorIs(t, err, classifier.ErrNotComputed)
	require.Zero(t, buf.Len())
}

func TestBias_LoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty", "", xmlstore.ErrMissingElement},
		{"WrongRoot", "<Classifier/>", xmlstore.ErrMissingElement},
		{"NoData", "<Bias></Bias>", xmlstore.ErrMissingElement},
		{"NoPayload", "<Bias><Bias-data></Bias-data></Bias>", xmlstore.ErrMissingElement},
		{"NegativeCount", `<Bias><Bias-data><Bias n="-1" size="1">1</Bias></Bias-data></Bias>`, xmlstore.ErrInvalidAttribute},
		{"NegativeSize", `<Bias><Bias-data><Bias n="1" size="-2"></Bias></Bias-data></Bias>`, xmlstore.ErrInvalidAttribute},
		{"OversizedSize", `<Bias><Bias-data><Bias n="0" size="4294967296"></Bias></Bias-data></Bias>`, xmlstore.ErrInvalidAttribute},
		{"ShortPayload", `<Bias><Bias-data><Bias n="1" size="2">1 0 0</Bias></Bias-data></Bias>`, matrix.ErrMalformedText},
		{"BadNumber", `<Bias><Bias-data><Bias n="1" size="1">one</Bias></Bias-data></Bias>`, matrix.ErrMalformedText},
		{"ZeroSize", `<Bias><Bias-data><Bias n="1" size="0"></Bias></Bias-data></Bias>`, matrix.ErrEmpty},
		{"NotSPD", `<Bias><Bias-data><Bias n="1" size="2">1 0 0 -1</Bias></Bias-data></Bias>`, matrix.ErrNotPositiveDefinite},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := classifier.NewBias()
			require.NoError(t, b.Restore(diag(5, 5), 2))
			err := xmlstore.LoadBias(strings.NewReader(tc.doc), b)
			require.ErrorIs(t, err, tc.want)
			require.True(t, mat.Equal(b.Bias(), diag(5, 5)))
			require.Equal(t, 2, b.Count())
		})
	}
}

func TestBias_LoadSyntaxError(t *testing.T) {
	t.Parallel()

	var syntax *xml.SyntaxError
	err := xmlstore.LoadBias(strings.NewReader("<Bias><Bias-data>"), classifier.NewBias())
	require.ErrorAs(t, err, &syntax)
}
