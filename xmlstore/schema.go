// SPDX-License-Identifier: MIT
// Package xmlstore: document schemas and the shared matrix payload.
//
//	<Bias><Bias-data><Bias n="count" size="N">…</Bias></Bias-data></Bias>
//
//	<Classifier>
//	  <Classifier-data type="MDM" class-count="K" metric="Riemann">
//	    <Class class-id="k" nb-trials="n" size="N">…</Class>
//	  </Classifier-data>
//	</Classifier>
//
//	<ASR>
//	  <ASR-data metric="Riemann" max-channel="1">
//	    <Median size="N">…</Median><Threshold size="N">…</Threshold>
//	  </ASR-data>
//	</ASR>
//
// Payload text is matrix.MarshalText of an N×N matrix.

package xmlstore

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"gonum.org/v1/gonum/mat"
)

// Element names.
const (
	rootBias       = "Bias"
	rootClassifier = "Classifier"
	rootASR        = "ASR"
)

// matrixNode is a square matrix payload with its size attribute. The payload
// is kept as inner XML so rows stay on their own lines; numbers never need
// escaping.
type matrixNode struct {
	Size int    `xml:"size,attr"`
	Text string `xml:",innerxml"`
}

func newMatrixNode(m *mat.Dense) matrixNode {
	n, _ := matrix.Dims(m)
	text := matrix.MarshalText(m)
	if text != "" {
		text = "\n" + text + "\n"
	}

	return matrixNode{Size: n, Text: text}
}

// MaxMatrixSize bounds the size attribute of a stored matrix.
const MaxMatrixSize = 1 << 12

// decode parses the payload; size 0 yields nil.
func (n matrixNode) decode() (*mat.Dense, error) {
	if n.Size < 0 || n.Size > MaxMatrixSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidAttribute, n.Size)
	}

	return matrix.UnmarshalText(n.Text, n.Size, n.Size)
}

type biasDocument struct {
	XMLName xml.Name
	Data    *biasData `xml:"Bias-data"`
}

type biasData struct {
	Bias *biasNode `xml:"Bias"`
}

type biasNode struct {
	Count int `xml:"n,attr"`
	matrixNode
}

type classifierDocument struct {
	XMLName xml.Name
	Data    *classifierData `xml:"Classifier-data"`
}

type classifierData struct {
	Type       string         `xml:"type,attr"`
	ClassCount int            `xml:"class-count,attr"`
	Metric     *metric.Metric `xml:"metric,attr"`
	Classes    []classNode    `xml:"Class"`
}

type classNode struct {
	ClassID int `xml:"class-id,attr"`
	Trials  int `xml:"nb-trials,attr"`
	matrixNode
}

type asrDocument struct {
	XMLName xml.Name
	Data    *asrData `xml:"ASR-data"`
}

type asrData struct {
	Metric     *metric.Metric `xml:"metric,attr"`
	MaxChannel *float64       `xml:"max-channel,attr"`
	Median     *matrixNode    `xml:"Median"`
	Threshold  *matrixNode    `xml:"Threshold"`
}

// encodeDocument writes the XML declaration and doc, tab-indented.
func encodeDocument(w io.Writer, doc any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}

// decodeDocument reads one document into doc and checks the root element name.
func decodeDocument(r io.Reader, doc any, root *xml.Name, want string) error {
	if err := xml.NewDecoder(r).Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: <%s>", ErrMissingElement, want)
		}
		return err
	}
	if root.Local != want {
		return fmt.Errorf("%w: <%s>, found <%s>", ErrMissingElement, want, root.Local)
	}

	return nil
}
