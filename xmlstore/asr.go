// SPDX-License-Identifier: MIT
package xmlstore

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/katalvlaran/spdgeom/asr"
	"github.com/katalvlaran/spdgeom/metric"
)

// SaveASR writes the metric, the channel fraction, the median and the
// threshold of a trained model.
//
// Errors: asr.ErrNotTrained, write errors.
func SaveASR(w io.Writer, a *asr.ASR) error {
	median := a.Median()
	if median == nil {
		return storeErrorf(opSaveASR, asr.ErrNotTrained)
	}
	m, maxChannel := a.Metric(), a.MaxChannel()
	medianNode, thresholdNode := newMatrixNode(median), newMatrixNode(a.Threshold())
	doc := asrDocument{
		XMLName: xml.Name{Local: rootASR},
		Data: &asrData{
			Metric:     &m,
			MaxChannel: &maxChannel,
			Median:     &medianNode,
			Threshold:  &thresholdNode,
		},
	}
	if err := encodeDocument(w, doc); err != nil {
		return storeErrorf(opSaveASR, err)
	}

	return nil
}

// LoadASR reads a document written by SaveASR into a through SetMatrices, so
// the working state is reset (trivial, identity reconstruction). A missing
// max-channel attribute selects asr.DefaultMaxChannel. a is modified only when
// the whole document is valid.
//
// Errors: ErrMissingElement, ErrInvalidAttribute (metric other than Riemann
// or Euclidean, size out of range), asr.ErrInvalidFraction, metric.ErrUnknownMetric,
// matrix.ErrMalformedText, matrix shape and definiteness errors, XML syntax errors.
func LoadASR(r io.Reader, a *asr.ASR) error {
	var doc asrDocument
	if err := decodeDocument(r, &doc, &doc.XMLName, rootASR); err != nil {
		return storeErrorf(opLoadASR, err)
	}
	data := doc.Data
	switch {
	case data == nil:
		return storeErrorf(opLoadASR, fmt.Errorf("%w: <ASR-data>", ErrMissingElement))
	case data.Metric == nil:
		return storeErrorf(opLoadASR, fmt.Errorf("%w: metric attribute", ErrMissingElement))
	case *data.Metric != metric.Riemann && *data.Metric != metric.Euclidean:
		return storeErrorf(opLoadASR, fmt.Errorf("%w: metric %s", ErrInvalidAttribute, *data.Metric))
	case data.Median == nil:
		return storeErrorf(opLoadASR, fmt.Errorf("%w: <Median>", ErrMissingElement))
	case data.Threshold == nil:
		return storeErrorf(opLoadASR, fmt.Errorf("%w: <Threshold>", ErrMissingElement))
	}
	maxChannel := asr.DefaultMaxChannel
	if data.MaxChannel != nil {
		maxChannel = *data.MaxChannel
	}
	if !(maxChannel >= 0 && maxChannel <= 1) {
		return storeErrorf(opLoadASR, asr.ErrInvalidFraction)
	}
	median, err := data.Median.decode()
	if err != nil {
		return storeErrorf(opLoadASR, fmt.Errorf("median: %w", err))
	}
	threshold, err := data.Threshold.decode()
	if err != nil {
		return storeErrorf(opLoadASR, fmt.Errorf("threshold: %w", err))
	}

	if err = a.SetMatrices(median, threshold, nil, nil); err != nil {
		return storeErrorf(opLoadASR, err)
	}
	a.SetMetric(*data.Metric)
	if err = a.SetMaxChannel(maxChannel); err != nil {
		return storeErrorf(opLoadASR, err)
	}

	return nil
}
