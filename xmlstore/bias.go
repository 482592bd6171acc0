// SPDX-License-Identifier: MIT
package xmlstore

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/katalvlaran/spdgeom/classifier"
)

// SaveBias writes the bias matrix and its update count.
//
// Errors: classifier.ErrNotComputed, write errors.
func SaveBias(w io.Writer, b *classifier.Bias) error {
	bias := b.Bias()
	if bias == nil {
		return storeErrorf(opSaveBias, classifier.ErrNotComputed)
	}
	doc := biasDocument{
		XMLName: xml.Name{Local: rootBias},
		Data: &biasData{Bias: &biasNode{
			Count:      b.Count(),
			matrixNode: newMatrixNode(bias),
		}},
	}
	if err := encodeDocument(w, doc); err != nil {
		return storeErrorf(opSaveBias, err)
	}

	return nil
}

// LoadBias reads a document written by SaveBias into b. b is modified only
// when the whole document is valid.
//
// Errors: ErrMissingElement, ErrInvalidAttribute, matrix.ErrMalformedText,
// matrix.ErrEmpty, matrix.ErrNotPositiveDefinite, XML syntax errors.
func LoadBias(r io.Reader, b *classifier.Bias) error {
	var doc biasDocument
	if err := decodeDocument(r, &doc, &doc.XMLName, rootBias); err != nil {
		return storeErrorf(opLoadBias, err)
	}
	if doc.Data == nil || doc.Data.Bias == nil {
		return storeErrorf(opLoadBias, fmt.Errorf("%w: <Bias-data><Bias>", ErrMissingElement))
	}
	node := doc.Data.Bias
	if node.Count < 0 {
		return storeErrorf(opLoadBias, fmt.Errorf("%w: n %d", ErrInvalidAttribute, node.Count))
	}
	bias, err := node.decode()
	if err != nil {
		return storeErrorf(opLoadBias, err)
	}
	if err = b.Restore(bias, node.Count); err != nil {
		return storeErrorf(opLoadBias, err)
	}

	return nil
}
