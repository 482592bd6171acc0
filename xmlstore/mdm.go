// SPDX-License-Identifier: MIT
package xmlstore

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/katalvlaran/spdgeom/classifier"
	"gonum.org/v1/gonum/mat"
)

// SaveMDM writes the classifier header (type, class count, metric) and one
// Class element per class, in class-id order.
//
// Errors: classifier.ErrNotTrained (a class without mean),
// metric.ErrUnknownMetric, write errors.
func SaveMDM(w io.Writer, c *classifier.MDM) error {
	m := c.Metric()
	means, trials := c.Means(), c.Trials()
	data := &classifierData{
		Type:       classifier.MDMType,
		ClassCount: len(means),
		Metric:     &m,
		Classes:    make([]classNode, len(means)),
	}
	for k, mean := range means {
		if mean == nil {
			return storeErrorf(opSaveMDM, fmt.Errorf("class %d: %w", k, classifier.ErrNotTrained))
		}
		data.Classes[k] = classNode{ClassID: k, Trials: trials[k], matrixNode: newMatrixNode(mean)}
	}
	doc := classifierDocument{XMLName: xml.Name{Local: rootClassifier}, Data: data}
	if err := encodeDocument(w, doc); err != nil {
		return storeErrorf(opSaveMDM, err)
	}

	return nil
}

// LoadMDM reads a document written by SaveMDM into c, replacing its metric,
// means and trial counts. c is modified only when the whole document is valid.
//
// Errors: ErrMissingElement, ErrTypeMismatch, ErrClassMismatch,
// ErrInvalidAttribute, metric.ErrUnknownMetric, matrix.ErrMalformedText,
// matrix shape errors, XML syntax errors.
func LoadMDM(r io.Reader, c *classifier.MDM) error {
	var doc classifierDocument
	if err := decodeDocument(r, &doc, &doc.XMLName, rootClassifier); err != nil {
		return storeErrorf(opLoadMDM, err)
	}
	data := doc.Data
	if data == nil {
		return storeErrorf(opLoadMDM, fmt.Errorf("%w: <Classifier-data>", ErrMissingElement))
	}
	if data.Type != classifier.MDMType {
		return storeErrorf(opLoadMDM, fmt.Errorf("%w: %q", ErrTypeMismatch, data.Type))
	}
	if data.Metric == nil {
		return storeErrorf(opLoadMDM, fmt.Errorf("%w: metric attribute", ErrMissingElement))
	}
	if data.ClassCount != len(data.Classes) {
		return storeErrorf(opLoadMDM, fmt.Errorf("%w: class-count %d, %d Class elements",
			ErrClassMismatch, data.ClassCount, len(data.Classes)))
	}

	means := make([]*mat.Dense, len(data.Classes))
	trials := make([]int, len(data.Classes))
	for k, node := range data.Classes {
		if node.ClassID != k {
			return storeErrorf(opLoadMDM, fmt.Errorf("%w: class-id %d at position %d",
				ErrClassMismatch, node.ClassID, k))
		}
		if node.Trials < 0 {
			return storeErrorf(opLoadMDM, fmt.Errorf("%w: nb-trials %d", ErrInvalidAttribute, node.Trials))
		}
		mean, err := node.decode()
		if err != nil {
			return storeErrorf(opLoadMDM, fmt.Errorf("class %d: %w", k, err))
		}
		means[k], trials[k] = mean, node.Trials
	}
	if err := c.SetMeans(means, trials); err != nil {
		return storeErrorf(opLoadMDM, err)
	}
	c.SetMetric(*data.Metric)

	return nil
}
