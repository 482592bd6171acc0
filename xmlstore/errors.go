// SPDX-License-Identifier: MIT
// Package xmlstore: sentinel error set.
// Matrix payload errors surface as matrix.ErrMalformedText, metric names as
// metric.ErrUnknownMetric; XML syntax errors from encoding/xml are wrapped
// with the operation tag.

package xmlstore

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingElement indicates a missing root, data or payload element.
	ErrMissingElement = errors.New("xmlstore: missing element")

	// ErrClassMismatch indicates Class elements out of class-id order, or a
	// class-count that does not match them.
	ErrClassMismatch = errors.New("xmlstore: class mismatch")

	// ErrTypeMismatch indicates a classifier document of another type.
	ErrTypeMismatch = errors.New("xmlstore: classifier type mismatch")

	// ErrInvalidAttribute indicates a size or count out of range, or an
	// ASR metric other than Riemann or Euclidean.
	ErrInvalidAttribute = errors.New("xmlstore: invalid attribute")
)

// storeErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func storeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags.
const (
	opSaveBias = "SaveBias"
	opLoadBias = "LoadBias"
	opSaveMDM  = "SaveMDM"
	opLoadMDM  = "LoadMDM"
	opSaveASR  = "SaveASR"
	opLoadASR  = "LoadASR"
)
