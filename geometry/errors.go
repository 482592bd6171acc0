// SPDX-License-Identifier: MIT
// Package geometry: sentinel error set.
// Shape errors come from the matrix package (matrix.ErrDimensionMismatch,
// matrix.ErrNonSquare, matrix.ErrNotPositiveDefinite, ...) and are passed
// through unchanged; the sentinels below cover what is specific to geometry.

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned by Mean for an empty input set.
	ErrEmptyDataset = errors.New("geometry: empty dataset")

	// ErrAlphaOutOfRange indicates a geodesic position outside [0,1].
	ErrAlphaOutOfRange = errors.New("geometry: alpha must be in [0,1]")

	// ErrUnsupportedMetric is returned in strict mode for a metric whose
	// operation is not implemented, and always for values outside the enum.
	ErrUnsupportedMetric = errors.New("geometry: unsupported metric")
)

// geometryErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func geometryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags.
const (
	opDistance = "Distance"
	opGeodesic = "Geodesic"
	opMean     = "Mean"
	opAffine   = "AffineTransform"
)
