// SPDX-License-Identifier: MIT
// Package: spdgeom/covariance
//
// errors.go: sentinel errors and operation tags of the covariance package.

package covariance

import (
	"errors"
	"fmt"
)

// Sentinel errors of the covariance package.
var (
	// ErrUnknownEstimator is returned when parsing an unrecognized estimator name.
	ErrUnknownEstimator = errors.New("covariance: unknown estimator")

	// ErrUnknownStandardization is returned when parsing an unrecognized
	// standardization name.
	ErrUnknownStandardization = errors.New("covariance: unknown standardization")

	// ErrInvalidShrinkage indicates a shrinkage coefficient outside [0,1].
	ErrInvalidShrinkage = errors.New("covariance: shrinkage must be in [0,1]")

	// ErrZeroVariance is returned by the correlation estimator for a constant row.
	ErrZeroVariance = errors.New("covariance: zero variance row")
)

// Operation name constants for unified error wrapping.
const (
	opEstimate             = "Estimate"
	opShrink               = "Shrink"
	opParseEstimator       = "ParseEstimator"
	opParseStandardization = "ParseStandardization"
)

// covarianceErrorf wraps err with an operation tag, preserving it for errors.Is.
func covarianceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
