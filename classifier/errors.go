// SPDX-License-Identifier: MIT
// Package classifier: sentinel error set.
// Shape failures surface as matrix sentinels (matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch, ...) and metric failures as geometry sentinels,
// wrapped with the operation tag.

package classifier

import (
	"errors"
	"fmt"
)

var (
	// ErrNotComputed is returned by Bias.Apply before any bias was computed or set.
	ErrNotComputed = errors.New("classifier: bias not computed")

	// ErrNotTrained is returned by MDM.Classify when a class has no mean.
	ErrNotTrained = errors.New("classifier: classifier not trained")

	// ErrInvalidClass indicates an adaptation class id outside [0, classCount).
	ErrInvalidClass = errors.New("classifier: invalid class id")

	// ErrInvalidClassCount indicates a negative class count or mismatched
	// means/trials lengths.
	ErrInvalidClassCount = errors.New("classifier: invalid class count")

	// ErrUnknownAdaptation is returned for an Adaptation outside the enum.
	ErrUnknownAdaptation = errors.New("classifier: unknown adaptation")
)

// classifierErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func classifierErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags.
const (
	opBiasCompute = "Bias.Compute"
	opBiasApply   = "Bias.Apply"
	opBiasUpdate  = "Bias.Update"
	opBiasSet     = "Bias.Set"
	opMDMTrain    = "MDM.Train"
	opMDMClassify = "MDM.Classify"
	opMDMSetMeans = "MDM.SetMeans"
	opMDMSetCount = "MDM.SetClassCount"
	opAdaptation  = "ParseAdaptation"
)
