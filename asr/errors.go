// SPDX-License-Identifier: MIT
// Package asr: sentinel error set.
// Shape and definiteness failures are reported with the matrix sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrNonSquare, ...) wrapped with an
// operation tag; the sentinels below are specific to artifact reconstruction.

package asr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTrained is returned by Process before Train or SetMatrices succeeded.
	ErrNotTrained = errors.New("asr: model is not trained")

	// ErrInvalidFraction indicates a channel fraction outside [0,1].
	ErrInvalidFraction = errors.New("asr: channel fraction must be in [0,1]")

	// ErrInvalidFitOptions indicates FitOptions out of their documented ranges.
	ErrInvalidFitOptions = errors.New("asr: invalid fit options")

	// ErrInsufficientData indicates too few values (or windows) to build the
	// quantile grid of FitDistribution.
	ErrInsufficientData = errors.New("asr: insufficient data")

	// ErrEmptyWindow indicates a signal window without channels or with fewer
	// than two samples.
	ErrEmptyWindow = errors.New("asr: window needs at least one channel and two samples")

	// ErrInvalidRejectionLimit indicates a negative or non-finite rejection limit.
	ErrInvalidRejectionLimit = errors.New("asr: rejection limit must be finite and ≥ 0")
)

// asrErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func asrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags.
const (
	opTrain       = "ASR.Train"
	opProcess     = "ASR.Process"
	opSetMatrices = "ASR.SetMatrices"
	opMaxChannel  = "ASR.SetMaxChannel"
	opFit         = "FitDistribution"
)
