// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a document without any matrix.
	ErrEmpty = errors.New("dataset: no matrices")

	// ErrInvalidLayout indicates a document with both flat matrices and classes.
	ErrInvalidLayout = errors.New("dataset: matrices and classes are mutually exclusive")

	// ErrRagged indicates matrix rows of different lengths.
	ErrRagged = errors.New("dataset: ragged matrix rows")

	// ErrLabelMismatch indicates labels that do not match the matrices
	// (length, negative value, or a class without members).
	ErrLabelMismatch = errors.New("dataset: labels do not match matrices")
)

// datasetErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags.
const (
	opLoad     = "Load"
	opWrite    = "Write"
	opFromRows = "FromRows"
	opGrouped  = "Grouped"
	opNew      = "New"
)
