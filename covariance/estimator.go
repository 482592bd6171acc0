// SPDX-License-Identifier: MIT
// Package: spdgeom/covariance
//
// estimator.go: enumerations selecting the covariance estimator and the
// row standardization applied to a signal window before estimation.

package covariance

import (
	"fmt"
	"strings"
)

// Estimator enumerates the covariance estimators.
type Estimator int

// Enum values (stable ordering).
const (
	COV Estimator = iota // population covariance
	SCM                  // normalized sample covariance X·Xᵀ / tr(X·Xᵀ)
	LWF                  // Ledoit-Wolf shrinkage
	OAS                  // oracle approximating shrinkage
	MCD                  // minimum covariance determinant (identity placeholder)
	COR                  // Pearson correlation
	IDE                  // identity
)

var estimatorNames = [...]string{
	COV: "COV",
	SCM: "SCM",
	LWF: "LWF",
	OAS: "OAS",
	MCD: "MCD",
	COR: "COR",
	IDE: "IDE",
}

// String returns the short estimator name, or "Unknown".
func (e Estimator) String() string {
	if e < COV || e > IDE {
		return "Unknown"
	}

	return estimatorNames[e]
}

// ParseEstimator resolves a case-insensitive estimator name.
//
// Errors: ErrUnknownEstimator.
func ParseEstimator(s string) (Estimator, error) {
	for i, name := range estimatorNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Estimator(i), nil
		}
	}

	return IDE, covarianceErrorf(opParseEstimator, fmt.Errorf("%w: %q", ErrUnknownEstimator, s))
}

// Standardization enumerates the per-row preprocessing applied before estimation.
type Standardization int

const (
	// None leaves the samples untouched.
	None Standardization = iota
	// Center removes the mean of every row.
	Center
	// StandardScale removes the mean and divides by the standard deviation of every row.
	StandardScale
)

// String returns the standardization name.
func (s Standardization) String() string {
	switch s {
	case None:
		return "None"
	case Center:
		return "Center"
	case StandardScale:
		return "StandardScale"
	default:
		return "Unknown"
	}
}

// ParseStandardization resolves a case-insensitive standardization name.
//
// Errors: ErrUnknownStandardization.
func ParseStandardization(s string) (Standardization, error) {
	for _, std := range []Standardization{None, Center, StandardScale} {
		if strings.EqualFold(strings.TrimSpace(s), std.String()) {
			return std, nil
		}
	}

	return None, covarianceErrorf(opParseStandardization, fmt.Errorf("%w: %q", ErrUnknownStandardization, s))
}
