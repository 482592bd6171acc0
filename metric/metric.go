// SPDX-License-Identifier: MIT
// Package: spdgeom/metric
//
// metric.go: the metric tag selecting a distance / geodesic / mean family.
//
// Design:
//   • Metric is a small int enum with a stable declaration order (persisted
//     through its name, never through its number).
//   • Parse is lenient: unknown names fall back to Identity. ParseStrict and
//     UnmarshalText report ErrUnknownMetric instead; persistence uses them.
//   • Legacy spellings found in older model files are accepted by both parsers.

package metric

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric is returned by strict parsing for an unrecognized name.
var ErrUnknownMetric = errors.New("metric: unknown metric")

// Metric enumerates the supported matrix metrics.
type Metric int

// Enum values (stable ordering).
const (
	Riemann      Metric = iota // affine-invariant Riemannian metric
	Euclidean                  // Frobenius metric
	LogEuclidean               // Frobenius metric of matrix logarithms
	LogDet                     // S-divergence (Jensen-Bregman LogDet)
	Kullback                   // symmetrized Kullback-Leibler divergence
	ALE                        // AJD-based log-Euclidean
	Harmonic                   // inverse of the mean of inverses
	Wasserstein                // Bures-Wasserstein metric
	Identity                   // constant metric, identity mean
)

// names maps each Metric to its canonical name.
var names = [...]string{
	Riemann:      "Riemann",
	Euclidean:    "Euclidean",
	LogEuclidean: "LogEuclidean",
	LogDet:       "LogDet",
	Kullback:     "Kullback",
	ALE:          "ALE",
	Harmonic:     "Harmonic",
	Wasserstein:  "Wasserstein",
	Identity:     "Identity",
}

// aliases maps normalized spellings (lower case, no separators) to metrics.
var aliases = map[string]Metric{
	"riemann":        Riemann,
	"euclidean":      Euclidean,
	"euclidian":      Euclidean,
	"logeuclidean":   LogEuclidean,
	"logeuclidian":   LogEuclidean,
	"logdet":         LogDet,
	"logdeterminant": LogDet,
	"kullback":       Kullback,
	"ale":            ALE,
	"harmonic":       Harmonic,
	"wasserstein":    Wasserstein,
	"identity":       Identity,
}

// All returns every metric in declaration order.
func All() []Metric {
	return []Metric{Riemann, Euclidean, LogEuclidean, LogDet, Kullback, ALE, Harmonic, Wasserstein, Identity}
}

// String returns the canonical name, or "Unknown" for values outside the enum.
func (m Metric) String() string {
	if !m.Valid() {
		return "Unknown"
	}

	return names[m]
}

// Valid reports whether m is a declared metric.
func (m Metric) Valid() bool {
	return m >= Riemann && m <= Identity
}

// normalize lowers s and drops spaces, dashes and underscores.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}

		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// ParseStrict resolves a metric name (case-insensitive, separators ignored,
// legacy spellings accepted).
//
// Errors: ErrUnknownMetric.
func ParseStrict(s string) (Metric, error) {
	if m, ok := aliases[normalize(s)]; ok {
		return m, nil
	}

	return Identity, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Parse resolves a metric name like ParseStrict, falling back to Identity for
// unknown names.
func Parse(s string) Metric {
	m, _ := ParseStrict(s)

	return m
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with strict parsing.
func (m *Metric) UnmarshalText(text []byte) error {
	v, err := ParseStrict(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}
