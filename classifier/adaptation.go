// SPDX-License-Identifier: MIT
package classifier

import "strings"

// Adaptation selects how Classify updates the class means.
type Adaptation int

const (
	// None leaves the classifier untouched.
	None Adaptation = iota
	// Supervised moves the mean of the expected class toward the sample.
	Supervised
	// Unsupervised moves the mean of the predicted class toward the sample.
	Unsupervised
)

var adaptationNames = [...]string{"None", "Supervised", "Unsupervised"}

// String returns the canonical name, or "Unknown" outside the enum.
func (a Adaptation) String() string {
	if a < None || a > Unsupervised {
		return "Unknown"
	}

	return adaptationNames[a]
}

// ParseAdaptation maps a case-insensitive name to its Adaptation.
//
// Errors: ErrUnknownAdaptation.
func ParseAdaptation(s string) (Adaptation, error) {
	for i, name := range adaptationNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Adaptation(i), nil
		}
	}

	return None, classifierErrorf(opAdaptation, ErrUnknownAdaptation)
}
