// SPDX-License-Identifier: MIT
// Package: spdgeom/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach their name with builderErrorf.
//   • Constructors never panic; option constructors do (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a count, dimension or sample length below its minimum.
var ErrBadSize = errors.New("builder: invalid size")

// ErrBadChannel indicates a channel index outside the window.
var ErrBadChannel = errors.New("builder: channel out of range")

// builderErrorf prefixes err with the constructor name, preserving it for
// errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// Constructor names used as error prefixes.
const (
	MethodRandomSPD = "RandomSPD"
	MethodSPDSet    = "SPDSet"
	MethodClassSets = "ClassSets"
	MethodWindow    = "Window"
	MethodWindows   = "Windows"
	MethodAddBurst  = "AddBurst"
)
