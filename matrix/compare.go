// SPDX-License-Identifier: MIT
// Package matrix: approximate comparison and human-readable formatting.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Equal reports whether a and b are approximately equal in the relative sense
//
//	‖a − b‖_F ≤ precision · min(‖a‖_F, ‖b‖_F).
//
// Two empty matrices are equal; an empty and a non-empty one are not, nor are
// matrices of different shapes. Two zero matrices are equal.
//
// Complexity: O(r·c).
func Equal(a, b mat.Matrix, precision float64) bool {
	ea, eb := IsEmpty(a), IsEmpty(b)
	if ea || eb {
		return ea && eb
	}
	if !SameSize(a, b) {
		return false
	}
	diff := new(mat.Dense)
	diff.Sub(a, b)
	d := mat.Norm(diff, 2)
	if d == 0 {
		return true
	}

	return d <= precision*math.Min(mat.Norm(a, 2), mat.Norm(b, 2))
}

// EqualSets compares two matrix sequences element-wise with Equal.
func EqualSets(a, b []*mat.Dense, precision float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i], precision) {
			return false
		}
	}

	return true
}

// Format renders m with gonum's formatter under a name prefix, one row per
// line. Empty matrices render as "<name>: empty".
func Format(name string, m mat.Matrix) string {
	if IsEmpty(m) {
		return name + ": empty"
	}
	r, c := m.Dims()

	return fmt.Sprintf("%s (%d×%d):\n%v", name, r, c, mat.Formatted(m, mat.Squeeze()))
}
