// SPDX-License-Identifier: MIT

// Package dataset reads and writes matrix sets as YAML, the input format of
// the spdgeom command.
//
// A document holds either flat matrices, optionally labelled, or matrices
// grouped by class, and may name the metric it was produced with:
//
//	metric: Riemann
//	matrices:
//	  - [[2, 0], [0, 2]]
//	  - [[4, 1], [1, 4]]
//	labels: [0, 1]
//
//	classes:
//	  - - [[5]]
//	    - [[6]]
//	  - - [[10]]
//
// Matrices need not be square: ASR training windows are channels×samples.
// Shape and definiteness checks are left to the consumers (geometry,
// classifier, asr).
package dataset
