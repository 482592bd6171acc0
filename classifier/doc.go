// SPDX-License-Identifier: MIT

// Package classifier provides two stateful components built on package
// geometry:
//
//   - Bias: a reference covariance (mean of a calibration set, then updated
//     online along geodesics) and the whitening map in ↦ B^{-1/2}·in·B^{-1/2}ᵀ.
//   - MDM: minimum distance to mean classification with None, Supervised or
//     Unsupervised adaptation of the class means.
//
// Both components have a single owner and are not safe for concurrent
// mutation. Equality (EqualBias, EqualMDM) and diagnostics (String) are free of
// any persistence format; XML documents are handled by package xmlstore.
//
// Example:
//
//	c := classifier.NewMDM(0, metric.Riemann)
//	if err := c.Train(perClass); err != nil { ... }
//	res, err := c.Classify(sample, classifier.Unsupervised, classifier.NoClass)
package classifier
