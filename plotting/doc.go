// SPDX-License-Identifier: MIT

// Package plotting renders ASR calibration diagnostics with gonum/plot: the
// distribution of per-window RMS values of each principal component, the
// fitted location μ and the rejection limit derived from it.
//
// Example:
//
//	if err := model.Train(windows, asr.DefaultRejectionLimit); err != nil { ... }
//	if err := plotting.SaveReport("calibration.png", model.Calibration()); err != nil { ... }
package plotting
