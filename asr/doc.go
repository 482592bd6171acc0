// SPDX-License-Identifier: MIT

// Package asr implements Artifact Subspace Reconstruction (ASR) for
// multichannel signal windows, and the robust distribution fit it relies on.
//
// Training takes clean windows (channels × samples). Their covariances are
// averaged into a median under the Riemann or Euclidean metric; the principal
// components of the median are calibrated with FitDistribution, which yields a
// per-component amplitude limit mu + k·sigma stored as a threshold matrix.
//
// Processing compares the spectrum of every new window with the threshold.
// Components above their limit are dropped and rebuilt from the remaining ones
// through the median mixing matrix:
//
//	a := asr.New(metric.Riemann)
//	if err := a.Train(calibration, asr.DefaultRejectionLimit); err != nil { ... }
//	clean, err := a.Process(window)
//	if !a.Trivial() { ... } // the window was reconstructed
//
// Persistence of a trained model lives in package xmlstore; calibration plots
// in package plotting.
package asr
