// SPDX-License-Identifier: MIT
// Package asr: the ASR model.
//
// Lifecycle:
//   - New → Train (or SetMatrices from persisted state) → Process per window.
//   - Process updates the working state (last reconstruction matrix, last
//     window covariance, trivial flag); Trivial reports whether the last call
//     left the window untouched.
//
// Concurrency:
//   - An *ASR has a single owner; concurrent Process calls must be serialized
//     by the caller.

package asr

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spdgeom/covariance"
	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultRejectionLimit is the number of standard deviations above the
	// clean RMS mean at which a component is considered corrupted.
	DefaultRejectionLimit = 5

	// DefaultMaxChannel lets every component be reconstructed.
	DefaultMaxChannel = 1.0
)

// ComponentFit is the calibration of one principal component of the median
// covariance, as computed by the last Train.
type ComponentFit struct {
	RMS   []float64 // RMS of the component in every training window
	Mu    float64   // clean RMS mean
	Sigma float64   // clean RMS standard deviation
	Limit float64   // Mu + rejectionLimit·Sigma
}

// ASR is an Artifact Subspace Reconstruction model for multichannel signal
// windows (channels × samples).
type ASR struct {
	opts       geometry.Options
	metric     metric.Metric
	maxChannel float64
	trivial    bool

	median         *mat.Dense // mean covariance of the training windows
	mixing         *mat.Dense // sqrt(median)
	threshold      *mat.Dense // diag(limits)·Vᵀ
	reconstruction *mat.Dense // last R
	covariance     *mat.Dense // last window covariance

	calibration []ComponentFit
}

// New returns an untrained model. Only Riemann and Euclidean medians are
// supported; any other metric selects Euclidean. opts configure the median
// computation and the logger.
func New(m metric.Metric, opts ...geometry.Option) *ASR {
	a := &ASR{
		opts:       geometry.NewOptions(opts...),
		maxChannel: DefaultMaxChannel,
		trivial:    true,
	}
	a.SetMetric(m)

	return a
}

// SetMetric keeps Riemann and maps every other metric to Euclidean.
func (a *ASR) SetMetric(m metric.Metric) {
	if m == metric.Riemann {
		a.metric = metric.Riemann
		return
	}
	a.metric = metric.Euclidean
}

// SetMaxChannel sets the largest fraction of components that may be
// reconstructed (0 for none, 1 for all). Out-of-range values leave the model
// unchanged.
//
// Errors: ErrInvalidFraction.
func (a *ASR) SetMaxChannel(f float64) error {
	if !(f >= 0 && f <= 1) {
		return asrErrorf(opMaxChannel, ErrInvalidFraction)
	}
	a.maxChannel = f

	return nil
}

// Train calibrates the model on clean signal windows.
//
// Implementation:
//   - Stage 1: validate windows (same channel count, ≥ 2 samples) and the limit.
//   - Stage 2: per-window covariances (COV estimator), median = Mean under the
//     model metric, mixing = sqrt(median), V = eigenvectors of mixing sorted by
//     ascending eigenvalue.
//   - Stage 3: per component c and window X, rms_c = sqrt(mean((VᵀX)_c²));
//     FitDistribution gives (μ_c, σ_c).
//   - Stage 4: threshold = diag(μ + rejectionLimit·σ)·Vᵀ; reconstruction = I,
//     covariance = median, trivial = true.
//
// The model is only modified when every stage succeeds.
//
// Errors:
//   - ErrInvalidRejectionLimit, geometry.ErrEmptyDataset, ErrEmptyWindow,
//     matrix.ErrDimensionMismatch, ErrInsufficientData (too few windows),
//     and the errors of geometry.Mean / matrix.Sqrt.
//
// Complexity:
//   - O(k·(c²·s + c³)) for k windows of c channels and s samples, plus the fits.
func (a *ASR) Train(dataset []*mat.Dense, rejectionLimit float64) error {
	if !(rejectionLimit >= 0) || math.IsInf(rejectionLimit, 1) {
		return asrErrorf(opTrain, ErrInvalidRejectionLimit)
	}
	if len(dataset) == 0 {
		return asrErrorf(opTrain, geometry.ErrEmptyDataset)
	}
	channels, err := validateWindows(dataset)
	if err != nil {
		return asrErrorf(opTrain, err)
	}

	// Stage 2: median and its principal axes.
	covs := make([]*mat.Dense, len(dataset))
	for i, w := range dataset {
		if covs[i], err = covariance.Estimate(w, covariance.COV, covariance.None); err != nil {
			return asrErrorf(opTrain, err)
		}
	}
	median, err := geometry.Mean(covs, a.metric, a.opts.Apply())
	if err != nil {
		return asrErrorf(opTrain, err)
	}
	mixing, err := matrix.Sqrt(median)
	if err != nil {
		return asrErrorf(opTrain, err)
	}
	_, v, err := matrix.SortedEigen(mixing)
	if err != nil {
		return asrErrorf(opTrain, err)
	}

	// Stage 3: component amplitudes and their clean distribution.
	rms := make([][]float64, channels)
	for c := range rms {
		rms[c] = make([]float64, len(dataset))
	}
	for k, w := range dataset {
		var proj mat.Dense
		proj.Mul(v.T(), w)
		for c := 0; c < channels; c++ {
			row := proj.RawRowView(c)
			rms[c][k] = math.Sqrt(floats.Dot(row, row) / float64(len(row)))
		}
	}
	fitOpts := DefaultFitOptions()
	fits := make([]ComponentFit, channels)
	limits := make([]float64, channels)
	for c := range fits {
		mu, sigma, err := FitDistribution(rms[c], fitOpts)
		if err != nil {
			return asrErrorf(opTrain, err)
		}
		limits[c] = mu + rejectionLimit*sigma
		fits[c] = ComponentFit{RMS: rms[c], Mu: mu, Sigma: sigma, Limit: limits[c]}
	}

	// Stage 4: commit.
	threshold := mat.NewDense(channels, channels, nil)
	threshold.Mul(mat.NewDiagDense(channels, limits), v.T())

	a.median = median
	a.mixing = mixing
	a.threshold = threshold
	a.reconstruction = matrix.Identity(channels)
	a.covariance = matrix.Clone(median)
	a.calibration = fits
	a.trivial = true

	a.opts.Logger().WithFields(logrus.Fields{
		"metric":   a.metric.String(),
		"windows":  len(dataset),
		"channels": channels,
	}).Debug("asr trained")

	return nil
}

// validateWindows returns the shared channel count of dataset.
func validateWindows(dataset []*mat.Dense) (int, error) {
	channels, _ := matrix.Dims(dataset[0])
	for i, w := range dataset {
		r, c := matrix.Dims(w)
		if r == 0 || c < 2 {
			return 0, fmt.Errorf("window %d: %w", i, ErrEmptyWindow)
		}
		if r != channels {
			return 0, fmt.Errorf("window %d: %w", i, matrix.ErrDimensionMismatch)
		}
	}

	return channels, nil
}

// Process cleans one signal window.
//
// Implementation:
//   - Stage 1: C = covariance of the window, (λ, V) its ascending eigen-decomposition.
//   - Stage 2: component i is corrupted when λ_i ≥ Σ_k (threshold·V)_{k,i}².
//   - Stage 3: without corrupted component, or when the corrupted fraction
//     exceeds MaxChannel, R = I and the window is returned unchanged (trivial).
//   - Stage 4: otherwise R = mixing·pinv(diag(keep)·Vᵀ·mixing)·Vᵀ and the
//     output is R·in.
//
// The last R and C are kept (Reconstruction, Covariance). On error the model
// is unchanged.
//
// Errors: ErrNotTrained, ErrEmptyWindow, matrix.ErrDimensionMismatch, and the
// errors of the eigen-decomposition and pseudo-inverse.
func (a *ASR) Process(in mat.Matrix) (*mat.Dense, error) {
	if a.median == nil {
		return nil, asrErrorf(opProcess, ErrNotTrained)
	}
	r, c := matrix.Dims(in)
	if r == 0 || c < 2 {
		return nil, asrErrorf(opProcess, ErrEmptyWindow)
	}
	n := a.Channels()
	if r != n {
		return nil, asrErrorf(opProcess, matrix.ErrDimensionMismatch)
	}

	// Stage 1.
	cov, err := covariance.Estimate(in, covariance.COV, covariance.None)
	if err != nil {
		return nil, asrErrorf(opProcess, err)
	}
	values, v, err := matrix.SortedEigen(cov)
	if err != nil {
		return nil, asrErrorf(opProcess, err)
	}

	// Stage 2.
	var tv mat.Dense
	tv.Mul(a.threshold, v)
	keep := make([]float64, n)
	corrupted := 0
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Col(col, i, &tv)
		if values[i] >= floats.Dot(col, col) {
			corrupted++
			continue
		}
		keep[i] = 1
	}

	// Stage 3.
	if corrupted == 0 || float64(corrupted)/float64(n) > a.maxChannel {
		a.reconstruction = matrix.Identity(n)
		a.covariance = cov
		a.trivial = true
		return mat.DenseCopyOf(in), nil
	}

	// Stage 4.
	var kept, projected mat.Dense
	kept.Mul(mat.NewDiagDense(n, keep), v.T())
	projected.Mul(&kept, a.mixing)
	pinv, err := matrix.PseudoInverse(&projected)
	if err != nil {
		return nil, asrErrorf(opProcess, err)
	}
	rec := mat.NewDense(n, n, nil)
	rec.Product(a.mixing, pinv, v.T())
	out := mat.NewDense(n, c, nil)
	out.Mul(rec, in)

	a.reconstruction = rec
	a.covariance = cov
	a.trivial = false

	a.opts.Logger().WithFields(logrus.Fields{
		"corrupted": corrupted,
		"channels":  n,
	}).Debug("asr reconstructed window")

	return out, nil
}

// SetMatrices installs a precomputed model, bypassing Train. median and
// threshold must be square with the same size; reconstruction and covariance
// may be empty, in which case the identity and the median are used. The
// trivial flag is set and the calibration report cleared.
//
// Errors: matrix.ErrEmpty, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// matrix.ErrNotPositiveDefinite (median).
func (a *ASR) SetMatrices(median, threshold, reconstruction, cov mat.Matrix) error {
	if err := matrix.ValidateSquare(median); err != nil {
		return asrErrorf(opSetMatrices, err)
	}
	if err := matrix.ValidateSameShape(median, threshold); err != nil {
		return asrErrorf(opSetMatrices, err)
	}
	for _, opt := range []mat.Matrix{reconstruction, cov} {
		if !matrix.IsEmpty(opt) && !matrix.SameSize(median, opt) {
			return asrErrorf(opSetMatrices, matrix.ErrDimensionMismatch)
		}
	}
	mixing, err := matrix.Sqrt(median)
	if err != nil {
		return asrErrorf(opSetMatrices, err)
	}

	n, _ := median.Dims()
	a.median = mat.DenseCopyOf(median)
	a.mixing = mixing
	a.threshold = mat.DenseCopyOf(threshold)
	a.reconstruction = matrix.Identity(n)
	if !matrix.IsEmpty(reconstruction) {
		a.reconstruction = mat.DenseCopyOf(reconstruction)
	}
	a.covariance = mat.DenseCopyOf(median)
	if !matrix.IsEmpty(cov) {
		a.covariance = mat.DenseCopyOf(cov)
	}
	a.calibration = nil
	a.trivial = true

	return nil
}

// Metric returns the metric used for the median.
func (a *ASR) Metric() metric.Metric { return a.metric }

// Channels returns the channel count of the trained model (0 when untrained).
func (a *ASR) Channels() int {
	n, _ := matrix.Dims(a.median)
	return n
}

// MaxChannel returns the largest reconstructible fraction of components.
func (a *ASR) MaxChannel() float64 { return a.maxChannel }

// Trivial reports whether the last Process returned its input unchanged.
func (a *ASR) Trivial() bool { return a.trivial }

// Median returns a copy of the median covariance (nil when untrained).
func (a *ASR) Median() *mat.Dense { return matrix.Clone(a.median) }

// Threshold returns a copy of the threshold matrix.
func (a *ASR) Threshold() *mat.Dense { return matrix.Clone(a.threshold) }

// Reconstruction returns a copy of the last reconstruction matrix.
func (a *ASR) Reconstruction() *mat.Dense { return matrix.Clone(a.reconstruction) }

// Covariance returns a copy of the last window covariance.
func (a *ASR) Covariance() *mat.Dense { return matrix.Clone(a.covariance) }

// Calibration returns a copy of the per-component report of the last Train,
// ordered by ascending eigenvalue of the median. It is nil after SetMatrices.
func (a *ASR) Calibration() []ComponentFit {
	if a.calibration == nil {
		return nil
	}
	out := make([]ComponentFit, len(a.calibration))
	for i, f := range a.calibration {
		f.RMS = append([]float64(nil), f.RMS...)
		out[i] = f
	}

	return out
}

// Equal reports whether a and b hold the same configuration and matrices,
// within precision (see matrix.Equal). Two nil models are equal.
func Equal(a, b *ASR, precision float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.metric == b.metric &&
		math.Abs(a.maxChannel-b.maxChannel) <= precision &&
		a.trivial == b.trivial &&
		matrix.Equal(a.median, b.median, precision) &&
		matrix.Equal(a.threshold, b.threshold, precision) &&
		matrix.Equal(a.reconstruction, b.reconstruction, precision) &&
		matrix.Equal(a.covariance, b.covariance, precision)
}

// String renders the model for diagnostics.
func (a *ASR) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Metric: %s\n", a.metric)
	fmt.Fprintf(&sb, "Channels: %d\n", a.Channels())
	fmt.Fprintf(&sb, "Max channel fraction: %g\n", a.maxChannel)
	fmt.Fprintf(&sb, "Trivial: %t\n", a.trivial)
	for _, m := range []struct {
		name string
		m    *mat.Dense
	}{
		{"Median", a.median},
		{"Threshold", a.threshold},
		{"Reconstruction", a.reconstruction},
		{"Covariance", a.covariance},
	} {
		sb.WriteString(matrix.Format(m.name, m.m))
		sb.WriteByte('\n')
	}

	return sb.String()
}
