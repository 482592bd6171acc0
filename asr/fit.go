// SPDX-License-Identifier: MIT
// Package asr: robust fit of a generalized Gaussian to the clean part of a
// sample distribution.
//
// FitDistribution estimates the location and scale of the "clean" mode of a
// set of amplitudes contaminated by large outliers. It searches a grid of
// (lower bound, window width, shape β) triples over the sorted values and keeps
// the one whose log histogram is closest, in Kullback-Leibler divergence, to a
// truncated generalized Gaussian of shape β.

package asr

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
)

// Fit defaults.
const (
	DefaultBetaMin     = 1.7
	DefaultBetaMax     = 3.5
	DefaultBetaStep    = 0.15
	DefaultMinQuantile = 0.022
	DefaultMaxQuantile = 0.6
	DefaultMinClean    = 0.25
	DefaultMaxDropout  = 0.1
	DefaultStepBound   = 0.01
	DefaultStepScale   = 0.01
)

// Step limits accepted for StepBound and StepScale.
const (
	minFitStep = 1e-4
	maxFitStep = 0.1
)

// histogramFloor keeps empty bins finite under the logarithm.
const histogramFloor = 0.01

// FitOptions parameterizes FitDistribution.
type FitOptions struct {
	// Betas lists the candidate shapes of the generalized Gaussian (> 0).
	Betas []float64

	// MinQuantile and MaxQuantile delimit the quantile window assumed clean,
	// 0 ≤ MinQuantile < MaxQuantile ≤ 1.
	MinQuantile float64
	MaxQuantile float64

	// MinClean is the smallest fraction of the quantile window that may be clean (≥ 0).
	MinClean float64

	// MaxDropout is the largest fraction of values that may be dropouts below
	// the lower quantile (≥ 0).
	MaxDropout float64

	// StepBound and StepScale are the grid steps, as fractions of the sample
	// count, for the lower bound and the width (in [1e-4, 0.1]).
	StepBound float64
	StepScale float64
}

// DefaultFitOptions returns the parameters used by ASR training.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Betas:       DoubleRange(DefaultBetaMin, DefaultBetaMax, DefaultBetaStep, true),
		MinQuantile: DefaultMinQuantile,
		MaxQuantile: DefaultMaxQuantile,
		MinClean:    DefaultMinClean,
		MaxDropout:  DefaultMaxDropout,
		StepBound:   DefaultStepBound,
		StepScale:   DefaultStepScale,
	}
}

// validate checks every field against its documented range. NaN fails all checks.
func (o FitOptions) validate() error {
	if len(o.Betas) == 0 {
		return ErrInvalidFitOptions
	}
	for _, b := range o.Betas {
		if !(b > 0) || math.IsInf(b, 1) {
			return ErrInvalidFitOptions
		}
	}
	switch {
	case !(o.MinQuantile >= 0 && o.MinQuantile <= 1),
		!(o.MaxQuantile >= 0 && o.MaxQuantile <= 1),
		!(o.MinQuantile < o.MaxQuantile),
		!(o.MinClean >= 0),
		!(o.MaxDropout >= 0),
		!(o.StepBound >= minFitStep && o.StepBound <= maxFitStep),
		!(o.StepScale >= minFitStep && o.StepScale <= maxFitStep):
		return ErrInvalidFitOptions
	}

	return nil
}

// FitDistribution estimates the mean mu and standard deviation sigma of the
// clean part of values.
//
// Implementation:
//   - Stage 1: for every β, the scale β/(2Γ(1/β)) and the standardized bounds
//     z = sign(q−½)·P⁻¹(1/β, sign(q−½)(2q−1))^{1/β} of both quantiles, with P⁻¹ the
//     inverse regularized lower incomplete gamma function.
//   - Stage 2: sort the values; build the width grid (descending) and the
//     bound grid with RoundIndexRange; each grid row is sorted[bound:bound+maxWidth]
//     shifted so that its first element is 0.
//   - Stage 3: for every width w, histogram each row prefix of length w into
//     round(3·log2(1+w/2)) bins; for every β compare the log histogram with the
//     binned reference density by KL divergence plus log(w); keep the minimum.
//   - Stage 4: α = grid[id][w−1]/(z₁−z₀), mu = first[id] − z₀·α,
//     sigma = α·sqrt(Γ(3/β)/Γ(1/β)).
//
// Errors:
//   - ErrInvalidFitOptions for out-of-range options.
//   - ErrInsufficientData when values are empty or the grid does not fit into them.
//
// Complexity:
//   - O(n log n) sorting plus O(|widths|·(|bounds|·n + |betas|·|bounds|·bins)).
//
// AI-Hints:
//   - Values are amplitudes (RMS per window); the result is used as a
//     threshold mu + k·sigma.
//   - The search is exhaustive and deterministic: equal inputs give equal outputs.
func FitDistribution(values []float64, o FitOptions) (mu, sigma float64, err error) {
	if err = o.validate(); err != nil {
		return 0, 0, asrErrorf(opFit, err)
	}
	if len(values) == 0 {
		return 0, 0, asrErrorf(opFit, ErrInsufficientData)
	}

	// Stage 1: reference shapes.
	nBeta := len(o.Betas)
	scales := make([]float64, nBeta)
	zBounds := make([][2]float64, nBeta)
	for i, beta := range o.Betas {
		scales[i] = beta / (2 * math.Gamma(1/beta))
		zBounds[i] = [2]float64{zBound(o.MinQuantile, 1/beta), zBound(o.MaxQuantile, 1/beta)}
	}

	// Stage 2: quantile grid.
	n := float64(len(values))
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	span := o.MaxQuantile - o.MinQuantile
	widths := RoundIndexRange(n*span*o.MinClean, n*span, n*o.StepScale, true, false)
	slices.Reverse(widths)
	bounds := RoundIndexRange(n*o.MinQuantile, n*(o.MinQuantile+o.MaxDropout), n*o.StepBound, true, false)
	if len(widths) == 0 || len(bounds) == 0 {
		return 0, 0, asrErrorf(opFit, ErrInsufficientData)
	}
	maxWidth := max(widths[0], widths[len(widths)-1])
	if maxWidth < 2 || bounds[len(bounds)-1]+maxWidth > len(sorted) {
		return 0, 0, asrErrorf(opFit, ErrInsufficientData)
	}

	grid := make([][]float64, len(bounds))
	firsts := make([]float64, len(bounds))
	for i, b := range bounds {
		row := slices.Clone(sorted[b : b+maxWidth])
		firsts[i] = row[0]
		floats.AddConst(-firsts[i], row)
		grid[i] = row
	}

	// Stage 3: exhaustive search.
	bestKL := math.MaxFloat64
	var bestBeta, bestID, bestWidth int
	for _, w := range widths {
		nbins := int(math.Round(3 * math.Log2(1+float64(w)/2)))
		if nbins == 0 {
			continue
		}
		hist := make([][]float64, len(grid))
		for i, row := range grid {
			counts := BinHist(row[:w], nbins)
			h := make([]float64, nbins)
			for j, c := range counts {
				h[j] = math.Log(float64(c) + histogramFloor)
			}
			hist[i] = h
		}

		for b, beta := range o.Betas {
			prob := referenceDensity(zBounds[b], beta, scales[b], nbins)
			for i := range hist {
				kl := math.Log(float64(w))
				for j, p := range prob {
					kl += p * (math.Log(p) - hist[i][j])
				}
				if kl < bestKL {
					bestKL, bestBeta, bestID, bestWidth = kl, b, i, w-1
				}
			}
		}
	}

	// Stage 4: back to the data scale.
	z := zBounds[bestBeta]
	beta := o.Betas[bestBeta]
	alpha := grid[bestID][bestWidth] / (z[1] - z[0])
	mu = firsts[bestID] - z[0]*alpha
	sigma = math.Sqrt(alpha * alpha * math.Gamma(3/beta) / math.Gamma(1/beta))

	return mu, sigma, nil
}

// zBound maps the quantile q to the standardized generalized Gaussian of
// exponent 1/invBeta.
func zBound(q, invBeta float64) float64 {
	s := sign(q - 0.5)
	if s == 0 {
		return 0
	}

	return s * math.Pow(mathext.GammaIncRegInv(invBeta, s*(2*q-1)), invBeta)
}

// referenceDensity bins the generalized Gaussian between z[0] and z[1] at the
// bin centers, normalized to a unit sum when the sum is not negligible.
func referenceDensity(z [2]float64, beta, scale float64, nbins int) []float64 {
	prob := make([]float64, nbins)
	for i := range prob {
		x := z[0] + (float64(i)+0.5)/float64(nbins)*(z[1]-z[0])
		prob[i] = math.Exp(-math.Pow(math.Abs(x), beta)) * scale
	}
	if sum := floats.Sum(prob); math.Abs(sum) > epsilon64 {
		floats.Scale(1/sum, prob)
	}

	return prob
}

// epsilon64 is the float64 machine epsilon.
const epsilon64 = 0x1p-52

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// rangeCount is the number of steps from begin to end, counting end itself
// when closed and the span is an exact multiple of step.
func rangeCount(begin, end, step float64, closed bool) int {
	if end < begin || !(step > 0) {
		return 0
	}
	size := (end - begin) / step
	if closed && math.Trunc(size) == size {
		size++
	}

	return int(math.Ceil(size))
}

// DoubleRange returns begin, begin+step, ... up to end (included when closed
// and reached exactly). Values accumulate step by step. An empty range or a
// non-positive step yields nil.
func DoubleRange(begin, end, step float64, closed bool) []float64 {
	count := rangeCount(begin, end, step, closed)
	if count == 0 {
		return nil
	}
	out := make([]float64, count)
	v := begin
	for i := range out {
		out[i] = v
		v += step
	}

	return out
}

// RoundIndexRange is DoubleRange with every value rounded to the nearest
// index. With unique, consecutive duplicates are collapsed.
func RoundIndexRange(begin, end, step float64, closed, unique bool) []int {
	values := DoubleRange(begin, end, step, closed)
	if values == nil {
		return nil
	}
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(math.Round(v))
	}
	if unique {
		out = slices.Compact(out)
	}

	return out
}

// BinHist counts the values of data (expected in [0, max]) into n equal bins
// spanning [0, max(data)]; the maximum itself falls in the last bin. An empty
// data set or a maximum of zero gives all-zero counts.
func BinHist(data []float64, n int) []int {
	out := make([]int, max(n, 0))
	if len(data) == 0 || n <= 0 {
		return out
	}
	top := floats.Max(data)
	if math.Abs(top) <= epsilon64 {
		return out
	}
	coef := float64(n) / top
	for _, x := range data {
		bin := int(math.Floor(x * coef))
		switch {
		case bin >= 0 && bin < n:
			out[bin]++
		case bin == n:
			out[n-1]++
		}
	}

	return out
}
