// SPDX-License-Identifier: MIT
// Package classifier: minimum distance to mean (MDM) classification of SPD
// matrices, with optional online adaptation of the class means.

package classifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/matrix"
	"github.com/katalvlaran/spdgeom/metric"
	"gonum.org/v1/gonum/mat"
)

// NoClass marks an unset class id (no expected class, or no prediction).
const NoClass = -1

// MDMType is the classifier type name used by persisted headers.
const MDMType = "MDM"

// Result is the outcome of one classification.
type Result struct {
	ClassID       int       // argmin of Distances; NoClass when unset
	Distances     []float64 // distance of the sample to every class mean
	Probabilities []float64 // distMin/d_k normalized to a unit sum
}

// MDM assigns a sample to the class whose mean is nearest under the metric.
type MDM struct {
	metric metric.Metric
	opts   []geometry.Option
	means  []*mat.Dense
	trials []int
}

// NewMDM returns an untrained classifier with classCount empty classes
// (negative counts are treated as zero). opts configure the means, distances
// and geodesics it runs.
func NewMDM(classCount int, m metric.Metric, opts ...geometry.Option) *MDM {
	c := &MDM{metric: m, opts: opts}
	c.resize(max(classCount, 0))

	return c
}

func (c *MDM) resize(n int) {
	if n == len(c.means) {
		return
	}
	means := make([]*mat.Dense, n)
	trials := make([]int, n)
	copy(means, c.means)
	copy(trials, c.trials)
	c.means, c.trials = means, trials
}

// SetClassCount resizes the classifier, preserving the existing classes when
// growing. Unchanged counts are a no-op.
//
// Errors: ErrInvalidClassCount for n < 0.
func (c *MDM) SetClassCount(n int) error {
	if n < 0 {
		return classifierErrorf(opMDMSetCount, ErrInvalidClassCount)
	}
	c.resize(n)

	return nil
}

// Train computes one mean per class; the class count becomes len(dataset).
// Nothing is modified unless every class mean succeeds.
//
// Errors: geometry.ErrEmptyDataset (no class or an empty class) and the errors
// of geometry.Mean.
func (c *MDM) Train(dataset [][]*mat.Dense) error {
	if len(dataset) == 0 {
		return classifierErrorf(opMDMTrain, geometry.ErrEmptyDataset)
	}
	means := make([]*mat.Dense, len(dataset))
	trials := make([]int, len(dataset))
	for k, class := range dataset {
		mean, err := geometry.Mean(class, c.metric, c.opts...)
		if err != nil {
			return classifierErrorf(opMDMTrain, fmt.Errorf("class %d: %w", k, err))
		}
		means[k], trials[k] = mean, len(class)
	}
	c.means, c.trials = means, trials

	return nil
}

// Classify returns the class nearest to sample and, depending on adaptation,
// moves a class mean toward the sample along the geodesic by 1/trials.
//
// Implementation:
//   - Stage 1: sample must be square; every class needs a mean.
//   - Stage 2: distances to every mean; ClassID is the first minimum.
//   - Stage 3: probabilities p_k ∝ distMin/d_k; when distMin is 0 the classes
//     at distance 0 share the mass equally.
//   - Stage 4: None returns; Supervised adapts realClassID; Unsupervised adapts
//     the predicted class.
//
// Errors:
//   - matrix.ErrEmpty, matrix.ErrNonSquare, ErrNotTrained, and the errors of
//     geometry.Distance (no Result).
//   - ErrInvalidClass (id out of range), ErrUnknownAdaptation or a Geodesic
//     error: returned together with the filled Result; the means are unchanged.
//
// Complexity: O(K·n³) for K classes of n×n means.
func (c *MDM) Classify(sample mat.Matrix, adaptation Adaptation, realClassID int) (Result, error) {
	res := Result{ClassID: NoClass}
	if err := matrix.ValidateSquare(sample); err != nil {
		return res, classifierErrorf(opMDMClassify, err)
	}
	if len(c.means) == 0 {
		return res, classifierErrorf(opMDMClassify, ErrNotTrained)
	}
	for _, m := range c.means {
		if m == nil {
			return res, classifierErrorf(opMDMClassify, ErrNotTrained)
		}
	}

	// Stage 2.
	distances := make([]float64, len(c.means))
	best := NoClass
	distMin := math.MaxFloat64
	for k, mean := range c.means {
		d, err := geometry.Distance(sample, mean, c.metric, c.opts...)
		if err != nil {
			return res, classifierErrorf(opMDMClassify, err)
		}
		distances[k] = d
		if d < distMin {
			best, distMin = k, d
		}
	}
	res.ClassID = best
	res.Distances = distances
	res.Probabilities = probabilities(distances, distMin)

	// Stage 4.
	id := NoClass
	switch adaptation {
	case None:
		return res, nil
	case Supervised:
		id = realClassID
	case Unsupervised:
		id = best
	default:
		return res, classifierErrorf(opMDMClassify, ErrUnknownAdaptation)
	}
	if id < 0 || id >= len(c.means) {
		return res, classifierErrorf(opMDMClassify, ErrInvalidClass)
	}
	trials := c.trials[id] + 1
	next, err := geometry.Geodesic(c.means[id], sample, 1/float64(trials), c.metric, c.opts...)
	if err != nil {
		return res, classifierErrorf(opMDMClassify, err)
	}
	c.means[id], c.trials[id] = next, trials

	return res, nil
}

// probabilities spreads a unit mass as distMin/d_k.
func probabilities(distances []float64, distMin float64) []float64 {
	out := make([]float64, len(distances))
	if distMin == 0 {
		zeros := 0
		for _, d := range distances {
			if d == 0 {
				zeros++
			}
		}
		for k, d := range distances {
			if d == 0 {
				out[k] = 1 / float64(zeros)
			}
		}
		return out
	}
	sum := 0.0
	for k, d := range distances {
		out[k] = distMin / d
		sum += out[k]
	}
	for k := range out {
		out[k] /= sum
	}

	return out
}

// SetMeans installs class means and trial counts, as a loader does. The
// class count becomes len(means).
//
// Errors: ErrInvalidClassCount (length mismatch or negative trials),
// matrix.ErrEmpty, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func (c *MDM) SetMeans(means []*mat.Dense, trials []int) error {
	if len(means) != len(trials) {
		return classifierErrorf(opMDMSetMeans, ErrInvalidClassCount)
	}
	for _, t := range trials {
		if t < 0 {
			return classifierErrorf(opMDMSetMeans, ErrInvalidClassCount)
		}
	}
	if len(means) > 0 {
		if err := matrix.ValidateSet(means, true); err != nil {
			return classifierErrorf(opMDMSetMeans, err)
		}
	}
	copied := make([]*mat.Dense, len(means))
	for k, m := range means {
		copied[k] = mat.DenseCopyOf(m)
	}
	c.means, c.trials = copied, append([]int(nil), trials...)

	return nil
}

// Metric returns the classification metric.
func (c *MDM) Metric() metric.Metric { return c.metric }

// SetMetric changes the classification metric; the means are kept.
func (c *MDM) SetMetric(m metric.Metric) { c.metric = m }

// ClassCount returns the number of classes.
func (c *MDM) ClassCount() int { return len(c.means) }

// Means returns copies of the class means (nil entries for untrained classes).
func (c *MDM) Means() []*mat.Dense {
	out := make([]*mat.Dense, len(c.means))
	for k, m := range c.means {
		out[k] = matrix.Clone(m)
	}

	return out
}

// Trials returns a copy of the per-class trial counts.
func (c *MDM) Trials() []int { return append([]int(nil), c.trials...) }

// EqualMDM reports whether a and b share metric, class count, trial counts
// and means (within precision, see matrix.Equal). Two nil values are equal.
func EqualMDM(a, b *MDM, precision float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.metric != b.metric || len(a.means) != len(b.means) {
		return false
	}
	for k := range a.means {
		if a.trials[k] != b.trials[k] || !matrix.Equal(a.means[k], b.means[k], precision) {
			return false
		}
	}

	return true
}

// String renders the classifier for diagnostics.
func (c *MDM) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Classifier\n", MDMType)
	fmt.Fprintf(&sb, "Metric: %s\n", c.metric)
	fmt.Fprintf(&sb, "Number of classes: %d\n", len(c.means))
	for k, m := range c.means {
		name := fmt.Sprintf("Mean of class %d (%d trials)", k, c.trials[k])
		if m == nil {
			sb.WriteString(name + ": not computed\n")
			continue
		}
		sb.WriteString(matrix.Format(name, m))
		sb.WriteByte('\n')
	}

	return sb.String()
}
