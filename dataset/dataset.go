// SPDX-License-Identifier: MIT
// Package dataset: the Dataset type and its YAML codec.

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spdgeom/metric"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// document is the YAML layout; exactly one of Matrices or Classes is set.
type document struct {
	Metric   *metric.Metric  `yaml:"metric,omitempty"`
	Matrices [][][]float64   `yaml:"matrices,omitempty"`
	Classes  [][][][]float64 `yaml:"classes,omitempty"`
	Labels   []int           `yaml:"labels,omitempty"`
}

// Dataset is a set of matrices, either flat (optionally labelled) or grouped
// by class. The matrices are owned by the Dataset; accessors return them
// without copying.
type Dataset struct {
	metric    metric.Metric
	hasMetric bool
	matrices  []*mat.Dense
	classes   [][]*mat.Dense
	labels    []int
}

// New returns a flat dataset. labels may be nil; otherwise it needs one
// non-negative entry per matrix.
//
// Errors: ErrEmpty, ErrLabelMismatch.
func New(matrices []*mat.Dense, labels []int) (*Dataset, error) {
	if len(matrices) == 0 {
		return nil, datasetErrorf(opNew, ErrEmpty)
	}
	if err := checkLabels(labels, len(matrices)); err != nil {
		return nil, datasetErrorf(opNew, err)
	}

	return &Dataset{matrices: matrices, labels: labels}, nil
}

// NewGrouped returns a dataset grouped by class.
//
// Errors: ErrEmpty (no class or an empty class).
func NewGrouped(classes [][]*mat.Dense) (*Dataset, error) {
	if len(classes) == 0 {
		return nil, datasetErrorf(opNew, ErrEmpty)
	}
	for k, class := range classes {
		if len(class) == 0 {
			return nil, datasetErrorf(opNew, fmt.Errorf("%w: class %d", ErrEmpty, k))
		}
	}

	return &Dataset{classes: classes}, nil
}

func checkLabels(labels []int, n int) error {
	if labels == nil {
		return nil
	}
	if len(labels) != n {
		return fmt.Errorf("%w: %d labels for %d matrices", ErrLabelMismatch, len(labels), n)
	}
	for i, l := range labels {
		if l < 0 {
			return fmt.Errorf("%w: label %d is %d", ErrLabelMismatch, i, l)
		}
	}

	return nil
}

// SetMetric records the metric the data was produced with.
func (d *Dataset) SetMetric(m metric.Metric) {
	d.metric, d.hasMetric = m, true
}

// Metric returns the recorded metric and whether the document named one.
func (d *Dataset) Metric() (metric.Metric, bool) { return d.metric, d.hasMetric }

// Len returns the total number of matrices.
func (d *Dataset) Len() int { return len(d.Flat()) }

// Flat returns every matrix; grouped data is concatenated in class order.
func (d *Dataset) Flat() []*mat.Dense {
	if d.classes == nil {
		return d.matrices
	}
	var out []*mat.Dense
	for _, class := range d.classes {
		out = append(out, class...)
	}

	return out
}

// Grouped returns the matrices per class. Flat data is grouped by its labels:
// the class count is max(label)+1 and every class needs a member.
//
// Errors: ErrLabelMismatch (flat data without labels, or a class without
// members).
func (d *Dataset) Grouped() ([][]*mat.Dense, error) {
	if d.classes != nil {
		return d.classes, nil
	}
	if d.labels == nil {
		return nil, datasetErrorf(opGrouped, fmt.Errorf("%w: no labels", ErrLabelMismatch))
	}
	count := 0
	for _, l := range d.labels {
		count = max(count, l+1)
	}
	out := make([][]*mat.Dense, count)
	for i, l := range d.labels {
		out[l] = append(out[l], d.matrices[i])
	}
	for k, class := range out {
		if len(class) == 0 {
			return nil, datasetErrorf(opGrouped, fmt.Errorf("%w: class %d has no member", ErrLabelMismatch, k))
		}
	}

	return out, nil
}

// Labels returns one class id per matrix of Flat: the stored labels, or the
// class index of grouped data. Unlabelled flat data yields nil.
func (d *Dataset) Labels() []int {
	if d.classes == nil {
		return d.labels
	}
	var out []int
	for k, class := range d.classes {
		for range class {
			out = append(out, k)
		}
	}

	return out
}

// Map returns a dataset with the same layout, labels and metric whose
// matrices are f applied to d's matrices, in Flat order.
//
// Errors: the first error of f, annotated with the matrix index.
func (d *Dataset) Map(f func(*mat.Dense) (*mat.Dense, error)) (*Dataset, error) {
	out := &Dataset{metric: d.metric, hasMetric: d.hasMetric, labels: d.labels}
	i := 0
	apply := func(in []*mat.Dense) ([]*mat.Dense, error) {
		res := make([]*mat.Dense, len(in))
		for j, m := range in {
			r, err := f(m)
			if err != nil {
				return nil, fmt.Errorf("matrix %d: %w", i, err)
			}
			res[j] = r
			i++
		}

		return res, nil
	}
	if d.classes == nil {
		matrices, err := apply(d.matrices)
		if err != nil {
			return nil, err
		}
		out.matrices = matrices

		return out, nil
	}
	out.classes = make([][]*mat.Dense, len(d.classes))
	for k, class := range d.classes {
		res, err := apply(class)
		if err != nil {
			return nil, err
		}
		out.classes[k] = res
	}

	return out, nil
}

// Load decodes one YAML document. Unknown keys are rejected.
//
// Errors: ErrEmpty, ErrInvalidLayout, ErrRagged, ErrLabelMismatch,
// metric.ErrUnknownMetric, YAML syntax and type errors.
func Load(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, datasetErrorf(opLoad, ErrEmpty)
		}
		return nil, datasetErrorf(opLoad, err)
	}

	d, err := doc.build()
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}

	return d, nil
}

func (doc *document) build() (*Dataset, error) {
	if doc.Matrices != nil && doc.Classes != nil {
		return nil, ErrInvalidLayout
	}
	var (
		d   *Dataset
		err error
	)
	if doc.Classes != nil {
		if doc.Labels != nil {
			return nil, fmt.Errorf("%w: labels given with classes", ErrLabelMismatch)
		}
		classes := make([][]*mat.Dense, len(doc.Classes))
		for k, set := range doc.Classes {
			if classes[k], err = fromSet(set); err != nil {
				return nil, fmt.Errorf("class %d: %w", k, err)
			}
		}
		d, err = NewGrouped(classes)
	} else {
		var matrices []*mat.Dense
		if matrices, err = fromSet(doc.Matrices); err != nil {
			return nil, err
		}
		d, err = New(matrices, doc.Labels)
	}
	if err != nil {
		return nil, err
	}
	if doc.Metric != nil {
		d.SetMetric(*doc.Metric)
	}

	return d, nil
}

// LoadFile decodes the YAML document at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Write encodes d as YAML, keeping its layout (flat or grouped).
//
// Errors: metric.ErrUnknownMetric, write errors.
func Write(w io.Writer, d *Dataset) error {
	doc := document{Labels: d.labels}
	if d.hasMetric {
		m := d.metric
		doc.Metric = &m
	}
	if d.classes != nil {
		doc.Classes = make([][][][]float64, len(d.classes))
		for k, class := range d.classes {
			doc.Classes[k] = toSet(class)
		}
	} else {
		doc.Matrices = toSet(d.matrices)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return datasetErrorf(opWrite, err)
	}
	if err := enc.Close(); err != nil {
		return datasetErrorf(opWrite, err)
	}

	return nil
}

// WriteFile encodes d into path, truncating an existing file.
func WriteFile(path string, d *Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, d)
}
