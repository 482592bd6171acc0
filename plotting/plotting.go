// SPDX-License-Identifier: MIT
// Package plotting: ASR calibration charts.

package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/spdgeom/asr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, tiff
	_ "gonum.org/v1/plot/vg/vgsvg" // svg
)

var (
	// ErrNoData indicates a component fit without RMS values.
	ErrNoData = errors.New("plotting: no RMS values")

	// ErrUnsupportedFormat indicates an output path without a known image
	// extension.
	ErrUnsupportedFormat = errors.New("plotting: unsupported image format")
)

// Chart geometry.
const (
	DefaultBins   = 30
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	muColor    = color.RGBA{B: 200, A: 255}
	limitColor = color.RGBA{R: 200, A: 255}
)

// formats lists the extensions the blank-imported backends register.
var formats = map[string]bool{"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true, "svg": true}

// Calibration draws the density histogram of a component's RMS values with a
// solid line at the fitted μ and a dashed line at the rejection limit.
//
// Errors: ErrNoData, histogram and line construction errors.
func Calibration(fit asr.ComponentFit, title string) (*plot.Plot, error) {
	if len(fit.RMS) == 0 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "RMS"
	p.Y.Label.Text = "density"

	hist, err := plotter.NewHist(plotter.Values(fit.RMS), DefaultBins)
	if err != nil {
		return nil, fmt.Errorf("plotting: histogram: %w", err)
	}
	hist.Normalize(1)
	top := 0.0
	for _, b := range hist.Bins {
		top = max(top, b.Weight)
	}
	p.Add(hist)

	mu, err := vertical(fit.Mu, top, muColor, nil)
	if err != nil {
		return nil, err
	}
	limit, err := vertical(fit.Limit, top, limitColor, []vg.Length{vg.Points(6), vg.Points(3)})
	if err != nil {
		return nil, err
	}
	p.Add(mu, limit)
	p.Legend.Add(fmt.Sprintf("μ = %.3g", fit.Mu), mu)
	p.Legend.Add(fmt.Sprintf("limit = %.3g", fit.Limit), limit)
	p.Legend.Top = true

	return p, nil
}

func vertical(x, top float64, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return nil, fmt.Errorf("plotting: line: %w", err)
	}
	l.Color = c
	l.Width = vg.Points(1.5)
	l.Dashes = dashes

	return l, nil
}

// format returns the image format of path from its extension.
func format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return ext, nil
}

// SaveCalibration renders Calibration(fit, title) into path; the extension
// selects the format.
//
// Errors: ErrUnsupportedFormat, ErrNoData, write errors.
func SaveCalibration(path string, fit asr.ComponentFit, title string) error {
	if _, err := format(path); err != nil {
		return err
	}
	p, err := Calibration(fit, title)
	if err != nil {
		return err
	}

	return p.Save(DefaultWidth, DefaultHeight, path)
}

// SaveReport renders one calibration chart per component, stacked
// vertically, into a single image at path.
//
// Errors: ErrUnsupportedFormat, ErrNoData (no fits or a fit without values),
// write errors.
func SaveReport(path string, fits []asr.ComponentFit) (err error) {
	ext, err := format(path)
	if err != nil {
		return err
	}
	if len(fits) == 0 {
		return ErrNoData
	}
	plots := make([][]*plot.Plot, len(fits))
	for i, fit := range fits {
		p, err := Calibration(fit, fmt.Sprintf("component %d", i))
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	c, err := draw.NewFormattedCanvas(DefaultWidth, DefaultHeight*vg.Length(len(fits)), ext)
	if err != nil {
		return err
	}
	tiles := draw.Tiles{Rows: len(fits), Cols: 1, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(f)

	return err
}
