// SPDX-License-Identifier: MIT
// Package cli: synthetic dataset generation.

package cli

import (
	"fmt"

	"github.com/katalvlaran/spdgeom/builder"
	"github.com/katalvlaran/spdgeom/dataset"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write reproducible synthetic datasets",
	}
	cmd.AddCommand(a.generateSPDCmd(), a.generateWindowsCmd())

	return cmd
}

func (a *app) generateSPDCmd() *cobra.Command {
	var (
		output               string
		count, size, classes int
		seed                 int64
		spread               float64
	)
	cmd := &cobra.Command{
		Use:     "spd",
		Short:   "Random SPD matrices, optionally clustered into classes",
		Example: `spdgeom generate spd --classes 2 --count 20 --size 4 -o train.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				d   *dataset.Dataset
				err error
			)
			if classes > 0 && !(spread > 0) {
				return fmt.Errorf("%w: spread %g", ErrInvalidConfig, spread)
			}
			if classes > 0 {
				var sets [][]*mat.Dense
				sets, err = builder.ClassSets(classes, count, size, seed, builder.WithSpread(spread))
				if err != nil {
					return err
				}
				d, err = dataset.NewGrouped(sets)
			} else {
				var set []*mat.Dense
				set, err = builder.SPDSet(count, size, seed)
				if err != nil {
					return err
				}
				d, err = dataset.New(set, nil)
			}
			if err != nil {
				return err
			}
			if a.metricFlag {
				d.SetMetric(a.metric(nil))
			}

			return a.writeDataset(cmd, output, d)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output dataset (default stdout)")
	f.IntVar(&count, "count", 10, "matrices per class, or in total without --classes")
	f.IntVar(&size, "size", 3, "matrix dimension")
	f.IntVar(&classes, "classes", 0, "number of clustered classes")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.Float64Var(&spread, "spread", 0.1, "class dispersion")

	return cmd
}

func (a *app) generateWindowsCmd() *cobra.Command {
	var (
		output                    string
		count, channels, samples  int
		seed                      int64
		scales                    []float64
		burstChannel              int
		burstAmplitude            float64
		burstFrequency, burstDuty float64
	)
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "Gaussian channels×samples windows with optional artifact bursts",
		Example: `spdgeom generate windows --count 200 --scales 1,2,3,4 -o rest.yaml
spdgeom generate windows --count 20 --burst-amplitude 200 --seed 7 -o noisy.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkWindowFlags(scales, burstDuty); err != nil {
				return err
			}
			opts := []builder.BuilderOption{}
			if len(scales) > 0 {
				opts = append(opts, builder.WithChannelScales(scales...))
			}
			set, err := builder.Windows(count, channels, samples, seed, opts...)
			if err != nil {
				return err
			}
			if burstAmplitude > 0 {
				var burst []builder.BuilderOption
				if burstFrequency > 0 {
					burst = append(burst, builder.WithEnvelope(burstFrequency, burstDuty))
				}
				for i, w := range set {
					if err = builder.AddBurst(w, burstChannel, burstAmplitude, seed+int64(i)+1, burst...); err != nil {
						return err
					}
				}
			}
			d, err := dataset.New(set, nil)
			if err != nil {
				return err
			}

			return a.writeDataset(cmd, output, d)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output dataset (default stdout)")
	f.IntVar(&count, "count", 10, "number of windows")
	f.IntVar(&channels, "channels", 4, "channels per window")
	f.IntVar(&samples, "samples", 128, "samples per window")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.Float64SliceVar(&scales, "scales", nil, "per-channel standard deviations, cycled")
	f.IntVar(&burstChannel, "burst-channel", 0, "channel receiving the artifact burst")
	f.Float64Var(&burstAmplitude, "burst-amplitude", 0, "burst standard deviation; 0 disables the burst")
	f.Float64Var(&burstFrequency, "burst-frequency", 0, "gate frequency in cycles per window; 0 keeps the burst continuous")
	f.Float64Var(&burstDuty, "burst-duty", 0.5, "gate duty cycle")

	return cmd
}

// checkWindowFlags rejects the values the builder options panic on.
func checkWindowFlags(scales []float64, duty float64) error {
	for _, s := range scales {
		if !(s > 0) {
			return fmt.Errorf("%w: scale %g", ErrInvalidConfig, s)
		}
	}
	if !(duty >= 0 && duty <= 1) {
		return fmt.Errorf("%w: burst duty %g", ErrInvalidConfig, duty)
	}

	return nil
}
