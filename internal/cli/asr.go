// SPDX-License-Identifier: MIT
// Package cli: ASR subcommands.

package cli

import (
	"github.com/katalvlaran/spdgeom/asr"
	"github.com/katalvlaran/spdgeom/dataset"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/katalvlaran/spdgeom/plotting"
	"github.com/katalvlaran/spdgeom/xmlstore"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func (a *app) asrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asr",
		Short: "Artifact subspace reconstruction of channels×samples windows",
	}
	cmd.AddCommand(a.asrTrainCmd(), a.asrProcessCmd())

	return cmd
}

func (a *app) asrTrainCmd() *cobra.Command {
	var (
		output, report string
		limit, maxChan float64
	)
	cmd := &cobra.Command{
		Use:     "train <windows.yaml>",
		Short:   "Calibrate a model on clean windows",
		Example: `spdgeom asr train -o asr.xml --report calibration.png rest.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			model := asr.New(a.metric(d), a.options()...)
			if err = model.SetMaxChannel(maxChan); err != nil {
				return err
			}
			if err = model.Train(d.Flat(), limit); err != nil {
				return err
			}
			if err = xmlstore.SaveASRFile(output, model); err != nil {
				return err
			}
			if report != "" {
				if err = plotting.SaveReport(report, model.Calibration()); err != nil {
					return err
				}
			}
			a.log.WithFields(logrus.Fields{
				"path":     output,
				"windows":  d.Len(),
				"channels": model.Channels(),
			}).Info("asr trained")

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "model XML file")
	cmd.Flags().StringVar(&report, "report", "", "calibration chart (png, jpg, tiff or svg)")
	cmd.Flags().Float64Var(&limit, "rejection-limit", asr.DefaultRejectionLimit, "rejection limit in standard deviations")
	cmd.Flags().Float64Var(&maxChan, "max-channel", asr.DefaultMaxChannel, "largest fraction of components that may be reconstructed")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *app) asrProcessCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "process <asr.xml> <windows.yaml>",
		Short: "Reconstruct every window of a dataset with a stored model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := asr.New(metric.Riemann, a.options()...)
			if err := xmlstore.LoadASRFile(args[0], model); err != nil {
				return err
			}
			d, err := dataset.LoadFile(args[1])
			if err != nil {
				return err
			}
			reconstructed := 0
			res, err := d.Map(func(w *mat.Dense) (*mat.Dense, error) {
				out, err := model.Process(w)
				if err == nil && !model.Trivial() {
					reconstructed++
				}
				return out, err
			})
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"windows":       res.Len(),
				"reconstructed": reconstructed,
			}).Info("asr processed")

			return a.writeDataset(cmd, output, res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output dataset (default stdout)")

	return cmd
}
