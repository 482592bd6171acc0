// SPDX-License-Identifier: MIT
// Package cli: bias subcommands.

package cli

import (
	"github.com/katalvlaran/spdgeom/classifier"
	"github.com/katalvlaran/spdgeom/dataset"
	"github.com/katalvlaran/spdgeom/xmlstore"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func (a *app) biasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bias",
		Short: "Compute, update and apply a whitening bias",
	}
	cmd.AddCommand(a.biasComputeCmd(), a.biasUpdateCmd(), a.biasApplyCmd())

	return cmd
}

func (a *app) biasComputeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "compute <dataset.yaml>",
		Short:   "Set the bias to the mean of a calibration dataset",
		Example: `spdgeom bias compute -o bias.xml calibration.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			b := classifier.NewBias(a.options()...)
			if err = b.Compute(d.Flat(), a.metric(d)); err != nil {
				return err
			}
			if err = xmlstore.SaveBiasFile(output, b); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"path": output, "matrices": d.Len()}).Info("bias computed")

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "bias XML file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *app) biasUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <bias.xml> <dataset.yaml>",
		Short: "Move a stored bias toward every matrix of a dataset, in order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := classifier.NewBias(a.options()...)
			if err := xmlstore.LoadBiasFile(args[0], b); err != nil {
				return err
			}
			d, err := dataset.LoadFile(args[1])
			if err != nil {
				return err
			}
			m := a.metric(d)
			for _, sample := range d.Flat() {
				if err = b.Update(sample, m); err != nil {
					return err
				}
			}
			if err = xmlstore.SaveBiasFile(args[0], b); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"path": args[0], "updates": b.Count()}).Info("bias updated")

			return nil
		},
	}

	return cmd
}

func (a *app) biasApplyCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "apply <bias.xml> <dataset.yaml>",
		Short: "Whiten every matrix of a dataset with a stored bias",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := classifier.NewBias(a.options()...)
			if err := xmlstore.LoadBiasFile(args[0], b); err != nil {
				return err
			}
			d, err := dataset.LoadFile(args[1])
			if err != nil {
				return err
			}
			res, err := d.Map(func(m *mat.Dense) (*mat.Dense, error) { return b.Apply(m) })
			if err != nil {
				return err
			}

			return a.writeDataset(cmd, output, res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output dataset (default stdout)")

	return cmd
}
