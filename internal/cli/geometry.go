// SPDX-License-Identifier: MIT
// Package cli: mean, distance, geodesic and covariance subcommands.

package cli

import (
	"fmt"

	"github.com/katalvlaran/spdgeom/covariance"
	"github.com/katalvlaran/spdgeom/dataset"
	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func (a *app) meanCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "mean <dataset.yaml>",
		Short:   "Mean of every matrix of a dataset",
		Example: `spdgeom mean --metric logeuclidean trials.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			m := a.metric(d)
			mean, err := geometry.Mean(d.Flat(), m, a.options()...)
			if err != nil {
				return err
			}
			res, err := dataset.New([]*mat.Dense{mean}, nil)
			if err != nil {
				return err
			}
			res.SetMetric(m)

			return a.writeDataset(cmd, output, res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output dataset (default stdout)")

	return cmd
}

func (a *app) distanceCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "distance <dataset.yaml>",
		Short: "Pairwise distance matrix of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			m := a.metric(d)
			set := d.Flat()
			dist := mat.NewDense(len(set), len(set), nil)
			for i := range set {
				for j := i + 1; j < len(set); j++ {
					v, err := geometry.Distance(set[i], set[j], m, a.options()...)
					if err != nil {
						return fmt.Errorf("distance(%d, %d): %w", i, j, err)
					}
					dist.Set(i, j, v)
					dist.Set(j, i, v)
				}
			}
			res, err := dataset.New([]*mat.Dense{dist}, nil)
			if err != nil {
				return err
			}
			res.SetMetric(m)

			return a.writeDataset(cmd, output, res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output dataset (default stdout)")

	return cmd
}

func (a *app) geodesicCmd() *cobra.Command {
	var (
		output string
		alpha  float64
	)
	cmd := &cobra.Command{
		Use:   "geodesic <dataset.yaml>",
		Short: "Point at position alpha on the geodesic between the first two matrices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			set := d.Flat()
			if len(set) < 2 {
				return fmt.Errorf("%s: need two matrices, got %d", args[0], len(set))
			}
			m := a.metric(d)
			g, err := geometry.Geodesic(set[0], set[1], alpha, m, a.options()...)
			if err != nil {
				return err
			}
			res, err := dataset.New([]*mat.Dense{g}, nil)
			if err != nil {
				return err
			}
			res.SetMetric(m)

			return a.writeDataset(cmd, output, res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output dataset (default stdout)")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.5, "position on the geodesic, in [0,1]")

	return cmd
}

func (a *app) covarianceCmd() *cobra.Command {
	var output, estimator, standardization string
	cmd := &cobra.Command{
		Use:   "covariance <windows.yaml>",
		Short: "Covariance matrix of every channels×samples window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := covariance.ParseEstimator(estimator)
			if err != nil {
				return err
			}
			std, err := covariance.ParseStandardization(standardization)
			if err != nil {
				return err
			}
			d, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			res, err := d.Map(func(w *mat.Dense) (*mat.Dense, error) {
				return covariance.Estimate(w, est, std)
			})
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"estimator":       est,
				"standardization": std,
				"windows":         res.Len(),
			}).Debug("covariances estimated")

			return a.writeDataset(cmd, output, res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output dataset (default stdout)")
	cmd.Flags().StringVar(&estimator, "estimator", covariance.COV.String(), "estimator: COV, SCM, LWF, OAS, MCD, COR, IDE")
	cmd.Flags().StringVar(&standardization, "standardization", covariance.None.String(), "row preprocessing: None, Center, StandardScale")

	return cmd
}
