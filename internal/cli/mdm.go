// SPDX-License-Identifier: MIT
// Package cli: MDM subcommands.

package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spdgeom/classifier"
	"github.com/katalvlaran/spdgeom/dataset"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/katalvlaran/spdgeom/xmlstore"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) mdmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdm",
		Short: "Train and run a minimum distance to mean classifier",
	}
	cmd.AddCommand(a.mdmTrainCmd(), a.mdmClassifyCmd())

	return cmd
}

func (a *app) mdmTrainCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "train <dataset.yaml>",
		Short:   "Train one class mean per class of a grouped or labelled dataset",
		Example: `spdgeom mdm train -o mdm.xml trials.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			classes, err := d.Grouped()
			if err != nil {
				return err
			}
			c := classifier.NewMDM(0, a.metric(d), a.options()...)
			if err = c.Train(classes); err != nil {
				return err
			}
			if err = xmlstore.SaveMDMFile(output, c); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"path":    output,
				"classes": c.ClassCount(),
				"metric":  c.Metric().String(),
			}).Info("classifier trained")

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "classifier XML file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *app) mdmClassifyCmd() *cobra.Command {
	var adaptation string
	var save bool
	cmd := &cobra.Command{
		Use:   "classify <mdm.xml> <dataset.yaml>",
		Short: "Classify every matrix of a dataset",
		Long: `Print one line per matrix: its index, the predicted class and the class
probabilities. Supervised adaptation needs a labelled or grouped dataset;
with --save the adapted means are written back to the classifier file.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapt, err := classifier.ParseAdaptation(adaptation)
			if err != nil {
				return err
			}
			c := classifier.NewMDM(0, metric.Riemann, a.options()...)
			if err = xmlstore.LoadMDMFile(args[0], c); err != nil {
				return err
			}
			d, err := dataset.LoadFile(args[1])
			if err != nil {
				return err
			}
			labels := d.Labels()
			if adapt == classifier.Supervised && labels == nil {
				return fmt.Errorf("%s: supervised adaptation needs labels", args[1])
			}

			correct := 0
			out := cmd.OutOrStdout()
			for i, sample := range d.Flat() {
				want := classifier.NoClass
				if labels != nil {
					want = labels[i]
				}
				res, err := c.Classify(sample, adapt, want)
				if err != nil {
					return fmt.Errorf("matrix %d: %w", i, err)
				}
				if res.ClassID == want {
					correct++
				}
				probs := make([]string, len(res.Probabilities))
				for k, p := range res.Probabilities {
					probs[k] = fmt.Sprintf("%.4f", p)
				}
				fmt.Fprintf(out, "%d\t%d\t%s\n", i, res.ClassID, strings.Join(probs, " "))
			}
			if labels != nil {
				a.log.WithFields(logrus.Fields{
					"correct": correct,
					"total":   len(labels),
				}).Infof("accuracy %.2f%%", 100*float64(correct)/float64(len(labels)))
			}
			if save {
				return xmlstore.SaveMDMFile(args[0], c)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&adaptation, "adaptation", classifier.None.String(), "None, Supervised or Unsupervised")
	cmd.Flags().BoolVar(&save, "save", false, "write the adapted means back to the classifier file")

	return cmd
}
