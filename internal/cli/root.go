// SPDX-License-Identifier: MIT
// Package cli: root command, persistent flags and shared helpers.

package cli

import (
	"github.com/katalvlaran/spdgeom/dataset"
	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration into the subcommands.
type app struct {
	cfg        Config
	configPath string
	metricFlag bool
	log        *logrus.Logger
}

// New returns the spdgeom root command.
func New() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: logrus.New()}
	cmd := &cobra.Command{
		Use:   "spdgeom",
		Short: "Riemannian geometry of covariance matrices",
		Long: `Means, distances and geodesics of SPD matrices, bias whitening,
minimum distance to mean classification and artifact subspace reconstruction.
Matrix sets are read from and written to YAML datasets; trained models are
stored as XML. Synthetic datasets come from the generate subcommands.
`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	d := DefaultConfig()
	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.String("log-level", d.LogLevel, "log level: panic, fatal, error, warn, info, debug, trace")
	f.Float64("epsilon", d.Epsilon, "convergence tolerance of the iterative means")
	f.Int("max-iterations", d.MaxIterations, "iteration cap of the iterative means")
	f.Bool("strict", d.Strict, "fail on metrics without a genuine implementation")
	f.String("metric", d.Metric, "metric, unless the input dataset names one")

	cmd.AddCommand(
		a.meanCmd(),
		a.distanceCmd(),
		a.geodesicCmd(),
		a.covarianceCmd(),
		a.biasCmd(),
		a.mdmCmd(),
		a.asrCmd(),
		a.generateCmd(),
	)

	return cmd
}

// setup loads the config file, applies the flags that were set and
// configures the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	f := cmd.Flags()
	var err error
	if f.Changed("log-level") {
		a.cfg.LogLevel, err = f.GetString("log-level")
	}
	if err == nil && f.Changed("epsilon") {
		a.cfg.Epsilon, err = f.GetFloat64("epsilon")
	}
	if err == nil && f.Changed("max-iterations") {
		a.cfg.MaxIterations, err = f.GetInt("max-iterations")
	}
	if err == nil && f.Changed("strict") {
		a.cfg.Strict, err = f.GetBool("strict")
	}
	if err == nil && f.Changed("metric") {
		a.cfg.Metric, err = f.GetString("metric")
		a.metricFlag = true
	}
	if err != nil {
		return err
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	level, _ := logrus.ParseLevel(a.cfg.LogLevel)
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return nil
}

func (a *app) options() []geometry.Option { return a.cfg.options(a.log) }

// metric picks the --metric flag, then the metric named by d, then the
// configured one.
func (a *app) metric(d *dataset.Dataset) metric.Metric {
	if !a.metricFlag && d != nil {
		if m, ok := d.Metric(); ok {
			return m
		}
	}

	return metric.Parse(a.cfg.Metric)
}

// writeDataset encodes d to path, or to the command output when path is empty.
func (a *app) writeDataset(cmd *cobra.Command, path string, d *dataset.Dataset) error {
	if path == "" {
		return dataset.Write(cmd.OutOrStdout(), d)
	}
	if err := dataset.WriteFile(path, d); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"path": path, "matrices": d.Len()}).Info("dataset written")

	return nil
}
