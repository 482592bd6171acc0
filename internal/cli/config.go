// SPDX-License-Identifier: MIT
// Package cli: YAML configuration shared by every subcommand.

package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/spdgeom/geometry"
	"github.com/katalvlaran/spdgeom/metric"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config holds the settings a --config file may provide. Command-line flags
// override file values.
type Config struct {
	LogLevel      string  `yaml:"log-level"`
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"max-iterations"`
	Strict        bool    `yaml:"strict"`
	Metric        string  `yaml:"metric"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:      logrus.InfoLevel.String(),
		Epsilon:       geometry.DefaultEpsilon,
		MaxIterations: geometry.DefaultMaxIterations,
		Strict:        geometry.DefaultStrictMetrics,
		Metric:        metric.Riemann.String(),
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig and validates
// the result. Unknown keys are rejected; an empty file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
//
// Errors: ErrInvalidConfig, metric.ErrUnknownMetric.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 1) {
		return fmt.Errorf("%w: epsilon %g must be finite and > 0", ErrInvalidConfig, c.Epsilon)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max-iterations %d must be ≥ 1", ErrInvalidConfig, c.MaxIterations)
	}
	if _, err := metric.ParseStrict(c.Metric); err != nil {
		return err
	}

	return nil
}

// options translates the numeric settings into geometry options.
func (c Config) options(logger logrus.FieldLogger) []geometry.Option {
	opts := []geometry.Option{
		geometry.WithEpsilon(c.Epsilon),
		geometry.WithMaxIterations(c.MaxIterations),
		geometry.WithLogger(logger),
	}
	if c.Strict {
		opts = append(opts, geometry.WithStrictMetrics())
	}

	return opts
}
