// SPDX-License-Identifier: MIT

// Package cli implements the spdgeom command: a cobra command tree over the
// geometry, covariance, classifier and asr packages, reading YAML datasets
// (package dataset) and storing trained models as XML (package xmlstore).
// The generate subcommands write synthetic datasets drawn by package builder.
//
// Configuration is resolved in three layers: library defaults, an optional
// YAML file given with --config, then explicitly set flags. Logs go to the
// command's error stream through logrus.
package cli
