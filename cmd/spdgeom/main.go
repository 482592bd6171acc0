// SPDX-License-Identifier: MIT

// Command spdgeom exposes the covariance geometry toolkit on the command line.
// Run "spdgeom --help" for the subcommands.
package main

import (
	"os"

	"github.com/katalvlaran/spdgeom/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
