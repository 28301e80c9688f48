// SPDX-License-Identifier: MIT

// Command rqa computes recurrence quantification measures of CSV time series.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rqa/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rqa:", err)
		os.Exit(1)
	}
}
