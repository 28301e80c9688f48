// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/rqa/config"
	"github.com/katalvlaran/rqa/series"
)

// loadConfig returns the configured analysis, or defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadSeries reads a CSV from path ("-" reads stdin) and optionally keeps a
// single column.
func loadSeries(path string, stdin io.Reader, column int) (series.Series, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return series.Series{}, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	s, err := series.ReadCSV(r)
	if err != nil {
		return series.Series{}, err
	}
	if column < 0 {
		return s, nil
	}
	return s.Column(column)
}
