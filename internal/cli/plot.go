// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rqa/measure"
)

// PlotResult is the JSON shape of the plot command.
type PlotResult struct {
	Rows           int      `json:"rows"`
	Cols           int      `json:"cols"`
	RecurrenceRate float64  `json:"recurrence_rate"`
	Plot           []string `json:"plot"`
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	var column int

	cmd := &cobra.Command{
		Use:   "plot <series.csv>",
		Short: "Print the recurrence plot as rows of '.' and '#'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(rootOpts, args[0], column, cmd)
		},
	}
	cmd.Flags().IntVar(&column, "column", -1, "plot only this zero-based column")

	return cmd
}

func runPlot(opts *RootOptions, path string, column int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}
	analysis, err := cfg.Resolve()
	if err != nil {
		return err
	}
	x, err := loadSeries(path, cmd.InOrStdin(), column)
	if err != nil {
		return err
	}

	p, err := measure.Plot(x, x, analysis.Rule)
	if err != nil {
		return err
	}
	rows, cols := p.Dims()
	lines := make([]string, rows)
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.Reset()
		for j := 0; j < cols; j++ {
			if p.At(i, j) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		lines[i] = sb.String()
	}
	formatter.VerboseLog("plot: %d×%d", rows, cols)

	res := PlotResult{Rows: rows, Cols: cols, RecurrenceRate: measure.RecurrenceRate(p), Plot: lines}
	if formatter.Format == "json" {
		return formatter.JSON(res)
	}
	_, err = formatter.Writer.Write([]byte(strings.Join(lines, "\n") + "\n"))

	return err
}
