// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rqa/measure"
)

// MeasureResult is the JSON shape of the measure command.
type MeasureResult struct {
	Samples   int    `json:"samples"`
	Dim       int    `json:"dim"`
	Policy    string `json:"policy"`
	Threshold string `json:"threshold"`
	measure.Summary
}

// NewMeasureCommand creates the measure command.
func NewMeasureCommand(rootOpts *RootOptions) *cobra.Command {
	var column int

	cmd := &cobra.Command{
		Use:   "measure <series.csv>",
		Short: "Compute recurrence rate, microstate entropy and laminarity",
		Long: `Compute recurrence measures of a CSV time series against itself.

Each CSV row is one sample and each column one component; use --column to
analyse a single component. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(rootOpts, args[0], column, cmd)
		},
	}
	cmd.Flags().IntVar(&column, "column", -1, "analyse only this zero-based column")

	return cmd
}

func runMeasure(opts *RootOptions, path string, column int, cmd *cobra.Command) error {
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
	formatter.VerboseLog("series: %d samples × %d components; rule: %s %s; shape %d×%d",
		x.Len(), x.Dim(), analysis.Rule.Policy(), analysis.Threshold, analysis.Shape.Rows, analysis.Shape.Cols)

	sum, err := measure.Summarize(x, analysis.Rule, analysis.Shape, analysis.Microstate...)
	if err != nil {
		return err
	}

	res := MeasureResult{
		Samples:   x.Len(),
		Dim:       x.Dim(),
		Policy:    analysis.Rule.Policy().String(),
		Threshold: analysis.Threshold.String(),
		Summary:   sum,
	}
	if formatter.Format == "json" {
		return formatter.JSON(res)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "samples:            %d\n", res.Samples)
	fmt.Fprintf(w, "policy:             %s %s\n", res.Policy, res.Threshold)
	fmt.Fprintf(w, "recurrence rate:    %.6f\n", res.RecurrenceRate)
	fmt.Fprintf(w, "entropy:            %.6f bits (max %.6f)\n", res.Entropy, res.MaxEntropy)
	fmt.Fprintf(w, "laminarity:         %.6f\n", res.Laminarity)

	return nil
}
