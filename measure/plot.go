// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rqa/recurrence"
	"github.com/katalvlaran/rqa/series"
)

// Plot materialises the recurrence plot of x (rows) against y (columns):
// entry (i, j) is 1 when rule recurs at (i, j) and 0 otherwise.
//
// Errors: ErrEmptySeries, ErrDimensionMismatch, and whatever rule.Check
// returns (recurrence.ErrLengthMismatch for JRP over unequal lengths,
// recurrence.ErrInvalidConfiguration for a zero-value rule).
//
// Complexity: O(n·m) rule evaluations and O(n·m) memory.
func Plot(x, y series.Series, rule recurrence.Rule) (*mat.Dense, error) {
	if x.Len() == 0 || y.Len() == 0 {
		return nil, fmt.Errorf("Plot: %w", ErrEmptySeries)
	}
	if x.Dim() != y.Dim() {
		return nil, fmt.Errorf("Plot: dim %d vs %d: %w", x.Dim(), y.Dim(), ErrDimensionMismatch)
	}
	if err := rule.Check(x, y); err != nil {
		return nil, fmt.Errorf("Plot: %w", err)
	}
	n, m := x.Len(), y.Len()
	data := make([]float64, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if rule.Recurs(x, y, i, j) {
				data[i*m+j] = 1
			}
		}
	}

	return mat.NewDense(n, m, data), nil
}

// RecurrenceRate returns the fraction of recurrent entries of a plot.
func RecurrenceRate(plot mat.Matrix) float64 {
	r, c := plot.Dims()
	if r == 0 || c == 0 {
		return 0
	}

	return mat.Sum(plot) / float64(r*c)
}
