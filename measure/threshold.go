// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rqa/metric"
	"github.com/katalvlaran/rqa/series"
)

// ThresholdForRate returns the smallest pairwise distance q of x such that a
// Standard rule with threshold q makes at least a fraction rate of all
// (i, j) pairs recur. It is the empirical rate-quantile of the n² distances.
//
// Errors: ErrInvalidRate for rate outside (0, 1], ErrEmptySeries for an empty x.
func ThresholdForRate(x series.Series, m metric.Metric, rate float64) (float64, error) {
	if !(rate > 0 && rate <= 1) {
		return 0, fmt.Errorf("ThresholdForRate(%v): %w", rate, ErrInvalidRate)
	}
	n := x.Len()
	if n == 0 {
		return 0, fmt.Errorf("ThresholdForRate: %w", ErrEmptySeries)
	}
	vals, dim, stride := x.Values(), x.Dim(), x.Stride()
	d := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d = append(d, m.Evaluate(vals, vals, dim, stride, x.Offset(i), x.Offset(j)))
		}
	}
	sort.Float64s(d)

	return stat.Quantile(rate, stat.Empirical, d, nil), nil
}
