// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"
	"strings"
)

// Metric evaluates the distance between sample ia of a and sample ib of b.
// Implementations must be safe for concurrent use.
type Metric interface {
	Evaluate(a, b []float64, dim, stride, ia, ib int) float64
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc func(a, b []float64, dim, stride, ia, ib int) float64

// Evaluate calls f.
func (f MetricFunc) Evaluate(a, b []float64, dim, stride, ia, ib int) float64 {
	return f(a, b, dim, stride, ia, ib)
}

var (
	_ Metric = Euclidean{}
	_ Metric = Manhattan{}
	_ Metric = Supremum{}
	_ Metric = MetricFunc(nil)
)

// Euclidean is the L2 distance.
type Euclidean struct{}

// Evaluate returns sqrt(Σ (a_k - b_k)²).
func (Euclidean) Evaluate(a, b []float64, dim, stride, ia, ib int) float64 {
	if dim == 1 {
		return math.Abs(a[ia] - b[ib])
	}
	var sum float64
	for k := 0; k < dim; k++ {
		d := a[ia+k*stride] - b[ib+k*stride]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Manhattan is the L1 distance.
type Manhattan struct{}

// Evaluate returns Σ |a_k - b_k|.
func (Manhattan) Evaluate(a, b []float64, dim, stride, ia, ib int) float64 {
	var sum float64
	for k := 0; k < dim; k++ {
		sum += math.Abs(a[ia+k*stride] - b[ib+k*stride])
	}

	return sum
}

// Supremum is the L∞ (Chebyshev) distance.
type Supremum struct{}

// Evaluate returns max |a_k - b_k|.
func (Supremum) Evaluate(a, b []float64, dim, stride, ia, ib int) float64 {
	var best float64
	for k := 0; k < dim; k++ {
		if d := math.Abs(a[ia+k*stride] - b[ib+k*stride]); d > best {
			best = d
		}
	}

	return best
}

// Names lists the metric names understood by ByName.
var Names = []string{"euclidean", "manhattan", "supremum"}

// ByName resolves a metric from its case-insensitive name.
func ByName(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "l2":
		return Euclidean{}, nil
	case "manhattan", "l1":
		return Manhattan{}, nil
	case "supremum", "chebyshev", "linf":
		return Supremum{}, nil
	default:
		return nil, fmt.Errorf("ByName(%q): want one of %v: %w", name, Names, ErrUnknownMetric)
	}
}
