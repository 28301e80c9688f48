// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"
)

// Series is an immutable, time-major sequence of Len samples with Dim
// components each. The zero value is an empty series.
type Series struct {
	values []float64
	dim    int
	n      int
}

// New builds a univariate series from values. The slice is copied.
func New(values []float64) (Series, error) {
	if len(values) == 0 {
		return Series{}, fmt.Errorf("New: %w", ErrEmpty)
	}
	if err := checkFinite(values); err != nil {
		return Series{}, fmt.Errorf("New: %w", err)
	}
	cp := make([]float64, len(values))
	copy(cp, values)

	return Series{values: cp, dim: 1, n: len(cp)}, nil
}

// NewMultivariate builds a series from samples, each a vector of the same
// length. samples[i][k] is component k at time i.
func NewMultivariate(samples [][]float64) (Series, error) {
	if len(samples) == 0 || len(samples[0]) == 0 {
		return Series{}, fmt.Errorf("NewMultivariate: %w", ErrEmpty)
	}
	dim := len(samples[0])
	flat := make([]float64, 0, len(samples)*dim)
	for i, s := range samples {
		if len(s) != dim {
			return Series{}, fmt.Errorf("NewMultivariate: sample %d has %d components, want %d: %w", i, len(s), dim, ErrRagged)
		}
		flat = append(flat, s...)
	}
	if err := checkFinite(flat); err != nil {
		return Series{}, fmt.Errorf("NewMultivariate: %w", err)
	}

	return Series{values: flat, dim: dim, n: len(samples)}, nil
}

// FromColumns builds a series from one slice per component (observable).
// cols[k][i] is component k at time i.
func FromColumns(cols [][]float64) (Series, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return Series{}, fmt.Errorf("FromColumns: %w", ErrEmpty)
	}
	n, dim := len(cols[0]), len(cols)
	for k, c := range cols {
		if len(c) != n {
			return Series{}, fmt.Errorf("FromColumns: column %d has %d samples, want %d: %w", k, len(c), n, ErrRagged)
		}
	}
	flat := make([]float64, n*dim)
	for k, c := range cols {
		for i, v := range c {
			flat[i*dim+k] = v
		}
	}
	if err := checkFinite(flat); err != nil {
		return Series{}, fmt.Errorf("FromColumns: %w", err)
	}

	return Series{values: flat, dim: dim, n: n}, nil
}

// Len returns the number of samples.
func (s Series) Len() int { return s.n }

// Dim returns the number of components per sample.
func (s Series) Dim() int { return s.dim }

// Stride returns the distance in Values between two consecutive components
// of one sample.
func (s Series) Stride() int { return 1 }

// Offset returns the position of sample i inside Values.
func (s Series) Offset(i int) int { return i * s.dim }

// Values exposes the backing buffer. Callers must treat it as read-only.
func (s Series) Values() []float64 { return s.values }

// At returns component k of sample i.
func (s Series) At(i, k int) (float64, error) {
	if i < 0 || i >= s.n || k < 0 || k >= s.dim {
		return 0, fmt.Errorf("At(%d,%d): %w", i, k, ErrOutOfRange)
	}

	return s.values[i*s.dim+k], nil
}

// Column extracts component k as a new univariate series.
func (s Series) Column(k int) (Series, error) {
	if k < 0 || k >= s.dim {
		return Series{}, fmt.Errorf("Column(%d): %w", k, ErrOutOfRange)
	}
	out := make([]float64, s.n)
	for i := range out {
		out[i] = s.values[i*s.dim+k]
	}

	return Series{values: out, dim: 1, n: s.n}, nil
}

// checkFinite rejects NaN and ±Inf.
func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}
