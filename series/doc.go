// SPDX-License-Identifier: MIT

// Package series holds the time-series value consumed by every stage of the
// recurrence pipeline.
//
// A Series is an immutable, caller-owned block of float64 samples. Each
// sample may be a vector of Dim components; samples are laid out time-major:
//
//	Values = [ s0c0 s0c1 … s0c(D-1) | s1c0 … | … ]
//
// so component k of sample i lives at Values[i*Dim+k]. The metric port
// addresses samples by a pre-computed offset and a component stride, which
// for this layout are Offset(i) = i*Dim and Stride() = 1.
//
// Constructors copy their input, reject empty, ragged and non-finite data,
// and never panic on user input:
//
//	x, err := series.New([]float64{0, 1, 0, 1, 0})
//	xy, err := series.NewMultivariate([][]float64{{0, 1}, {1, 2}, {2, 3}})
//	xy, err := series.FromColumns([][]float64{{0, 1, 2}, {1, 2, 3}})
//
// ReadCSV ingests a numeric CSV (one row per sample) into a Series.
package series
