// SPDX-License-Identifier: MIT

package microstate

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rqa/recurrence"
	"github.com/katalvlaran/rqa/series"
)

// Distribution returns the probability of each microstate of the given shape
// over the recurrence of x against y under rule. The result has
// shape.States() entries and sums to 1.
//
// Errors:
//   - ErrBadShape          — shape fails Validate.
//   - ErrDimensionMismatch — x.Dim() != y.Dim().
//   - ErrSeriesTooShort    — no window fits (x.Len() < Rows or y.Len() < Cols).
//   - recurrence.ErrLengthMismatch, recurrence.ErrInvalidConfiguration —
//     rule.Check rejects the pair of series.
func Distribution(x, y series.Series, rule recurrence.Rule, shape Shape, opts ...Option) ([]float64, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("Distribution: %w", err)
	}
	if x.Dim() != y.Dim() {
		return nil, fmt.Errorf("Distribution: dim %d vs %d: %w", x.Dim(), y.Dim(), ErrDimensionMismatch)
	}
	if err := rule.Check(x, y); err != nil {
		return nil, fmt.Errorf("Distribution: %w", err)
	}
	ni, nj := x.Len()-shape.Rows+1, y.Len()-shape.Cols+1
	if ni <= 0 || nj <= 0 {
		return nil, fmt.Errorf("Distribution: lengths %d×%d, shape %d×%d: %w", x.Len(), y.Len(), shape.Rows, shape.Cols, ErrSeriesTooShort)
	}

	o := gatherOptions(opts)
	s := scanner{x: x, y: y, rule: rule, shape: shape}

	var counts []uint64
	switch {
	case o.samples > 0:
		counts = s.sample(ni, nj, o.samples, o.seed)
	case o.workers > 1:
		counts = s.parallel(ni, nj, o.workers)
	default:
		counts = make([]uint64, shape.States())
		s.scanRows(0, ni, nj, counts)
	}

	dist := make([]float64, len(counts))
	var total uint64
	for k, c := range counts {
		dist[k] = float64(c)
		total += c
	}
	floats.Scale(1/float64(total), dist)

	return dist, nil
}

// scanner carries the read-only inputs of one Distribution call.
type scanner struct {
	x, y  series.Series
	rule  recurrence.Rule
	shape Shape
}

// state encodes the microstate anchored at (i, j).
func (s scanner) state(i, j int) int {
	xv, yv := s.x.Values(), s.y.Values()
	dim, stride := s.x.Dim(), s.x.Stride()
	var st, bit int
	for r := 0; r < s.shape.Rows; r++ {
		for c := 0; c < s.shape.Cols; c++ {
			if s.rule.Compute(xv, yv, dim, stride, s.x.Offset(i+r), s.y.Offset(j+c)) {
				st |= 1 << bit
			}
			bit++
		}
	}

	return st
}

// scanRows counts every anchor with i in [lo, hi).
func (s scanner) scanRows(lo, hi, nj int, counts []uint64) {
	for i := lo; i < hi; i++ {
		for j := 0; j < nj; j++ {
			counts[s.state(i, j)]++
		}
	}
}

// parallel splits anchor rows into contiguous chunks, one per worker, and
// merges the per-worker counts in worker order.
func (s scanner) parallel(ni, nj, workers int) []uint64 {
	if workers > ni {
		workers = ni
	}
	chunk := (ni + workers - 1) / workers
	partial := make([][]uint64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > ni {
			hi = ni
		}
		partial[w] = make([]uint64, s.shape.States())
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int, counts []uint64) {
			defer wg.Done()
			s.scanRows(lo, hi, nj, counts)
		}(lo, hi, partial[w])
	}
	wg.Wait()

	counts := make([]uint64, s.shape.States())
	for _, p := range partial {
		for k, c := range p {
			counts[k] += c
		}
	}

	return counts
}

// sample draws n anchors uniformly with a deterministic source.
func (s scanner) sample(ni, nj, n int, seed int64) []uint64 {
	rng := rngFromSeed(seed)
	counts := make([]uint64, s.shape.States())
	for k := 0; k < n; k++ {
		counts[s.state(rng.Intn(ni), rng.Intn(nj))]++
	}

	return counts
}
