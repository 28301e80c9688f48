// SPDX-License-Identifier: MIT

package recurrence

import (
	"fmt"

	"github.com/katalvlaran/rqa/metric"
	"github.com/katalvlaran/rqa/series"
)

// Rule is an immutable recurrence decision bound to a metric.
// Create it once per analysis and share it freely; it is a small value.
// Only New and NewFromConfig produce usable rules; the zero value has no
// metric and is rejected by Check.
type Rule struct {
	policy Policy
	metric metric.Metric
	t0, t1 float64 // Standard: t0; Corridor: [t0, t1]; JRP: tx=t0, ty=t1
}

// New builds a Rule for policy p over metric m with threshold t.
//
// Errors (all wrapping ErrInvalidConfiguration):
//   - m is nil;
//   - Standard given a pair (Standard requires a scalar);
//   - Corridor given a scalar (Corridor requires exactly two elements);
//   - unknown policy.
//
// Corridor bounds are used as given: with min > max no distance satisfies
// the predicate and the rule never recurs.
func New(p Policy, m metric.Metric, t Threshold) (Rule, error) {
	if m == nil {
		return Rule{}, fmt.Errorf("New(%s): nil metric: %w", p, ErrInvalidConfiguration)
	}
	a, b := t.Values()
	switch p {
	case Standard:
		if t.IsPair() {
			return Rule{}, fmt.Errorf("New(%s): threshold must be a scalar, got %s: %w", p, t, ErrInvalidConfiguration)
		}
	case Corridor:
		if !t.IsPair() {
			return Rule{}, fmt.Errorf("New(%s): threshold must be a [min, max] pair, got %s: %w", p, t, ErrInvalidConfiguration)
		}
	case JRP:
		// scalar ⇒ tx = ty, already expanded by Scalar
	default:
		return Rule{}, fmt.Errorf("New(%s): unknown policy: %w", p, ErrInvalidConfiguration)
	}

	return Rule{policy: p, metric: m, t0: a, t1: b}, nil
}

// NewFromConfig parses an untyped threshold with ParseThreshold and builds
// the rule with New.
func NewFromConfig(p Policy, m metric.Metric, threshold any) (Rule, error) {
	t, err := ParseThreshold(threshold)
	if err != nil {
		return Rule{}, fmt.Errorf("NewFromConfig(%s): %w", p, err)
	}

	return New(p, m, t)
}

// Policy returns the rule's policy.
func (r Rule) Policy() Policy { return r.policy }

// Metric returns the bound metric.
func (r Rule) Metric() metric.Metric { return r.metric }

// Thresholds returns the two bound thresholds; for Standard both are t.
func (r Rule) Thresholds() (float64, float64) {
	if r.policy == Standard {
		return r.t0, r.t0
	}

	return r.t0, r.t1
}

// Compute decides recurrence between the sample at offset ia and the sample
// at offset ib. dim and stride describe sample layout as in metric.Metric.
func (r Rule) Compute(a, b []float64, dim, stride, ia, ib int) bool {
	switch r.policy {
	case Corridor:
		d := r.metric.Evaluate(a, b, dim, stride, ia, ib)
		return d >= r.t0 && d <= r.t1
	case JRP:
		return r.metric.Evaluate(a, a, dim, stride, ia, ib) <= r.t0 &&
			r.metric.Evaluate(b, b, dim, stride, ia, ib) <= r.t1
	default:
		return r.metric.Evaluate(a, b, dim, stride, ia, ib) <= r.t0
	}
}

// Check reports whether r can be evaluated over every (i, j) of x × y.
// JRP reads both series at both time indices, so it needs equal lengths.
//
// Errors:
//   - ErrInvalidConfiguration — r has no metric (zero value).
//   - ErrLengthMismatch       — JRP over series of different lengths.
func (r Rule) Check(x, y series.Series) error {
	if r.metric == nil {
		return fmt.Errorf("Check: rule has no metric, build it with New: %w", ErrInvalidConfiguration)
	}
	if r.policy == JRP && x.Len() != y.Len() {
		return fmt.Errorf("Check(%s): lengths %d vs %d: %w", r.policy, x.Len(), y.Len(), ErrLengthMismatch)
	}

	return nil
}

// Recurs decides recurrence between time i of x and time j of y.
// x and y must share Dim, and under JRP also Len (both i and j index both
// series). Callers building whole plots check that once with Check.
func (r Rule) Recurs(x, y series.Series, i, j int) bool {
	return r.Compute(x.Values(), y.Values(), x.Dim(), x.Stride(), x.Offset(i), y.Offset(j))
}
