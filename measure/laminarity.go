// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rqa/microstate"
	"github.com/katalvlaran/rqa/recurrence"
	"github.com/katalvlaran/rqa/series"
)

// isolatedState is the 3×1 microstate 0b010: recurrence at the middle cell only.
const isolatedState = 2

// Laminarity computes LAM of x against itself with threshold t:
//
//  1. dist = builder(x, x, rule, 3×1)
//  2. rr   = rate(dist)
//  3. LAM  = 1 − dist[2] / rr
//
// The rule is built from the configured policy and metric (Standard and
// Euclidean by default); its construction errors propagate unchanged.
func Laminarity(x series.Series, t recurrence.Threshold, opts ...Option) (float64, error) {
	o := gatherOptions(opts)
	rule, err := recurrence.New(o.policy, o.metric, t)
	if err != nil {
		return 0, fmt.Errorf("Laminarity: %w", err)
	}

	return laminarity(x, rule, o.builder, o.rate, o.msOpts)
}

// LaminarityOf computes LAM of x against itself under an existing rule with
// the default builder and rate.
func LaminarityOf(x series.Series, rule recurrence.Rule, msOpts ...microstate.Option) (float64, error) {
	return laminarity(x, rule, microstate.Distribution, microstate.Rate, msOpts)
}

func laminarity(x series.Series, rule recurrence.Rule, build Builder, rate RateFunc, msOpts []microstate.Option) (float64, error) {
	dist, err := build(x, x, rule, microstate.LaminarityShape, msOpts...)
	if err != nil {
		return 0, fmt.Errorf("Laminarity: %w", err)
	}

	return LaminarityFrom(dist, rate(dist))
}

// LaminarityFrom returns 1 − dist[2]/rr.
//
// Errors:
//   - ErrIndexOutOfRange — len(dist) < 3.
//   - ErrDegenerateInput — rr is zero or non-finite, or the result is not finite.
func LaminarityFrom(dist []float64, rr float64) (float64, error) {
	if len(dist) <= isolatedState {
		return 0, fmt.Errorf("LaminarityFrom: distribution has %d entries, need %d: %w", len(dist), isolatedState+1, ErrIndexOutOfRange)
	}
	if rr == 0 || math.IsNaN(rr) || math.IsInf(rr, 0) {
		return 0, fmt.Errorf("LaminarityFrom: recurrence rate %v: %w", rr, ErrDegenerateInput)
	}
	lam := 1 - (1/rr)*dist[isolatedState]
	if math.IsNaN(lam) || math.IsInf(lam, 0) {
		return 0, fmt.Errorf("LaminarityFrom: result %v: %w", lam, ErrDegenerateInput)
	}

	return lam, nil
}
