// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"

	"github.com/katalvlaran/rqa/microstate"
	"github.com/katalvlaran/rqa/recurrence"
	"github.com/katalvlaran/rqa/series"
)

// Summary groups the measures of one series under one rule.
type Summary struct {
	RecurrenceRate    float64 `json:"recurrence_rate"`
	Entropy           float64 `json:"entropy"`
	MaxEntropy        float64 `json:"max_entropy"`
	NormalizedEntropy float64 `json:"normalized_entropy"`
	Laminarity        float64 `json:"laminarity"`
}

// Summarize computes the microstate distribution of x against itself with
// the given shape, its recurrence rate and entropy, and the laminarity
// (always on the 3×1 shape) under the same rule.
func Summarize(x series.Series, rule recurrence.Rule, shape microstate.Shape, msOpts ...microstate.Option) (Summary, error) {
	dist, err := microstate.Distribution(x, x, rule, shape, msOpts...)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	lam, err := LaminarityOf(x, rule, msOpts...)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	return Summary{
		RecurrenceRate:    microstate.Rate(dist),
		Entropy:           Entropy(dist),
		MaxEntropy:        MaxEntropy(dist),
		NormalizedEntropy: NormalizedEntropy(dist),
		Laminarity:        lam,
	}, nil
}
