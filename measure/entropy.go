// SPDX-License-Identifier: MIT

package measure

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Entropy returns −Σ p·log2(p) over the entries of dist, in order.
// Entries ≤ 0 contribute nothing. dist is not normalised.
func Entropy(dist []float64) float64 {
	var h float64
	for _, p := range dist {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}

	return h
}

// MaxEntropy returns log2(len(dist)), the entropy of a uniform distribution
// over the same number of states. It is 0 for fewer than two states.
func MaxEntropy(dist []float64) float64 {
	if len(dist) < 2 {
		return 0
	}

	return math.Log2(float64(len(dist)))
}

// NormalizedEntropy returns Entropy/MaxEntropy of dist rescaled to sum to 1.
// It returns 0 when dist has no positive mass or fewer than two states.
func NormalizedEntropy(dist []float64) float64 {
	hmax := MaxEntropy(dist)
	if hmax == 0 {
		return 0
	}
	p := make([]float64, len(dist))
	for i, v := range dist {
		if v > 0 {
			p[i] = v
		}
	}
	total := floats.Sum(p)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, p)

	return Entropy(p) / hmax
}
