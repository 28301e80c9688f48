// SPDX-License-Identifier: MIT

package microstate

import "math/bits"

// Rate returns the recurrence rate encoded in a microstate distribution:
//
//	RR = Σ_s dist[s] · popcount(s) / log2(len(dist))
//
// dist must have a power-of-two length ≥ 2 (as produced by Distribution);
// any other length yields 0.
func Rate(dist []float64) float64 {
	n := len(dist)
	if n < 2 || n&(n-1) != 0 {
		return 0
	}
	cells := bits.TrailingZeros(uint(n))

	var rr float64
	for s, p := range dist {
		if p != 0 {
			rr += p * float64(bits.OnesCount(uint(s)))
		}
	}

	return rr / float64(cells)
}
