// SPDX-License-Identifier: MIT

package recurrence

import (
	"fmt"
	"strings"
)

// Policy selects the recurrence predicate.
type Policy int

const (
	// Standard recurs when the distance is within a single threshold.
	Standard Policy = iota

	// Corridor recurs when the distance lies in [min, max].
	Corridor

	// JRP recurs when both series recur with themselves (joint recurrence plot).
	JRP
)

// String returns the lower-case policy name.
func (p Policy) String() string {
	switch p {
	case Standard:
		return "standard"
	case Corridor:
		return "corridor"
	case JRP:
		return "jrp"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy resolves a case-insensitive policy name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "":
		return Standard, nil
	case "corridor":
		return Corridor, nil
	case "jrp", "joint":
		return JRP, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): want standard|corridor|jrp: %w", name, ErrInvalidConfiguration)
	}
}

// Threshold is either a single scalar or an ordered pair.
// The zero value is the scalar 0.
type Threshold struct {
	values [2]float64
	pair   bool
}

// Scalar returns a single-valued threshold.
func Scalar(v float64) Threshold {
	return Threshold{values: [2]float64{v, v}}
}

// Pair returns an ordered two-valued threshold: [min, max] for Corridor,
// [tx, ty] for JRP.
func Pair(first, second float64) Threshold {
	return Threshold{values: [2]float64{first, second}, pair: true}
}

// IsPair reports whether t was built as a pair.
func (t Threshold) IsPair() bool { return t.pair }

// Values returns both components; for a scalar both equal the scalar.
func (t Threshold) Values() (float64, float64) { return t.values[0], t.values[1] }

// String renders t as "0.5" or "[0.1 0.5]".
func (t Threshold) String() string {
	if t.pair {
		return fmt.Sprintf("[%g %g]", t.values[0], t.values[1])
	}

	return fmt.Sprintf("%g", t.values[0])
}
