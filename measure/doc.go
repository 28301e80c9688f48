// SPDX-License-Identifier: MIT

// Package measure derives recurrence quantification measures.
//
// 🚀 Measures:
//
//	Entropy     — Shannon entropy (bits) of a microstate distribution:
//	              H = −Σ p·log2 p over p > 0.
//	Laminarity  — tendency of recurrences to form vertical (laminar)
//	              structures, from the 3×1 microstate distribution:
//	              LAM = 1 − p(010) / RR.
//	Plot / RecurrenceRate — the full 0/1 recurrence matrix (gonum mat.Dense)
//	              and its mean.
//	ThresholdForRate — the Standard threshold that yields a target
//	              recurrence rate.
//
// ⚙️ Collaborators:
//
//	The distribution builder and the recurrence-rate function are ports
//	(Builder, RateFunc); microstate.Distribution and microstate.Rate are the
//	defaults and can be replaced with WithBuilder / WithRate.
//
// ⚠️ Failure modes:
//
//	Entropy never fails. Laminarity fails with ErrIndexOutOfRange when the
//	distribution has fewer than 3 entries and with ErrDegenerateInput when
//	the recurrence rate is zero or the result is not finite, so callers can
//	tell "no recurrence found" apart from a computation error.
//
// Usage:
//
//	x, _ := series.New(samples)
//	lam, err := measure.Laminarity(x, recurrence.Scalar(0.3))
//	if errors.Is(err, measure.ErrDegenerateInput) {
//	  // no recurrence at this threshold
//	}
package measure
