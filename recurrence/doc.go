// SPDX-License-Identifier: MIT

// Package recurrence decides whether two time indices recur.
//
// A Rule binds a metric.Metric (borrowed, never copied) and a typed
// Threshold, and turns a distance into a boolean under one of three
// policies:
//
//	Standard — d(a@i, b@j) ≤ t                       (ball)
//	Corridor — min ≤ d(a@i, b@j) ≤ max               (annulus, inclusive)
//	JRP      — d(a@i, a@j) ≤ tx  AND  d(b@i, b@j) ≤ ty (joint recurrence)
//
// JRP never compares a with b: each series is an observable of a joint
// system and must recur with itself at the same pair of time indices.
//
// All validation happens in New. Compute is a closed switch over the policy
// tag; it never allocates, never fails, and is safe for concurrent use as
// long as the series buffers are not mutated.
//
// Untyped configuration (YAML, flags, bindings) is resolved once at the
// boundary with ParseThreshold / ParsePolicy / NewFromConfig:
//
//	t, err := recurrence.ParseThreshold([]any{0.1, 0.5})
//	r, err := recurrence.New(recurrence.Corridor, metric.Euclidean{}, t)
//	ok := r.Compute(x, x, 1, 1, 0, 3)
package recurrence
