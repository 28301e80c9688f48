// SPDX-License-Identifier: MIT

package recurrence

import "errors"

var (
	// ErrInvalidConfiguration is returned when a threshold has the wrong shape,
	// arity or value for the chosen policy, when the metric is nil, or when the
	// policy is unknown. New reports it at construction time and Check reports
	// it for a zero-value Rule; Compute never fails.
	ErrInvalidConfiguration = errors.New("recurrence: invalid configuration")

	// ErrLengthMismatch is returned by Check when a JRP rule is applied to two
	// series of different lengths.
	ErrLengthMismatch = errors.New("recurrence: series length mismatch")
)
