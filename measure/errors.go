// SPDX-License-Identifier: MIT

package measure

import "errors"

var (
	// ErrIndexOutOfRange indicates a distribution too short for the requested
	// microstate entry (laminarity reads entry 2).
	ErrIndexOutOfRange = errors.New("measure: distribution index out of range")

	// ErrDegenerateInput indicates a zero or non-finite recurrence rate, or a
	// non-finite measure.
	ErrDegenerateInput = errors.New("measure: degenerate input")

	// ErrInvalidRate indicates a target recurrence rate outside (0, 1].
	ErrInvalidRate = errors.New("measure: recurrence rate must be in (0, 1]")

	// ErrDimensionMismatch indicates two series with different sample dimensions.
	ErrDimensionMismatch = errors.New("measure: series dimension mismatch")

	// ErrEmptySeries indicates a zero-length series.
	ErrEmptySeries = errors.New("measure: empty series")
)
