// SPDX-License-Identifier: MIT

package series

import "errors"

var (
	// ErrEmpty is returned when a series would contain no samples or a sample
	// would contain no components.
	ErrEmpty = errors.New("series: empty input")

	// ErrRagged is returned when samples (or columns) do not share one length.
	ErrRagged = errors.New("series: ragged input")

	// ErrNaNInf is returned when a value is NaN or ±Inf.
	ErrNaNInf = errors.New("series: NaN or Inf encountered")

	// ErrOutOfRange is returned when a requested sample or column does not exist.
	ErrOutOfRange = errors.New("series: index out of range")
)
