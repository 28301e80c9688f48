// SPDX-License-Identifier: MIT

package microstate

import "errors"

var (
	// ErrBadShape indicates a microstate shape with a non-positive side or a
	// hypervolume above MaxHypervolume.
	ErrBadShape = errors.New("microstate: invalid shape")

	// ErrDimensionMismatch indicates the two series have different sample dimensions.
	ErrDimensionMismatch = errors.New("microstate: series dimension mismatch")

	// ErrSeriesTooShort indicates that no microstate window fits inside the series.
	ErrSeriesTooShort = errors.New("microstate: series shorter than microstate shape")
)
