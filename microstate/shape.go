// SPDX-License-Identifier: MIT

package microstate

import "fmt"

// MaxHypervolume bounds Rows·Cols so the distribution stays at most 2^16 entries.
const MaxHypervolume = 16

// Shape is the microstate window: Rows along x's time axis, Cols along y's.
type Shape struct {
	Rows int
	Cols int
}

// LaminarityShape is the 3×1 vertical window used by laminarity.
var LaminarityShape = Shape{Rows: 3, Cols: 1}

// Hypervolume returns the number of cells (bits) in a microstate.
func (s Shape) Hypervolume() int { return s.Rows * s.Cols }

// States returns the number of distinct microstates, 2^Hypervolume.
func (s Shape) States() int { return 1 << s.Hypervolume() }

// Validate checks that both sides are positive and the hypervolume is bounded.
func (s Shape) Validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("Shape{%d,%d}: sides must be ≥ 1: %w", s.Rows, s.Cols, ErrBadShape)
	}
	if s.Hypervolume() > MaxHypervolume {
		return fmt.Errorf("Shape{%d,%d}: hypervolume %d exceeds %d: %w", s.Rows, s.Cols, s.Hypervolume(), MaxHypervolume, ErrBadShape)
	}

	return nil
}

// ParseShape builds a Shape from a [rows, cols] list (or [rows] ⇒ rows×1).
func ParseShape(dims []int) (Shape, error) {
	var s Shape
	switch len(dims) {
	case 1:
		s = Shape{Rows: dims[0], Cols: 1}
	case 2:
		s = Shape{Rows: dims[0], Cols: dims[1]}
	default:
		return Shape{}, fmt.Errorf("ParseShape(%v): want 1 or 2 dimensions: %w", dims, ErrBadShape)
	}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}
