// SPDX-License-Identifier: MIT

package recurrence

import (
	"fmt"
	"math"
	"reflect"
)

// ParseThreshold resolves an untyped configuration value into a Threshold.
//
// Accepted shapes:
//   - any integer or float kind         → Scalar
//   - a slice or array of exactly two numeric elements
//     ([]float64, [2]float64, []int, []any …) → Pair
//
// Everything else, a sequence whose length is not 2, and negative or
// non-finite numbers fail with ErrInvalidConfiguration.
func ParseThreshold(v any) (Threshold, error) {
	if v == nil {
		return Threshold{}, fmt.Errorf("ParseThreshold: nil value: %w", ErrInvalidConfiguration)
	}
	if x, ok := toFloat(v); ok {
		if err := checkThresholdValue(x); err != nil {
			return Threshold{}, err
		}

		return Scalar(x), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Threshold{}, fmt.Errorf("ParseThreshold: unsupported type %T, want number or 2-element sequence: %w", v, ErrInvalidConfiguration)
	}
	if rv.Len() != 2 {
		return Threshold{}, fmt.Errorf("ParseThreshold: sequence has %d elements, want exactly 2: %w", rv.Len(), ErrInvalidConfiguration)
	}

	var pair [2]float64
	for i := 0; i < 2; i++ {
		x, ok := toFloat(rv.Index(i).Interface())
		if !ok {
			return Threshold{}, fmt.Errorf("ParseThreshold: element %d has type %T, want number: %w", i, rv.Index(i).Interface(), ErrInvalidConfiguration)
		}
		if err := checkThresholdValue(x); err != nil {
			return Threshold{}, err
		}
		pair[i] = x
	}

	return Pair(pair[0], pair[1]), nil
}

// toFloat converts numeric kinds to float64.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// checkThresholdValue enforces a finite, non-negative threshold component.
func checkThresholdValue(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("ParseThreshold: value %v must be finite: %w", x, ErrInvalidConfiguration)
	}
	if x < 0 {
		return fmt.Errorf("ParseThreshold: value %v must be non-negative: %w", x, ErrInvalidConfiguration)
	}

	return nil
}
