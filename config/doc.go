// SPDX-License-Identifier: MIT

// Package config loads an analysis configuration from YAML and resolves it
// into typed values once, at the boundary.
//
// Example file:
//
//	policy: corridor      # standard | corridor | jrp
//	metric: euclidean     # euclidean | manhattan | supremum
//	threshold: [0.1, 0.5] # scalar or [a, b]
//	shape: [3, 1]         # microstate rows, cols
//	samples: 0            # 0 = exhaustive scan
//	seed: 0
//	workers: 1
//
// Threshold is decoded as an untyped value and handed to
// recurrence.ParseThreshold; nothing past Resolve sees dynamic shapes.
package config
