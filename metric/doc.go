// SPDX-License-Identifier: MIT

// Package metric provides the distance port used by recurrence rules.
//
// A Metric compares one sample of series a with one sample of series b:
//
//	Evaluate(a, b, dim, stride, ia, ib)
//
// where component k of the sample at offset o is x[o+k*stride] and dim is
// the number of components. The result is a non-negative distance; lower
// means more similar. Evaluate sits on the O(n²) hot path of recurrence
// analysis, so implementations must not allocate and must not validate.
//
// Shipped metrics:
//   - Euclidean — L2 norm of the difference.
//   - Manhattan — L1 norm of the difference.
//   - Supremum  — L∞ (Chebyshev) norm of the difference.
//
// Custom metrics plug in via the Metric interface or the MetricFunc adapter.
package metric
