// SPDX-License-Identifier: MIT

package metric

import "errors"

// ErrUnknownMetric is returned by ByName for unrecognised metric names.
var ErrUnknownMetric = errors.New("metric: unknown metric")
