// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid is returned for structurally invalid configuration values
// (negative samples/workers, unreadable YAML). Policy, metric, threshold and
// shape errors keep their own package sentinels.
var ErrInvalid = errors.New("config: invalid configuration")
