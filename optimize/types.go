// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"errors"
)

// ErrDepth is returned by NewHeuristic for a non-positive depth.
var ErrDepth = errors.New("optimize: depth must be positive")

// NetworkPathOptimizer redistributes a maximum flow so that it encodes fewer
// paths. Implementations honour ctx between cycle cancellations and return
// ctx.Err() when it ends; the flow is valid at every return.
type NetworkPathOptimizer interface {
	OptimizePaths(ctx context.Context) error
}

// unreached marks nodes outside the current search.
const unreached = -1
