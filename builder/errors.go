// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewStates indicates that a state count is below the constructor's minimum.
var ErrTooFewStates = errors.New("builder: too few states")

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes err with the constructor name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
