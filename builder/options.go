// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

const (
	defaultDensity = 0.2
	minProbability = 0.0
	maxProbability = 1.0
)

// config aggregates the knobs read by constructors. It is resolved once per
// call and passed by value.
type config struct {
	rng       *rand.Rand
	density   float64
	backEdges int // <0 means n/3+1
	selfLoops bool
}

// Option customizes a constructor call.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{density: defaultDensity, backEdges: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a private RNG so that stochastic constructors are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithDensity sets the probability with which RandomDAG adds each forward
// pair beyond the spanning arborescence. Panics outside [0,1].
func WithDensity(p float64) Option {
	if p < minProbability || p > maxProbability {
		panic(fmt.Sprintf("builder: WithDensity(%g): %v", p, ErrInvalidProbability))
	}

	return func(c *config) {
		c.density = p
	}
}

// WithBackEdges sets how many back edges RandomCyclic adds. Panics on k < 0.
func WithBackEdges(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithBackEdges(%d)", k))
	}

	return func(c *config) {
		c.backEdges = k
	}
}

// WithSelfLoops lets RandomCyclic draw back edges of the form i → i.
func WithSelfLoops(allow bool) Option {
	return func(c *config) {
		c.selfLoops = allow
	}
}
