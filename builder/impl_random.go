// SPDX-License-Identifier: MIT

package builder

// RandomDAG samples an acyclic state graph over n states.
//
// Every state v > 0 first receives one parent drawn uniformly from [0, v), so
// all states are reachable from 0. Each remaining ordered pair i < j is then
// added independently with the configured density. Trial order is fixed
// (v asc, then i asc, j asc), so a fixed seed yields a fixed graph.
//
// Requires WithSeed or WithRand unless n == 1.
// Complexity: O(n²) Bernoulli trials.
func RandomDAG(n int, opts ...Option) (Graph, error) {
	cfg := newConfig(opts...)

	return randomDAG(methodRandomDAG, n, cfg)
}

// RandomCyclic samples RandomDAG(n) and appends back edges j → i with i ≤ j
// drawn uniformly. The default count is n/3+1; see WithBackEdges. Without
// WithSelfLoops a drawn i == j is redrawn as j → 0 (or skipped when j == 0).
// Complexity: O(n²).
func RandomCyclic(n int, opts ...Option) (Graph, error) {
	cfg := newConfig(opts...)
	g, err := randomDAG(methodRandomCyclic, n, cfg)
	if err != nil {
		return Graph{}, err
	}
	if cfg.rng == nil {
		return Graph{}, builderErrorf(methodRandomCyclic, "rng is required: %w", ErrNeedRandSource)
	}
	k := cfg.backEdges
	if k < 0 {
		k = n/3 + 1
	}
	for range k {
		j := cfg.rng.Intn(n)
		i := cfg.rng.Intn(j + 1)
		if i == j && !cfg.selfLoops {
			if j == 0 {
				continue
			}
			i = 0
		}
		g.Transitions = append(g.Transitions, Transition{From: j, To: i})
	}

	return g, nil
}

func randomDAG(method string, n int, cfg config) (Graph, error) {
	if n < minRandomStates {
		return Graph{}, builderErrorf(method, "n=%d < min=%d: %w", n, minRandomStates, ErrTooFewStates)
	}
	if n == 1 {
		return Graph{States: 1}, nil
	}
	if cfg.rng == nil {
		return Graph{}, builderErrorf(method, "rng is required: %w", ErrNeedRandSource)
	}
	r := cfg.rng
	g := Graph{States: n}
	for v := 1; v < n; v++ {
		g.Transitions = append(g.Transitions, Transition{From: r.Intn(v), To: v})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < cfg.density {
				g.Transitions = append(g.Transitions, Transition{From: i, To: j})
			}
		}
	}

	return g, nil
}
