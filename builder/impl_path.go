// SPDX-License-Identifier: MIT

package builder

// Chain returns the path 0 → 1 → … → n−1.
// Complexity: O(n).
func Chain(n int) (Graph, error) {
	if n < minChainStates {
		return Graph{}, builderErrorf(methodChain, "n=%d < min=%d: %w", n, minChainStates, ErrTooFewStates)
	}
	g := Graph{States: n, Transitions: make([]Transition, 0, n-1)}
	for i := 0; i+1 < n; i++ {
		g.Transitions = append(g.Transitions, Transition{From: i, To: i + 1})
	}

	return g, nil
}

// Ring returns Chain(n) with the closing transition n−1 → 0. Ring(1) is a
// single self-loop.
// Complexity: O(n).
func Ring(n int) (Graph, error) {
	if n < minRingStates {
		return Graph{}, builderErrorf(methodRing, "n=%d < min=%d: %w", n, minRingStates, ErrTooFewStates)
	}
	g, _ := Chain(n)
	g.Transitions = append(g.Transitions, Transition{From: n - 1, To: 0})

	return g, nil
}
