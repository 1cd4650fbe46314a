// SPDX-License-Identifier: MIT

package builder

import "slices"

const (
	methodChain        = "Chain"
	methodRing         = "Ring"
	methodRandomDAG    = "RandomDAG"
	methodRandomCyclic = "RandomCyclic"

	minChainStates  = 1
	minRingStates   = 1
	minRandomStates = 1
)

// Transition is a directed edge between two state indices.
type Transition struct {
	From, To int
}

// Graph is a generated state graph. Transitions are listed in generation order.
type Graph struct {
	States      int
	Transitions []Transition
}

// Pairs returns the transitions as [from, to] pairs.
func (g Graph) Pairs() [][2]int {
	out := make([][2]int, len(g.Transitions))
	for i, t := range g.Transitions {
		out[i] = [2]int{t.From, t.To}
	}

	return out
}

// Acyclic reports whether the graph has no directed cycle. Self-loops count
// as cycles here.
func (g Graph) Acyclic() bool {
	indeg := make([]int, g.States)
	adj := make([][]int, g.States)
	for _, t := range g.Transitions {
		adj[t.From] = append(adj[t.From], t.To)
		indeg[t.To]++
	}
	queue := make([]int, 0, g.States)
	for v, d := range indeg {
		if d == 0 {
			queue = append(queue, v)
		}
	}
	seen := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		seen++
		for _, v := range adj[u] {
			if indeg[v]--; indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return seen == g.States
}

// Clone returns a deep copy of g.
func (g Graph) Clone() Graph {
	return Graph{States: g.States, Transitions: slices.Clone(g.Transitions)}
}
