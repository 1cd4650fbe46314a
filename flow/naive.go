// SPDX-License-Identifier: MIT

package flow

import "github.com/katalvlaran/statecover/network"

// Naive is the linear-time solver for acyclic action graphs.
//
// It walks action edges from the root once. A state reached for the first
// time forwards the sum its successors report; a state with no action
// out-edge, or one reached again, ends one path: it sends one unit to the
// root through its closing edge (a self-loop on the root already ends there).
// The units summed back up the DFS are the traversal counts of the action
// edges. Finally each action edge gives back its mandatory unit and the
// balancing edges are saturated, which yields a maximum flow of the lower-bound reduction without any augmenting search.
type Naive struct {
	net  *network.Network
	used []bool
}

// NewNaive prepares a Naive solver for n.
func NewNaive(n *network.Network) *Naive {
	requireShutDown(n)

	return &Naive{net: n, used: make([]bool, n.NodeCount())}
}

// FindMaxFlow implements MaxFlowSolver.
func (s *Naive) FindMaxFlow() int {
	n := s.net
	root := n.Root()
	s.used[root] = true
	for _, id := range n.AdjacentEdgeIDs(root) {
		if id&1 == 0 && n.IsActionEdge(id) {
			s.dfs(id)
		}
	}

	total := 0
	for id := 0; id < n.EdgeCount(); id += 2 {
		e := n.Edge(id)
		if e.HasAction() {
			n.IncFlow(id, -1)
		}
		if e.From == n.Source() || e.To == n.Sink() {
			n.IncFlow(id, e.Capacity-e.Flow)
			if e.From == n.Source() {
				total += e.Capacity
			}
		}
	}

	return total
}

// dfs follows action edge id and returns how many paths traverse it.
func (s *Naive) dfs(id int) int {
	n := s.net
	u := n.To(id)

	deadEnd := true
	sum := 0
	if !s.used[u] {
		s.used[u] = true
		for _, next := range n.AdjacentEdgeIDs(u) {
			if next&1 != 0 || !n.IsActionEdge(next) {
				continue
			}
			deadEnd = false
			sum += s.dfs(next)
		}
	}
	switch {
	case !deadEnd:
	case u == n.Root():
		// a root self-loop is a whole path on its own
		sum++
	default:
		for _, closing := range n.AdjacentEdgeIDs(u) {
			if closing&1 == 0 && !n.IsActionEdge(closing) && n.To(closing) == n.Root() {
				n.IncFlow(closing, 1)
				sum++

				break
			}
		}
	}
	n.IncFlow(id, sum)

	return sum
}
