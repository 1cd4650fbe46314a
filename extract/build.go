// SPDX-License-Identifier: MIT

package extract

import (
	"fmt"

	"github.com/katalvlaran/statecover/network"
)

// constructNetwork appends the sink, freezes the graph and adds the
// synthetic edges of the lower-bound reduction: each action edge must be
// walked once, so a state entered d more times than it is left gets d units
// from the source, one left d more times sends d units to the sink. Every
// state but the root may end a path through its closing edge.
func (x *Extractor) constructNetwork() {
	n := x.net
	n.AddNode(nil) // sink
	n.Shutdown()
	n.EnsureEdgeCapacity(4 * n.NodeCount())

	diff := make([]int, n.NodeCount())
	for id := 0; id < n.EdgeCount(); id += 2 {
		diff[n.From(id)]--
		diff[n.To(id)]++
	}

	source, sink, root := n.Source(), n.Sink(), n.Root()
	for v := range diff {
		if v == source || v == sink {
			continue
		}
		switch d := diff[v]; {
		case d > 0:
			n.AddEdge(source, v, d, nil)
		case d < 0:
			n.AddEdge(v, sink, -d, nil)
		}
		if v != root {
			n.AddEdge(v, root, network.Inf/2, nil)
		}
	}
}

// checkReachable fails when an action edge leaves a state the root cannot
// reach over action edges.
func (x *Extractor) checkReachable() error {
	n := x.net
	if n.NodeCount() <= 2 {
		return nil
	}
	seen := make([]bool, n.NodeCount())
	seen[n.Root()] = true
	queue := []int{n.Root()}
	for i := 0; i < len(queue); i++ {
		for _, id := range n.AdjacentEdgeIDs(queue[i]) {
			if id&1 != 0 || !n.IsActionEdge(id) {
				continue
			}
			if v := n.To(id); !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	for id := 0; id < n.EdgeCount(); id += 2 {
		if n.IsActionEdge(id) && !seen[n.From(id)] {
			return fmt.Errorf("%w: state %d (action %d)", ErrUnreachable, n.From(id)-1, id/2)
		}
	}

	return nil
}

// release drops the mandatory traversal of every redundant edge while
// keeping the flow maximal: the unit moves from the lower bound onto the
// edge itself, and a saturated source→tail and head→sink pair replaces the
// balancing it no longer needs.
func (x *Extractor) release() {
	n := x.net
	actionEdges := x.actionEdgeCount()
	for id := 0; id < 2*actionEdges; id += 2 {
		if !n.IsRedundant(id) {
			continue
		}
		in := n.AddEdge(n.Source(), n.From(id), 1, nil)
		n.IncFlow(in, 1)
		out := n.AddEdge(n.To(id), n.Sink(), 1, nil)
		n.IncFlow(out, 1)
		n.IncFlow(id, 1)
	}
}

// actionEdgeCount is the number of physical action edges; they occupy the
// first records.
func (x *Extractor) actionEdgeCount() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.actions
}

// mandatory is the traversal an action edge owes: one, unless the edge was
// released as redundant.
func (x *Extractor) mandatory(id int) int {
	if !x.net.IsActionEdge(id) || (x.released && x.net.IsRedundant(id)) {
		return 0
	}
	return 1
}

// pathCount is the number of paths encoded before circulation: every unit
// entering the root from a state ends one path.
func (x *Extractor) pathCount() int {
	n := x.net
	count := 0
	for id := 0; id < n.EdgeCount(); id += 2 {
		if n.To(id) == n.Root() && n.From(id) != n.Source() {
			count += n.Flow(id) + x.mandatory(id)
		}
	}

	return count
}

// circulate adds back the mandatory traversals.
func (x *Extractor) circulate() {
	n := x.net
	for id := 0; id < 2*x.actionEdgeCount(); id += 2 {
		if m := x.mandatory(id); m > 0 {
			n.IncFlow(id, m)
		}
	}
}

// totalTraversals sums the action-edge flow of the circulation.
func (x *Extractor) totalTraversals() int {
	n := x.net
	total := 0
	for id := 0; id < 2*x.actionEdgeCount(); id += 2 {
		total += n.Flow(id)
	}

	return total
}
