// SPDX-License-Identifier: MIT

package extract

import (
	"fmt"
	"iter"
)

// DFS colours.
const (
	white = iota // unvisited
	gray         // on the recursion stack
	black        // finished
)

// isAcyclic reports whether the action edges reachable from the root form a
// DAG. Closing edges, edges into the sink and self-loops are ignored.
//
// Complexity: O(V + E) time, O(V) memory plus recursion depth.
func (x *Extractor) isAcyclic() bool {
	if x.net.NodeCount() <= 2 {
		return true
	}
	color := make([]int, x.net.NodeCount())
	return x.acyclicFrom(x.net.Root(), color)
}

func (x *Extractor) acyclicFrom(v int, color []int) bool {
	n := x.net
	color[v] = gray
	for _, id := range n.AdjacentEdgeIDs(v) {
		if id&1 != 0 {
			continue
		}
		to := n.To(id)
		if (to == n.Root() && !n.IsActionEdge(id)) || to == n.Sink() || to == v {
			continue
		}
		switch color[to] {
		case gray:
			return false
		case white:
			if !x.acyclicFrom(to, color) {
				return false
			}
		}
	}
	color[v] = black

	return true
}

// advance consumes one unit of the first forward edge out of v that still
// carries circulation flow. Edges into the sink are not part of the
// circulation. The per-node resume pointer x.next only moves past exhausted
// edges.
func (x *Extractor) advance(v int) (int, bool) {
	n := x.net
	adj := n.AdjacentEdgeIDs(v)
	for ; x.next[v] < len(adj); x.next[v]++ {
		id := adj[x.next[v]]
		if id&1 != 0 || n.To(id) == n.Sink() || n.Flow(id) == 0 {
			continue
		}
		n.IncFlow(id, -1)

		return id, true
	}

	return -1, false
}

// step converts an action edge to its public form.
func (x *Extractor) step(id int) Step {
	return Step{ID: id / 2, From: x.net.From(id) - 1, To: x.net.To(id) - 1}
}

// acyclicPath walks one unit of circulation from the root until it returns
// through a closing edge. Without cycles among states every walk does.
func (x *Extractor) acyclicPath() Path {
	n := x.net
	root := n.Root()
	var path Path
	for v := root; ; {
		id, ok := x.advance(v)
		if !ok {
			panic(fmt.Errorf("%w: no flow leaves state %d", ErrUnbalanced, v-1))
		}
		to := n.To(id)
		if to == root {
			if n.IsActionEdge(id) {
				path = append(path, x.step(id))
			}
			return path
		}
		path = append(path, x.step(id))
		v = to
	}
}

// acyclicPaths yields count paths, one root unit each.
func (x *Extractor) acyclicPaths(count int) iter.Seq[Path] {
	yielded := 0
	return func(yield func(Path) bool) {
		for yielded < count {
			p := x.acyclicPath()
			yielded++
			if yielded == count {
				x.finish()
			}
			if !yield(p) {
				return
			}
		}
		x.finish()
	}
}

// finish marks the lifecycle done once the last path was produced.
func (x *Extractor) finish() {
	x.mu.Lock()
	x.stage = stageDone
	x.mu.Unlock()
}
