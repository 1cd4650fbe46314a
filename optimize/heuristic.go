// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/statecover/network"
)

// MaxDepth is the largest depth worth configuring for Heuristic.
const MaxDepth = 8

// Heuristic cancels root cycles of bounded "backtrack" length.
//
// Walking a forward action edge that carries extra traversals costs 0,
// walking an action edge backwards (adding a traversal) costs 1. Pass d
// computes 0/1 distances from the root and only follows edges that keep the
// distance exact and at most d; every cycle it closes through a closing edge
// removes one path per unit. Passes stop at depth, or earlier once a pass
// changes nothing and no state lies beyond its distance bound.
type Heuristic struct {
	net      *network.Network
	depth    int
	distance []int
	next     []int
	far      int
}

// NewHeuristic prepares a bounded-depth optimizer for n.
func NewHeuristic(n *network.Network, depth int) (*Heuristic, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrDepth, depth)
	}

	return &Heuristic{
		net:      n,
		depth:    depth,
		distance: make([]int, n.NodeCount()),
		next:     make([]int, n.NodeCount()),
	}, nil
}

// OptimizePaths implements NetworkPathOptimizer.
func (h *Heuristic) OptimizePaths(ctx context.Context) error {
	for d := 1; d <= h.depth; d++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.distances()
		for i := range h.next {
			h.next[i] = 0
		}
		progress := false
		for h.cancel(h.net.Root(), network.Inf, d) != 0 {
			progress = true
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if !progress && h.far <= d {
			break
		}
	}

	return nil
}

// usable reports whether the 0/1 search may walk id.
func (h *Heuristic) usable(id int) bool {
	return h.net.Flow(id) > 0 && h.net.IsActionEdge(id)
}

// distances runs a 0/1 BFS from the root; far is the largest finite distance.
func (h *Heuristic) distances() {
	n := h.net
	for i := range h.distance {
		h.distance[i] = math.MaxInt
	}
	root := n.Root()
	h.distance[root] = 0
	h.far = 0

	level, current := 0, []int{root}
	for len(current) > 0 {
		var next []int
		for len(current) > 0 {
			u := current[len(current)-1]
			current = current[:len(current)-1]
			if h.distance[u] != level {
				continue
			}
			h.far = level
			for _, id := range n.AdjacentEdgeIDs(u) {
				if !h.usable(id) {
					continue
				}
				v, w := n.To(id), id&1
				if level+w >= h.distance[v] {
					continue
				}
				h.distance[v] = level + w
				if w == 0 {
					current = append(current, v)
				} else {
					next = append(next, v)
				}
			}
		}
		current = next
		level++
	}
}

// cancel looks for a cycle from u back to the root and removes up to limit
// units along it; it returns the amount removed.
func (h *Heuristic) cancel(u, limit, bound int) int {
	n := h.net
	root := n.Root()
	adj := n.AdjacentEdgeIDs(u)
	for ; h.next[u] < len(adj); h.next[u]++ {
		id := adj[h.next[u]]
		f := n.Flow(id)
		if f == 0 {
			continue
		}
		v := n.To(id)
		if id&1 == 0 && v == root && !n.IsActionEdge(id) {
			df := min(limit, f)
			n.IncFlow(id, -df)

			return df
		}
		if !n.IsActionEdge(id) || v == u {
			continue
		}
		if h.distance[v] > bound || h.distance[u]+(id&1) != h.distance[v] {
			continue
		}
		if df := h.cancel(v, min(limit, f), bound); df > 0 {
			n.IncFlow(id, -df)

			return df
		}
	}

	return 0
}
