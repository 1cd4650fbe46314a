// SPDX-License-Identifier: MIT

package optimize

import (
	"context"

	"github.com/katalvlaran/statecover/network"
)

// BFS cancels root cycles found by breadth-first search over the residual
// network until none is left.
//
// A search starts on the backward twins of the root's incoming edges that
// still carry flow, never re-enters the root through a forward edge, and
// stops as soon as the root is reached again. The cycle is then augmented by
// one unit. Every augmentation lowers the extra traversals of one root
// out-edge, so the loop terminates.
type BFS struct {
	net    *network.Network
	parent []int
	queue  []int
	// cycles counts cancelled cycles by their number of forward edges.
	cycles map[int]int
}

// NewBFS prepares the exact optimizer for n.
func NewBFS(n *network.Network) *BFS {
	return &BFS{
		net:    n,
		parent: make([]int, n.NodeCount()),
		queue:  make([]int, 0, n.NodeCount()),
		cycles: make(map[int]int),
	}
}

// OptimizePaths implements NetworkPathOptimizer.
func (b *BFS) OptimizePaths(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !b.cancelCycle() {
			return nil
		}
	}
}

// Cycles reports how many cycles of each forward length were cancelled.
func (b *BFS) Cycles() map[int]int {
	out := make(map[int]int, len(b.cycles))
	for k, v := range b.cycles {
		out[k] = v
	}

	return out
}

func (b *BFS) cancelCycle() bool {
	n := b.net
	root := n.Root()
	for i := range b.parent {
		b.parent[i] = unreached
	}
	b.queue = b.queue[:0]
	for _, id := range n.AdjacentEdgeIDs(root) {
		if id&1 == 0 || n.Residual(id) <= 0 {
			continue
		}
		if v := n.To(id); b.parent[v] == unreached {
			b.parent[v] = id
			b.queue = append(b.queue, v)
		}
	}

	for i := 0; i < len(b.queue) && b.parent[root] == unreached; i++ {
		u := b.queue[i]
		for _, id := range n.AdjacentEdgeIDs(u) {
			v := n.To(id)
			if v == root && id&1 == 0 {
				continue
			}
			if b.parent[v] == unreached && n.Residual(id) > 0 {
				b.parent[v] = id
				b.queue = append(b.queue, v)
			}
		}
	}
	if b.parent[root] == unreached {
		return false
	}

	forward := 0
	for cur := root; ; {
		id := b.parent[cur]
		n.IncFlow(id, 1)
		if id&1 == 0 {
			forward++
		}
		if cur = n.From(id); cur == root {
			break
		}
	}
	b.cycles[forward]++

	return true
}
