// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/statecover/network"
)

// Dinic computes a maximum flow by level graphs and blocking flows.
//
// Steps:
//  1. BFS from the source over edges with residual capacity, assigning each
//     node its level; stop once the sink is labelled.
//  2. If the sink is unreachable, the flow is maximum.
//  3. Reset every node's resume pointer, then repeatedly DFS from the source
//     pushing along edges that go exactly one level up, until a DFS pushes
//     nothing (blocking flow).
//  4. Repeat from 1.
//
// The resume pointer makes each DFS skip edges already found exhausted in the
// current phase, so a phase costs O(V·E).
type Dinic struct {
	net   *network.Network
	level []int
	next  []int
	queue []int
}

// NewDinic prepares a Dinic solver for n.
func NewDinic(n *network.Network) *Dinic {
	requireShutDown(n)

	return &Dinic{
		net:   n,
		level: make([]int, n.NodeCount()),
		next:  make([]int, n.NodeCount()),
		queue: make([]int, 0, n.NodeCount()),
	}
}

// FindMaxFlow implements MaxFlowSolver.
func (d *Dinic) FindMaxFlow() int {
	total := 0
	for d.bfs() {
		for i := range d.next {
			d.next[i] = 0
		}
		for {
			pushed := d.dfs(d.net.Source(), network.Inf)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}

	return total
}

// bfs labels levels and reports whether the sink is reachable.
func (d *Dinic) bfs() bool {
	n := d.net
	for i := range d.level {
		d.level[i] = -1
	}
	source, sink := n.Source(), n.Sink()
	d.level[source] = 0
	d.queue = append(d.queue[:0], source)
	for i := 0; i < len(d.queue) && d.level[sink] < 0; i++ {
		u := d.queue[i]
		for _, id := range n.AdjacentEdgeIDs(u) {
			v := n.To(id)
			if d.level[v] < 0 && n.Residual(id) > 0 {
				d.level[v] = d.level[u] + 1
				d.queue = append(d.queue, v)
			}
		}
	}

	return d.level[sink] >= 0
}

// dfs pushes at most limit units from u toward the sink along the level
// graph and returns the amount actually sent.
func (d *Dinic) dfs(u, limit int) int {
	n := d.net
	if u == n.Sink() {
		return limit
	}
	adj := n.AdjacentEdgeIDs(u)
	for ; d.next[u] < len(adj); d.next[u]++ {
		id := adj[d.next[u]]
		v := n.To(id)
		residual := n.Residual(id)
		if residual <= 0 || d.level[v] != d.level[u]+1 {
			continue
		}
		pushed := d.dfs(v, min(limit, residual))
		if pushed > 0 {
			n.IncFlow(id, pushed)

			return pushed
		}
	}

	return 0
}
