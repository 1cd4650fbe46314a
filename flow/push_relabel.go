// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/statecover/network"
)

// PushRelabel computes a maximum flow with the FIFO push–relabel method.
//
// The source starts at height V with unbounded excess and pre-saturates its
// edges. Active nodes (positive excess, not source or sink) are discharged in
// FIFO order: push along admissible edges (residual capacity left and height
// exactly downhill), relabel to one above the lowest residual neighbour when
// none remains. Excess that cannot reach the sink drains back to the source.
type PushRelabel struct {
	net    *network.Network
	height []int
	excess []int64
	next   []int
	queue  []int
}

// NewPushRelabel prepares a PushRelabel solver for n and performs the
// initial saturating pushes out of the source.
func NewPushRelabel(n *network.Network) *PushRelabel {
	requireShutDown(n)

	nodes := n.NodeCount()
	p := &PushRelabel{
		net:    n,
		height: make([]int, nodes),
		excess: make([]int64, nodes),
		next:   make([]int, nodes),
	}
	source := n.Source()
	p.height[source] = nodes
	p.excess[source] = network.Inf
	for _, id := range n.AdjacentEdgeIDs(source) {
		p.push(id)
	}

	return p
}

// FindMaxFlow implements MaxFlowSolver.
func (p *PushRelabel) FindMaxFlow() int {
	n := p.net
	for len(p.queue) > 0 {
		u := p.queue[0]
		p.queue = p.queue[1:]
		if u != n.Source() && u != n.Sink() {
			p.discharge(u)
		}
	}

	return int(p.excess[n.Sink()])
}

func (p *PushRelabel) push(id int) {
	n := p.net
	u, v := n.From(id), n.To(id)
	d := min(p.excess[u], int64(n.Residual(id)))
	if d <= 0 {
		return
	}
	n.IncFlow(id, int(d))
	p.excess[u] -= d
	p.excess[v] += d
	if p.excess[v] == d {
		p.queue = append(p.queue, v)
	}
}

func (p *PushRelabel) relabel(u int) {
	n := p.net
	lowest := -1
	for _, id := range n.AdjacentEdgeIDs(u) {
		if n.Residual(id) > 0 {
			if h := p.height[n.To(id)]; lowest < 0 || h < lowest {
				lowest = h
			}
		}
	}
	if lowest >= 0 {
		p.height[u] = lowest + 1
	}
}

func (p *PushRelabel) discharge(u int) {
	n := p.net
	adj := n.AdjacentEdgeIDs(u)
	for p.excess[u] > 0 {
		if p.next[u] == len(adj) {
			p.relabel(u)
			p.next[u] = 0

			continue
		}
		id := adj[p.next[u]]
		if n.Residual(id) > 0 && p.height[u] > p.height[n.To(id)] {
			p.push(id)
		} else {
			p.next[u]++
		}
	}
}
