// SPDX-License-Identifier: MIT

package reduce

import (
	"github.com/katalvlaran/statecover/network"
)

// PartialOrderReducer finds commuting diamonds in a shut-down network.
type PartialOrderReducer struct {
	net     *network.Network
	reduced int
}

// New returns a reducer over n.
func New(n *network.Network) *PartialOrderReducer {
	return &PartialOrderReducer{net: n}
}

// Reduce scans states in reverse discovery order and marks the closing edge
// of every commuting diamond it finds. It returns the number of edges newly
// marked by this call.
func (r *PartialOrderReducer) Reduce() int {
	n := r.net
	before := r.reduced
	for u := n.NodeCount() - 1; u >= 0; u-- {
		if u == n.Source() || u == n.Sink() {
			continue
		}
		r.diamondsFrom(u)
	}

	return r.reduced - before
}

// Reduced is the total number of edges marked so far.
func (r *PartialOrderReducer) Reduced() int { return r.reduced }

// diamondsFrom checks every ordered pair of action out-edges of u.
func (r *PartialOrderReducer) diamondsFrom(u int) {
	n := r.net
	adj := n.AdjacentEdgeIDs(u)
	for i := 0; i < len(adj)-1; i++ {
		ei := adj[i]
		if !forwardAction(n, ei) {
			continue
		}
		v := n.To(ei)
		if v == u || r.converging(v) {
			continue
		}
		for j := i + 1; j < len(adj); j++ {
			ej := adj[j]
			if !forwardAction(n, ej) {
				continue
			}
			w := n.To(ej)
			if w == u || w == v || r.converging(w) {
				continue
			}
			r.close(u, v, w, ei, ej)
		}
	}
}

// close marks w -a-> z for every v -b-> z, where a labels u→v and b labels u→w.
func (r *PartialOrderReducer) close(u, v, w, ei, ej int) {
	n := r.net
	a, b := n.ActionHash(ei), n.ActionHash(ej)
	for _, ek := range n.AdjacentEdgeIDs(v) {
		if !forwardAction(n, ek) || n.ActionHash(ek) != b || n.IsRedundant(ek) {
			continue
		}
		z := n.To(ek)
		if z == u || z == w || z == v {
			continue
		}
		for _, el := range n.AdjacentEdgeIDs(w) {
			if !forwardAction(n, el) || n.To(el) != z || n.ActionHash(el) != a {
				continue
			}
			if n.MarkAsRedundant(el) {
				r.reduced++
			}
		}
	}
}

// converging reports whether v is entered by more than one action edge, in
// which case v also belongs to an unrelated convergence that a mark below it
// could break.
func (r *PartialOrderReducer) converging(v int) bool {
	n := r.net
	count := 0
	for _, id := range n.AdjacentEdgeIDs(v) {
		if id&1 == 1 && n.IsActionEdge(id) {
			if count++; count > 1 {
				return true
			}
		}
	}

	return false
}

func forwardAction(n *network.Network, id int) bool {
	return id&1 == 0 && n.IsActionEdge(id)
}
