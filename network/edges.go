// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: edge insertion (synthetic and fingerprint-resolved), edge views,
//       adjacency, flow updates and redundancy marks.

package network

import (
	"context"
	"fmt"

	"github.com/katalvlaran/statecover/action"
)

// AddEdge appends an edge from→to with the given capacity and returns its
// forward logical id. A nil act makes a synthetic edge. Allowed after
// Shutdown so the extractor can append balancing and closing edges.
func (n *Network) AddEdge(from, to, capacity int, act *action.ConcreteAction) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.addEdgeLocked(from, to, capacity, act)
}

// AddStateEdge resolves both endpoints by fingerprint and appends an action
// edge. It waits, without timeout, until both fingerprints are registered.
// Panics with ErrShutDown if the network is or becomes shut down.
func (n *Network) AddStateEdge(from, to State, capacity int, act *action.ConcreteAction) int {
	id, err := n.AddStateEdgeContext(context.Background(), from, to, capacity, act)
	if err != nil {
		panic(err)
	}

	return id
}

// AddStateEdgeContext is AddStateEdge with a bounded wait: it returns
// ctx.Err() wrapped when ctx ends before both endpoints exist.
func (n *Network) AddStateEdgeContext(
	ctx context.Context,
	from, to State,
	capacity int,
	act *action.ConcreteAction,
) (int, error) {
	if from == nil || to == nil {
		return -1, ErrNilState
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// wake the waiter below when ctx ends; Broadcast needs mu to avoid a lost wakeup
	stop := context.AfterFunc(ctx, func() {
		n.mu.Lock()
		n.registered.Broadcast()
		n.mu.Unlock()
	})
	defer stop()

	fromFP, toFP := from.Fingerprint(), to.Fingerprint()

	n.mu.Lock()
	defer n.mu.Unlock()
	for {
		n.ensureNotShutDown("AddStateEdge")
		u, okFrom := n.fpToID[fromFP]
		v, okTo := n.fpToID[toFP]
		if okFrom && okTo {
			return n.addEdgeLocked(u, v, capacity, act), nil
		}
		if err := ctx.Err(); err != nil {
			return -1, fmt.Errorf("network: waiting for %016x→%016x: %w", fromFP, toFP, err)
		}
		n.registered.Wait()
	}
}

func (n *Network) addEdgeLocked(from, to, capacity int, act *action.ConcreteAction) int {
	if from < 0 || from >= len(n.adj) || to < 0 || to >= len(n.adj) {
		panic(fmt.Errorf("%w: %d→%d with %d nodes", ErrNodeOutOfRange, from, to, len(n.adj)))
	}
	if capacity < 0 || capacity > Inf {
		panic(fmt.Errorf("%w: %d", ErrBadCapacity, capacity))
	}

	id := 2 * len(n.from)
	n.from = append(n.from, int32(from))
	n.to = append(n.to, int32(to))
	n.flow = append(n.flow, 0)
	n.capacity = append(n.capacity, int32(capacity))
	n.actions = append(n.actions, act)
	var h uint64
	if act != nil {
		h = act.Hash()
	}
	n.hashes = append(n.hashes, h)
	n.redundant = append(n.redundant, false)

	n.adj[from] = append(n.adj[from], id)
	n.adj[to] = append(n.adj[to], id+1)

	return id
}

// Edge returns a snapshot of logical edge id.
func (n *Network) Edge(id int) Edge {
	k := n.index(id)
	e := Edge{
		ID:        id,
		Capacity:  int(n.capacity[k]),
		Redundant: n.redundant[k],
	}
	if id&1 == 0 {
		e.From, e.To = int(n.from[k]), int(n.to[k])
		e.Flow = int(n.flow[k])
		e.Action = n.actions[k]
	} else {
		e.From, e.To = int(n.to[k]), int(n.from[k])
		e.Flow = int(n.capacity[k] - n.flow[k])
	}

	return e
}

// From is the tail of logical edge id.
func (n *Network) From(id int) int {
	k := n.index(id)
	if id&1 == 0 {
		return int(n.from[k])
	}

	return int(n.to[k])
}

// To is the head of logical edge id.
func (n *Network) To(id int) int {
	k := n.index(id)
	if id&1 == 0 {
		return int(n.to[k])
	}

	return int(n.from[k])
}

// Flow is the effective flow of logical edge id.
func (n *Network) Flow(id int) int {
	k := n.index(id)
	if id&1 == 0 {
		return int(n.flow[k])
	}

	return int(n.capacity[k] - n.flow[k])
}

// Residual is Capacity − Flow of logical edge id.
func (n *Network) Residual(id int) int {
	k := n.index(id)
	if id&1 == 0 {
		return int(n.capacity[k] - n.flow[k])
	}

	return int(n.flow[k])
}

// IsActionEdge reports whether the physical record behind id carries an
// action, whatever the orientation of id.
func (n *Network) IsActionEdge(id int) bool { return n.actions[n.index(id)] != nil }

// ActionHash is the action hash of the physical record behind id, or 0.
func (n *Network) ActionHash(id int) uint64 { return n.hashes[n.index(id)] }

// AdjacentEdgeIDs lists the logical edges whose tail is node, in insertion
// order. The returned slice is owned by the network and must not be modified.
func (n *Network) AdjacentEdgeIDs(node int) []int { return n.adj[node] }

// IncFlow adds delta to the effective flow of logical edge id; the twin's
// effective flow moves by −delta. Panics with ErrFlowBounds if the flow would
// leave [0, capacity].
func (n *Network) IncFlow(id, delta int) {
	k := n.index(id)
	if id&1 != 0 {
		delta = -delta
	}
	f := int(n.flow[k]) + delta
	if f < 0 || f > int(n.capacity[k]) {
		panic(fmt.Errorf("%w: edge %d flow %d+%d, capacity %d",
			ErrFlowBounds, id, n.flow[k], delta, n.capacity[k]))
	}
	n.flow[k] = int32(f)
}

// MarkAsRedundant flags the physical record behind id as redundant.
// It reports false if the record was already marked or carries no action.
func (n *Network) MarkAsRedundant(id int) bool {
	k := n.index(id)
	if n.actions[k] == nil || n.redundant[k] {
		return false
	}
	n.redundant[k] = true

	return true
}

// IsRedundant reports whether the physical record behind id is redundant.
func (n *Network) IsRedundant(id int) bool { return n.redundant[n.index(id)] }

func (n *Network) index(id int) int {
	k := id >> 1
	if id < 0 || k >= len(n.from) {
		panic(fmt.Errorf("%w: %d of %d", ErrEdgeOutOfRange, id, 2*len(n.from)))
	}

	return k
}
