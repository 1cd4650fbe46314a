// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statecover/network"
)

// ErrNotShutDown is the panic cause when a solver is built on a network that
// is still accepting structural writes.
var ErrNotShutDown = errors.New("flow: network must be shut down before solving")

// ErrConservation reports a node whose inflow differs from its outflow.
var ErrConservation = errors.New("flow: conservation violated")

// ErrCapacity reports an edge whose flow leaves [0, capacity].
var ErrCapacity = errors.New("flow: capacity bound violated")

// MaxFlowSolver saturates source→sink.
type MaxFlowSolver interface {
	// FindMaxFlow pushes a maximum flow and returns its value.
	FindMaxFlow() int
}

func requireShutDown(n *network.Network) {
	if !n.IsShutDown() {
		panic(ErrNotShutDown)
	}
}

// Value is the total flow leaving the source.
func Value(n *network.Network) int {
	total := 0
	for _, id := range n.AdjacentEdgeIDs(n.Source()) {
		if id&1 == 0 {
			total += n.Flow(id)
		}
	}

	return total
}

// Validate checks capacity bounds on every physical edge and conservation at
// every node except source and sink.
func Validate(n *network.Network) error {
	balance := make([]int, n.NodeCount())
	for id := 0; id < n.EdgeCount(); id += 2 {
		e := n.Edge(id)
		if e.Flow < 0 || e.Flow > e.Capacity {
			return fmt.Errorf("%w: edge %d %d→%d flow %d capacity %d",
				ErrCapacity, id, e.From, e.To, e.Flow, e.Capacity)
		}
		balance[e.From] -= e.Flow
		balance[e.To] += e.Flow
	}
	for v, b := range balance {
		if v == n.Source() || v == n.Sink() {
			continue
		}
		if b != 0 {
			return fmt.Errorf("%w: node %d in−out = %d", ErrConservation, v, b)
		}
	}

	return nil
}
