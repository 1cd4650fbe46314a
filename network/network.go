// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network storage, node lifecycle, shutdown and size queries.
// Concurrency:
//   - mu guards every slice and the fingerprint index during building.
//   - registered is signalled on each fingerprint registration.

package network

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/statecover/action"
)

// Network is the incrementally built state/transition flow network.
type Network struct {
	mu         sync.Mutex
	registered *sync.Cond

	adj [][]int // node id → logical edge ids with that node as tail

	// physical edge k: forward id 2k, backward id 2k+1
	from      []int32
	to        []int32
	flow      []int32
	capacity  []int32
	actions   []*action.ConcreteAction
	hashes    []uint64
	redundant []bool

	fpToID   map[uint64]int
	shutDown bool
}

// New returns an empty network. The caller adds the source first.
func New() *Network {
	n := &Network{fpToID: make(map[uint64]int)}
	n.registered = sync.NewCond(&n.mu)

	return n
}

// Source is the id of the flow source.
func (n *Network) Source() int { return 0 }

// Root is the id of the root sentinel: the first registered state.
func (n *Network) Root() int { return 1 }

// Sink is the id of the flow sink: the last node.
func (n *Network) Sink() int { return n.NodeCount() - 1 }

// AddNode appends a node and returns its id. A non-nil state registers its
// fingerprint and wakes goroutines blocked in AddStateEdge; a state seen
// before returns the existing id. A nil state always creates a fresh node.
// Panics with ErrShutDown after Shutdown.
func (n *Network) AddNode(s State) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ensureNotShutDown("AddNode")

	if s != nil {
		if id, ok := n.fpToID[s.Fingerprint()]; ok {
			return id
		}
	}
	id := len(n.adj)
	n.adj = append(n.adj, make([]int, 0, 4))
	if s != nil {
		n.fpToID[s.Fingerprint()] = id
		n.registered.Broadcast()
	}

	return id
}

// Lookup returns the node id registered for fingerprint fp.
func (n *Network) Lookup(fp uint64) (int, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id, ok := n.fpToID[fp]

	return id, ok
}

// Shutdown freezes the node set and releases the fingerprint index.
// Synthetic edges may still be added with AddEdge afterwards.
// Panics with ErrShutDown when called twice.
func (n *Network) Shutdown() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ensureNotShutDown("Shutdown")

	n.shutDown = true
	n.fpToID = nil
	// blocked AddStateEdge callers must observe the shutdown
	n.registered.Broadcast()
}

// IsShutDown reports whether Shutdown was called.
func (n *Network) IsShutDown() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.shutDown
}

// NodeCount is the number of nodes, source and sink included.
func (n *Network) NodeCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.adj)
}

// EdgeCount is the number of logical edges (twice the physical records).
func (n *Network) EdgeCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return 2 * len(n.from)
}

// EnsureEdgeCapacity grows the edge slices so that the given number of
// additional logical edges fits without reallocation.
func (n *Network) EnsureEdgeCapacity(logical int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	extra := (logical + 1) / 2
	if cap(n.from)-len(n.from) >= extra {
		return
	}
	size := len(n.from) + extra
	n.from = grow(n.from, size)
	n.to = grow(n.to, size)
	n.flow = grow(n.flow, size)
	n.capacity = grow(n.capacity, size)
	n.hashes = grow(n.hashes, size)
	n.redundant = grow(n.redundant, size)
	n.actions = grow(n.actions, size)
}

func grow[T any](s []T, size int) []T {
	out := make([]T, len(s), size)
	copy(out, s)

	return out
}

// ensureNotShutDown must be called with mu held.
func (n *Network) ensureNotShutDown(op string) {
	if n.shutDown {
		panic(fmt.Errorf("%w: %s", ErrShutDown, op))
	}
}
