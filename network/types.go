// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, the State contract and the read-only Edge view.

package network

import (
	"errors"
	"math"

	"github.com/katalvlaran/statecover/action"
)

// Inf is the capacity used for unbounded edges.
const Inf = math.MaxInt32

var (
	// ErrShutDown is the panic value cause when a shut-down network is mutated.
	ErrShutDown = errors.New("network: already shut down")

	// ErrNodeOutOfRange reports an edge endpoint that is not a node id.
	ErrNodeOutOfRange = errors.New("network: node id out of range")

	// ErrEdgeOutOfRange reports a logical edge id that does not exist.
	ErrEdgeOutOfRange = errors.New("network: edge id out of range")

	// ErrBadCapacity reports a negative capacity.
	ErrBadCapacity = errors.New("network: capacity must be non-negative")

	// ErrFlowBounds reports a flow update leaving [0, capacity].
	ErrFlowBounds = errors.New("network: flow out of bounds")

	// ErrNilState reports a nil state passed where a fingerprint is needed.
	ErrNilState = errors.New("network: state is nil")
)

// State is anything with a stable 64-bit fingerprint.
type State interface {
	Fingerprint() uint64
}

// Fingerprint is a bare fingerprint usable as a State.
type Fingerprint uint64

// Fingerprint implements State.
func (f Fingerprint) Fingerprint() uint64 { return uint64(f) }

// Edge is a value snapshot of one logical edge orientation.
type Edge struct {
	// ID is the logical edge id (2k forward, 2k+1 backward).
	ID int

	// From and To are node ids in this orientation.
	From, To int

	// Flow is the orientation's effective flow.
	Flow int

	// Capacity is shared by both orientations.
	Capacity int

	// Action is set on the forward orientation of action edges only.
	Action *action.ConcreteAction

	// Redundant marks an action edge excluded from mandatory coverage.
	Redundant bool
}

// Forward reports whether e is the forward orientation.
func (e Edge) Forward() bool { return e.ID&1 == 0 }

// Twin is the logical id of the opposite orientation.
func (e Edge) Twin() int { return e.ID ^ 1 }

// Index is the physical record index shared by both orientations.
func (e Edge) Index() int { return e.ID >> 1 }

// Residual is the capacity still available in this orientation.
func (e Edge) Residual() int { return e.Capacity - e.Flow }

// HasAction reports whether e is the forward orientation of an action edge.
func (e Edge) HasAction() bool { return e.Action != nil }
