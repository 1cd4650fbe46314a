package network_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/statecover/action"
	"github.com/katalvlaran/statecover/network"
)

// NetworkSuite exercises storage, twin-edge bookkeeping and lifecycle rules.
type NetworkSuite struct {
	suite.Suite
	net *network.Network
}

func (s *NetworkSuite) SetupTest() {
	s.net = network.New()
	s.net.AddNode(nil) // source
}

// TestNodeIDsAndDedup checks dense ids and fingerprint deduplication.
func (s *NetworkSuite) TestNodeIDsAndDedup() {
	a := s.net.AddNode(network.Fingerprint(10))
	b := s.net.AddNode(network.Fingerprint(20))
	again := s.net.AddNode(network.Fingerprint(10))
	fresh := s.net.AddNode(nil)

	require.Equal(s.T(), 1, a)
	require.Equal(s.T(), 2, b)
	require.Equal(s.T(), a, again)
	require.Equal(s.T(), 3, fresh)
	require.Equal(s.T(), 4, s.net.NodeCount())
	require.Equal(s.T(), 3, s.net.Sink())
	require.Equal(s.T(), 1, s.net.Root())

	id, ok := s.net.Lookup(20)
	require.True(s.T(), ok)
	require.Equal(s.T(), b, id)
	_, ok = s.net.Lookup(99)
	require.False(s.T(), ok)
}

// TestTwinEdges verifies the forward/backward views share one flow field.
func (s *NetworkSuite) TestTwinEdges() {
	u := s.net.AddNode(network.Fingerprint(1))
	v := s.net.AddNode(network.Fingerprint(2))
	act := action.MustNew(action.Location{Module: "M", Line: 3}, 7)

	id := s.net.AddEdge(u, v, 5, act)
	require.Equal(s.T(), 0, id)
	require.Equal(s.T(), 2, s.net.EdgeCount())
	require.Equal(s.T(), []int{0}, s.net.AdjacentEdgeIDs(u))
	require.Equal(s.T(), []int{1}, s.net.AdjacentEdgeIDs(v))

	s.net.IncFlow(id, 3)
	fwd, bck := s.net.Edge(id), s.net.Edge(id^1)

	require.True(s.T(), fwd.Forward())
	require.Equal(s.T(), u, fwd.From)
	require.Equal(s.T(), v, fwd.To)
	require.Equal(s.T(), 3, fwd.Flow)
	require.Equal(s.T(), 2, fwd.Residual())
	require.Same(s.T(), act, fwd.Action)

	require.False(s.T(), bck.Forward())
	require.Equal(s.T(), v, bck.From)
	require.Equal(s.T(), u, bck.To)
	require.Equal(s.T(), 2, bck.Flow)
	require.Equal(s.T(), 3, bck.Residual())
	require.Nil(s.T(), bck.Action)
	require.Equal(s.T(), fwd.Index(), bck.Index())
	require.Equal(s.T(), bck.ID, fwd.Twin())

	// pushing on the backward view cancels forward flow
	s.net.IncFlow(id^1, 2)
	require.Equal(s.T(), 1, s.net.Flow(id))
	require.Equal(s.T(), 4, s.net.Flow(id^1))
	require.Equal(s.T(), 4, s.net.Residual(id))
	require.Equal(s.T(), 1, s.net.Residual(id^1))
	require.Equal(s.T(), u, s.net.From(id))
	require.Equal(s.T(), u, s.net.To(id^1))

	require.True(s.T(), s.net.IsActionEdge(id))
	require.True(s.T(), s.net.IsActionEdge(id^1))
	require.Equal(s.T(), act.Hash(), s.net.ActionHash(id^1))
}

// TestFlowBounds ensures flow can never leave [0, capacity].
func (s *NetworkSuite) TestFlowBounds() {
	u := s.net.AddNode(network.Fingerprint(1))
	v := s.net.AddNode(network.Fingerprint(2))
	id := s.net.AddEdge(u, v, 2, nil)

	requirePanicIs(s.T(), network.ErrFlowBounds, func() { s.net.IncFlow(id, 3) })
	requirePanicIs(s.T(), network.ErrFlowBounds, func() { s.net.IncFlow(id, -1) })
	requirePanicIs(s.T(), network.ErrFlowBounds, func() { s.net.IncFlow(id^1, 1) })
	require.Equal(s.T(), 0, s.net.Flow(id))
}

// TestRedundancyMarks covers MarkAsRedundant semantics.
func (s *NetworkSuite) TestRedundancyMarks() {
	u := s.net.AddNode(network.Fingerprint(1))
	v := s.net.AddNode(network.Fingerprint(2))
	act := s.net.AddEdge(u, v, network.Inf, action.MustNew(action.Location{Module: "M", Line: 1}))
	synthetic := s.net.AddEdge(v, u, 1, nil)

	require.False(s.T(), s.net.MarkAsRedundant(synthetic))
	require.True(s.T(), s.net.MarkAsRedundant(act^1))
	require.False(s.T(), s.net.MarkAsRedundant(act))
	require.True(s.T(), s.net.IsRedundant(act))
	require.True(s.T(), s.net.Edge(act).Redundant)
	require.False(s.T(), s.net.IsRedundant(synthetic))
}

// TestShutdown covers the lifecycle guard.
func (s *NetworkSuite) TestShutdown() {
	u := s.net.AddNode(network.Fingerprint(1))
	v := s.net.AddNode(network.Fingerprint(2))
	s.net.Shutdown()
	require.True(s.T(), s.net.IsShutDown())

	requirePanicIs(s.T(), network.ErrShutDown, func() { s.net.AddNode(nil) })
	requirePanicIs(s.T(), network.ErrShutDown, func() { s.net.Shutdown() })
	requirePanicIs(s.T(), network.ErrShutDown, func() {
		s.net.AddStateEdge(network.Fingerprint(1), network.Fingerprint(2), 1, nil)
	})

	// synthetic topology is still allowed
	id := s.net.AddEdge(u, v, 1, nil)
	require.Equal(s.T(), 0, id)
}

// TestInvalidArguments covers programming errors on insertion and lookup.
func (s *NetworkSuite) TestInvalidArguments() {
	u := s.net.AddNode(network.Fingerprint(1))

	requirePanicIs(s.T(), network.ErrNodeOutOfRange, func() { s.net.AddEdge(u, 42, 1, nil) })
	requirePanicIs(s.T(), network.ErrBadCapacity, func() { s.net.AddEdge(u, u, -1, nil) })
	requirePanicIs(s.T(), network.ErrEdgeOutOfRange, func() { s.net.Edge(0) })

	_, err := s.net.AddStateEdgeContext(context.TODO(), nil, network.Fingerprint(1), 1, nil)
	require.ErrorIs(s.T(), err, network.ErrNilState)
}

// TestEnsureEdgeCapacity keeps existing edges intact while growing.
func (s *NetworkSuite) TestEnsureEdgeCapacity() {
	u := s.net.AddNode(network.Fingerprint(1))
	v := s.net.AddNode(network.Fingerprint(2))
	id := s.net.AddEdge(u, v, 4, nil)
	s.net.IncFlow(id, 1)

	s.net.EnsureEdgeCapacity(1000)
	for i := 0; i < 400; i++ {
		s.net.AddEdge(v, u, 1, nil)
	}
	require.Equal(s.T(), 802, s.net.EdgeCount())
	require.Equal(s.T(), 1, s.net.Flow(id))
	require.Equal(s.T(), 4, s.net.Edge(id).Capacity)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

// requirePanicIs asserts fn panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}
