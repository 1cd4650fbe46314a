package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statecover/action"
	"github.com/katalvlaran/statecover/builder"
	"github.com/katalvlaran/statecover/network"
)

var step = action.MustNew(action.Location{Module: "Model", Line: 1})

// coverNetwork builds the path-cover reduction the extractor would build for
// states 0..states-1 (state 0 is the root) and the given action edges.
// It returns the network and the expected max-flow value.
func coverNetwork(t testing.TB, states int, edges [][2]int) (*network.Network, int) {
	t.Helper()
	n := network.New()
	n.AddNode(nil)
	for i := 0; i < states; i++ {
		n.AddNode(network.Fingerprint(i + 1))
	}
	for _, e := range edges {
		n.AddStateEdge(network.Fingerprint(e[0]+1), network.Fingerprint(e[1]+1), network.Inf, step)
	}
	n.AddNode(nil)
	n.Shutdown()

	diff := make([]int, n.NodeCount())
	for id := 0; id < n.EdgeCount(); id += 2 {
		diff[n.From(id)]--
		diff[n.To(id)]++
	}
	expected := 0
	for v := 0; v < n.NodeCount(); v++ {
		if v == n.Source() || v == n.Sink() {
			continue
		}
		if diff[v] > 0 {
			n.AddEdge(n.Source(), v, diff[v], nil)
			expected += diff[v]
		} else if diff[v] < 0 {
			n.AddEdge(v, n.Sink(), -diff[v], nil)
		}
		if v != n.Root() {
			n.AddEdge(v, n.Root(), network.Inf/2, nil)
		}
	}
	require.Equal(t, states+2, n.NodeCount())

	return n, expected
}

// randomDAG returns a seeded acyclic state graph, every state reachable from 0.
func randomDAG(t testing.TB, states int, p float64, seed int64) [][2]int {
	t.Helper()
	g, err := builder.RandomDAG(states, builder.WithSeed(seed), builder.WithDensity(p))
	require.NoError(t, err)

	return g.Pairs()
}

// randomCyclic adds back edges to a seeded random DAG.
func randomCyclic(t testing.TB, states int, p float64, seed int64) [][2]int {
	t.Helper()
	g, err := builder.RandomCyclic(states, builder.WithSeed(seed), builder.WithDensity(p), builder.WithSelfLoops(true))
	require.NoError(t, err)

	return g.Pairs()
}
