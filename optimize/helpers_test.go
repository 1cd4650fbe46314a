package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statecover/action"
	"github.com/katalvlaran/statecover/builder"
	"github.com/katalvlaran/statecover/network"
)

var step = action.MustNew(action.Location{Module: "Model", Line: 7})

// coverNetwork builds a shut-down path-cover reduction over states
// 0..states-1 (0 is the root) without any flow.
func coverNetwork(t testing.TB, states int, edges [][2]int) *network.Network {
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
	for v := 1; v < n.Sink(); v++ {
		if diff[v] > 0 {
			n.AddEdge(n.Source(), v, diff[v], nil)
		} else if diff[v] < 0 {
			n.AddEdge(v, n.Sink(), -diff[v], nil)
		}
		if v != n.Root() {
			n.AddEdge(v, n.Root(), network.Inf/2, nil)
		}
	}

	return n
}

// randomDAG returns a seeded acyclic state graph rooted at state 0.
func randomDAG(t testing.TB, states int, p float64, seed int64) [][2]int {
	t.Helper()
	g, err := builder.RandomDAG(states, builder.WithSeed(seed), builder.WithDensity(p))
	require.NoError(t, err)

	return g.Pairs()
}

// pathCount is the number of root circuits the flow encodes.
func pathCount(n *network.Network) int {
	count := 0
	for id := 0; id < n.EdgeCount(); id += 2 {
		e := n.Edge(id)
		if e.To != n.Root() || e.From == n.Source() {
			continue
		}
		count += e.Flow
		if e.HasAction() {
			count++
		}
	}

	return count
}
