package extract_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statecover/action"
	"github.com/katalvlaran/statecover/builder"
	"github.com/katalvlaran/statecover/extract"
	"github.com/katalvlaran/statecover/network"
)

// edge is a test action edge between state indices.
type edge struct {
	from, to int
	act      *action.ConcreteAction
}

func act(name string, args ...any) *action.ConcreteAction {
	return action.MustNew(action.Location{Module: name, Line: 1, Column: 1}, args...)
}

var (
	actA = act("A")
	actB = act("B")
)

func state(i int) network.State { return network.Fingerprint(1000 + i) }

// plain labels every edge with a distinct action.
func plain(pairs ...[2]int) []edge {
	edges := make([]edge, len(pairs))
	for i, p := range pairs {
		edges[i] = edge{p[0], p[1], act("E", i)}
	}
	return edges
}

// run builds an extractor over states 0..states-1 and collects its paths.
func run(t testing.TB, states int, edges []edge, opts ...extract.Option) (*extract.Extractor, []extract.Path) {
	t.Helper()
	x, err := extract.New(opts...)
	require.NoError(t, err)
	for i := 0; i < states; i++ {
		require.Equal(t, i, x.AddState(state(i)))
	}
	for i, e := range edges {
		require.Equal(t, i, x.AddAction(state(e.from), state(e.to), e.act))
	}
	seq, err := x.ExtractPaths(context.Background())
	require.NoError(t, err)

	return x, slices.Collect(seq)
}

// requireWellFormed checks every path starts at the root and chains, that
// the counters agree with the paths, and returns traversals per action id.
func requireWellFormed(t testing.TB, x *extract.Extractor, paths []extract.Path) map[int]int {
	t.Helper()
	require.Len(t, paths, x.PathCount())
	seen := map[int]int{}
	total := 0
	for i, p := range paths {
		require.NotEmpty(t, p, "path %d", i)
		require.Equal(t, 0, p[0].From, "path %d starts at the root", i)
		for j := 1; j < len(p); j++ {
			require.Equal(t, p[j-1].To, p[j].From, "path %d step %d", i, j)
		}
		for _, s := range p {
			seen[s.ID]++
		}
		total += len(p)
	}
	require.Equal(t, x.TotalLength(), total)

	return seen
}

// requireCovered checks every action id in [0, actions) except skip is
// traversed at least once.
func requireCovered(t testing.TB, seen map[int]int, actions int, skip ...int) {
	t.Helper()
	for id := 0; id < actions; id++ {
		if slices.Contains(skip, id) {
			continue
		}
		require.Positive(t, seen[id], "action %d not covered", id)
	}
}

// randomGraph returns a seeded random state graph with back extra back
// edges (self-loops included) and a few shared labels, so that commuting
// diamonds occur.
func randomGraph(t testing.TB, states int, p float64, back int, seed int64) []edge {
	t.Helper()
	g, err := builder.RandomCyclic(states,
		builder.WithSeed(seed),
		builder.WithDensity(p),
		builder.WithBackEdges(back),
		builder.WithSelfLoops(true),
	)
	require.NoError(t, err)
	edges := plain(g.Pairs()...)
	r := rand.New(rand.NewSource(seed))
	for i := range edges {
		if r.Intn(3) == 0 {
			edges[i].act = act("Shared", r.Intn(3))
		}
	}

	return edges
}

// recoverErr runs fn and returns the error it panicked with.
func recoverErr(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	fn()
	return nil
}

func requirePanicIs(t testing.TB, target error, fn func()) {
	t.Helper()
	err := recoverErr(fn)
	require.Error(t, err, "expected a panic")
	require.True(t, errors.Is(err, target), "panic %v is not %v", err, target)
}
