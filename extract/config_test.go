package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statecover/extract"
)

func TestParseConfig(t *testing.T) {
	c, err := extract.ParseConfig([]byte(`
solver: push-relabel
search_depth: 12
max_optimizer_depth: 4
partial_order_reduction: false
`))
	require.NoError(t, err)
	assert.Equal(t, "push-relabel", c.Solver)
	assert.Equal(t, 12, c.SearchDepth)
	assert.Equal(t, 4, c.MaxOptimizerDepth)
	require.NotNil(t, c.PartialOrderReduction)
	assert.False(t, *c.PartialOrderReduction)
	assert.Len(t, c.Options(), 4)
}

func TestParseConfigEmpty(t *testing.T) {
	c, err := extract.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, extract.Config{}, c)

	_, err = extract.New(c.Options()...)
	require.NoError(t, err)
}

func TestParseConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"UnknownSolver": "solver: simplex\n",
		"UnknownKey":    "solvr: dinic\n",
		"NegativeDepth": "search_depth: -2\n",
		"NegativeMax":   "max_optimizer_depth: -1\n",
		"Malformed":     "solver: [dinic\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := extract.ParseConfig([]byte(doc))
			require.ErrorIs(t, err, extract.ErrConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statecover.yaml")
	require.NoError(t, os.WriteFile(path, []byte("partial_order_reduction: false\n"), 0o600))

	c, err := extract.LoadConfig(path)
	require.NoError(t, err)

	edges := []edge{{0, 1, actA}, {0, 2, actB}, {1, 3, actB}, {2, 3, actA}}
	x, _ := run(t, 4, edges, c.Options()...)
	assert.Zero(t, x.RedundantCount())

	_, err = extract.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseSolver(t *testing.T) {
	for name, want := range map[string]extract.Solver{
		"":             extract.SolverDinic,
		"dinic":        extract.SolverDinic,
		"push-relabel": extract.SolverPushRelabel,
	} {
		got, err := extract.ParseSolver(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, "solver(9)", extract.Solver(9).String())
}
