package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/search"
)

func TestCatalog(t *testing.T) {
	infos := search.Catalog()
	require.Len(t, infos, 4)

	ids := make([]string, 0, len(infos))
	for i, info := range infos {
		assert.Equal(t, search.Algorithm(i), info.Algorithm)
		assert.Equal(t, info.Algorithm.String(), info.ID)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{"bfs", "dfs", "dijkstra", "astar"}, ids)

	assert.False(t, search.DFS.Info().GuaranteesShortestPath)
	assert.True(t, search.AStar.Info().Weighted)
	assert.False(t, search.BFS.Info().Weighted)

	// callers get a copy
	infos[0].ID = "mutated"
	assert.Equal(t, "bfs", search.Catalog()[0].ID)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs":       search.BFS,
		"DFS":       search.DFS,
		" Dijkstra": search.Dijkstra,
		"astar":     search.AStar,
		"A*":        search.AStar,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", search.Algorithm(9).String())
	assert.Equal(t, search.Info{}, search.Algorithm(-1).Info())
}

func TestAlgorithm_YAML(t *testing.T) {
	var doc struct {
		Algorithm search.Algorithm `yaml:"algorithm"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("algorithm: dijkstra\n"), &doc))
	assert.Equal(t, search.Dijkstra, doc.Algorithm)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "algorithm: dijkstra\n", string(out))

	err = yaml.Unmarshal([]byte("algorithm: teleport\n"), &doc)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Algorithm(7).MarshalText()
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}
