package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

func TestColumnWall_BFS(t *testing.T) {
	e := newEngine(t, mustGrid(t, columnWall), search.BFS)
	require.NoError(t, e.Begin())
	runToEnd(t, e)

	r := e.Results()
	require.True(t, r.Success)
	assert.Equal(t, cells(0, 0, 1, 0, 2, 0, 3, 0, 3, 1, 3, 2, 3, 3), r.Path)
	assert.Equal(t, 7, r.PathLength)
	assert.Contains(t, r.Path, search.Cell{Row: 3, Col: 1})
}

func TestColumnWall_AllAlgorithms(t *testing.T) {
	for _, algo := range allAlgorithms {
		t.Run(algo.String(), func(t *testing.T) {
			e := newEngine(t, mustGrid(t, columnWall), algo)
			require.NoError(t, e.Begin())
			runToEnd(t, e)

			r := e.Results()
			require.True(t, r.Success)
			assertValidPath(t, mustGrid(t, columnWall), r.Path)
			if algo.Info().GuaranteesShortestPath {
				assert.Equal(t, 7, r.PathLength)
				assert.Equal(t, int64(6), r.PathCost)
			}
		})
	}
}

// TestTrapDetour paints a heavy trap in an open 4×4 grid; the weighted
// strategies must route around it.
func TestTrapDetour(t *testing.T) {
	build := func(t *testing.T) *gridgraph.Grid {
		g := mustGrid(t, "S...\n....\n....\n...E")
		require.NoError(t, g.SetTrap(1, 2, 10))
		return g
	}
	trap := search.Cell{Row: 1, Col: 2}

	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar} {
		t.Run(algo.String(), func(t *testing.T) {
			e := newEngine(t, build(t), algo)
			require.NoError(t, e.Begin())
			runToEnd(t, e)

			r := e.Results()
			require.True(t, r.Success)
			assert.NotContains(t, r.Path, trap)
			assert.Equal(t, int64(6), r.PathCost)
			assert.Equal(t, 7, r.PathLength)
		})
	}
	for _, algo := range []search.Algorithm{search.BFS, search.DFS} {
		t.Run(algo.String(), func(t *testing.T) {
			e := newEngine(t, build(t), algo)
			require.NoError(t, e.Begin())
			runToEnd(t, e)
			r := e.Results()
			require.True(t, r.Success)
			assertValidPath(t, build(t), r.Path)
		})
	}
}

// TestWeightsChangeRoute uses a grid where the short route crosses a
// weight-9 trap and the long route is cheaper.
func TestWeightsChangeRoute(t *testing.T) {
	const layout = "S9E\n..."
	direct := cells(0, 0, 0, 1, 0, 2)
	around := cells(0, 0, 1, 0, 1, 1, 1, 2, 0, 2)

	cases := []struct {
		algo search.Algorithm
		path []search.Cell
		cost int64
	}{
		{search.BFS, direct, 10},
		{search.DFS, direct, 10},
		{search.Dijkstra, around, 4},
		{search.AStar, around, 4},
	}
	for _, tc := range cases {
		t.Run(tc.algo.String(), func(t *testing.T) {
			e := newEngine(t, mustGrid(t, layout), tc.algo)
			require.NoError(t, e.Begin())
			runToEnd(t, e)

			r := e.Results()
			require.True(t, r.Success)
			assert.Equal(t, tc.path, r.Path)
			assert.Equal(t, tc.cost, r.PathCost)
		})
	}
}

//----------------------------------------------------------------------------//
// Frontier discipline
//----------------------------------------------------------------------------//

func TestBFS_FrontierIsFIFO(t *testing.T) {
	e := newEngine(t, mustGrid(t, "S..\n...\n..E"), search.BFS)
	require.NoError(t, e.Begin())
	assert.Equal(t, cells(0, 0), e.VisualizationState().Frontier)

	e.Step()
	s := e.VisualizationState()
	assert.Equal(t, search.Cell{Row: 0, Col: 0}, s.Current)
	assert.Equal(t, cells(1, 0, 0, 1), s.Frontier)

	e.Step()
	s = e.VisualizationState()
	assert.Equal(t, search.Cell{Row: 1, Col: 0}, s.Current)
	assert.Equal(t, cells(0, 1, 2, 0, 1, 1), s.Frontier)
	assert.Equal(t, 3, e.Results().FrontierSize)
}

// TestDFS_DiscoveryTime checks that DFS fixes visited and predecessor when
// a cell is pushed, so the path follows the last-pushed branch.
func TestDFS_DiscoveryTime(t *testing.T) {
	e := newEngine(t, mustGrid(t, "S.\n.E"), search.DFS)
	require.NoError(t, e.Begin())

	e.Step()
	s := e.VisualizationState()
	assert.Equal(t, cells(0, 0, 1, 0, 0, 1), s.Visited)
	assert.Equal(t, cells(1, 0, 0, 1), s.Frontier)

	e.Step()
	s = e.VisualizationState()
	assert.Equal(t, search.Cell{Row: 0, Col: 1}, s.Current)
	assert.Equal(t, cells(1, 0, 1, 1), s.Frontier)

	res := e.Step()
	assert.Equal(t, search.StepResult{Complete: true, Success: true}, res)
	assert.Equal(t, cells(0, 0, 0, 1, 1, 1), e.Results().Path)
	// (1,0) was discovered but never expanded
	assert.Equal(t, 4, e.Results().VisitedCount)
}

func TestDijkstra_FrontierByCost(t *testing.T) {
	e := newEngine(t, mustGrid(t, "S9E\n..."), search.Dijkstra)
	require.NoError(t, e.Begin())
	assert.Empty(t, e.VisualizationState().Visited, "heap strategies settle on pop")

	e.Step()
	s := e.VisualizationState()
	assert.Equal(t, cells(0, 0), s.Visited)
	assert.Equal(t, cells(1, 0, 0, 1), s.Frontier)

	e.Step()
	s = e.VisualizationState()
	assert.Equal(t, search.Cell{Row: 1, Col: 0}, s.Current)
	assert.Equal(t, cells(1, 1, 0, 1), s.Frontier)
}

func TestAStar_ExpandsFewerCells(t *testing.T) {
	const layout = `
..........
..........
S........E
..........
..........`
	visited := map[search.Algorithm]int{}
	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar} {
		e := newEngine(t, mustGrid(t, layout), algo)
		require.NoError(t, e.Begin())
		runToEnd(t, e)
		r := e.Results()
		require.True(t, r.Success)
		assert.Equal(t, int64(9), r.PathCost)
		visited[algo] = r.VisitedCount
	}
	assert.Less(t, visited[search.AStar], visited[search.Dijkstra])
}

func TestHeapTies_InsertionOrder(t *testing.T) {
	// every frontier entry costs 1 after the first step; ties must pop
	// in push order (down before right)
	e := newEngine(t, mustGrid(t, "S.\n.E"), search.Dijkstra)
	require.NoError(t, e.Begin())
	e.Step()
	assert.Equal(t, cells(1, 0, 0, 1), e.VisualizationState().Frontier)
	e.Step()
	assert.Equal(t, search.Cell{Row: 1, Col: 0}, e.VisualizationState().Current)
}

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

// assertValidPath checks start/end endpoints, adjacency and traversability.
func assertValidPath(t *testing.T, g *gridgraph.Grid, path []search.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	start, _ := g.StartCell()
	end, _ := g.EndCell()
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	for i, c := range path {
		assert.True(t, g.IsTraversable(c.Row, c.Col), "cell %v is not traversable", c)
		if i == 0 {
			continue
		}
		p := path[i-1]
		d := abs(p.Row-c.Row) + abs(p.Col-c.Col)
		assert.Equal(t, 1, d, "%v → %v is not a grid step", p, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
