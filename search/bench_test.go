package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// benchGrid is a 128×128 grid with ~20% walls and ~10% traps, start and
// end in opposite corners.
func benchGrid(b *testing.B) *gridgraph.Grid {
	const n = 128
	rng := rand.New(rand.NewSource(7))
	g, err := gridgraph.New(n, n, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch rng.Intn(10) {
			case 0, 1:
				_ = g.SetCell(r, c, gridgraph.Wall)
			case 2:
				_ = g.SetTrap(r, c, 1+rng.Intn(9))
			}
		}
	}
	_ = g.SetCell(0, 0, gridgraph.Start)
	_ = g.SetCell(n-1, n-1, gridgraph.End)
	return g
}

// BenchmarkRun measures a full run per strategy, without listeners.
// Complexity: O(V + E) for BFS/DFS, O((V + E) log V) for the heap strategies.
func BenchmarkRun(b *testing.B) {
	g := benchGrid(b)
	for _, algo := range allAlgorithms {
		b.Run(algo.String(), func(b *testing.B) {
			e, err := search.NewEngine(g, algo, search.WithLogger(quietLogger()))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = e.Begin()
				for !e.IsComplete() {
					e.Step()
				}
			}
		})
	}
}

// BenchmarkVisualizationState measures the per-step snapshot copy halfway
// through a Dijkstra run.
func BenchmarkVisualizationState(b *testing.B) {
	e, err := search.NewEngine(benchGrid(b), search.Dijkstra, search.WithLogger(quietLogger()))
	if err != nil {
		b.Fatal(err)
	}
	_ = e.Begin()
	for i := 0; i < 4000 && !e.IsComplete(); i++ {
		e.Step()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.VisualizationState()
	}
}
