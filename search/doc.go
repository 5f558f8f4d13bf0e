// Package search is an interruptible, step-at-a-time path search engine over
// a grid cost surface.
//
// What
//
//   - Engine owns one run: start/end are resolved from the grid when the
//     Engine is built, and the run moves through Idle → Running ⇄ Paused →
//     Complete.
//   - Four strategies share that lifecycle and its bookkeeping (visited set,
//     frontier, predecessor links, statistics, path reconstruction):
//   - BFS:      FIFO frontier, shortest path by edge count.
//   - DFS:      LIFO frontier, some path; cells are marked visited and
//     given a predecessor when discovered, not when popped.
//   - Dijkstra: stable min-heap keyed by cumulative cost, lazy deletion.
//   - AStar:    as Dijkstra, keyed by cost + Manhattan distance to end.
//   - Every Step performs exactly one unit of work and then notifies
//     listeners with a Snapshot copied by value.
//
// Why
//
//   - Visualisers need to pause mid-search, single-step, and draw the
//     internal state after each expansion without racing the algorithm.
//
// Determinism
//
//	Neighbors are expanded in the grid's canonical order (up, down, left,
//	right) and heap ties pop in insertion order, so two runs over the same
//	grid produce identical snapshot sequences.
//
// Edge costs
//
//	Moving into a cell costs that cell's weight: traps cost their
//	configured weight, every other traversable cell costs 1. BFS and DFS
//	ignore weights.
//
// Lifecycle and notifications
//
//	e, _ := search.NewEngine(grid, search.AStar,
//	    search.WithOnStep(func(s search.Snapshot) { draw(s) }),
//	    search.WithOnComplete(func(r search.Results) { report(r) }),
//	)
//	if err := e.Begin(); err != nil {
//	    // ErrMissingEndpoints; OnNoPath listeners were already notified
//	}
//	for !e.IsComplete() {
//	    e.Step()
//	}
//
//	On a terminal step the listeners fire in this order, exactly once:
//	OnStep, then OnPathFound or OnNoPath, then OnComplete.
//
// Concurrency
//
//	An Engine is single-threaded and never blocks; pacing belongs to the
//	caller (see package driver). The grid must not be mutated while a run
//	is active.
//
// Errors
//
//   - ErrNilGrid           if NewEngine gets a nil grid.
//   - ErrUnknownAlgorithm  if the algorithm is not one of the four.
//   - ErrEmptyGrid         if the grid reports zero rows or columns.
//   - ErrEndpointOutOfBounds if start or end lies outside the grid.
//   - ErrMissingEndpoints  from Begin when start or end is unset.
//
// A missing path is not an error: it is reported through OnNoPath and
// Results.Success == false.
package search
