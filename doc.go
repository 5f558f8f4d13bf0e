// Package pathviz watches grid path searches unfold one step at a time.
//
// What is pathviz?
//
//	A small engine plus a terminal front end that brings together:
//		• Grid model: walls, weighted traps, one start and one end
//		• Search strategies: BFS, DFS, Dijkstra and A* (Manhattan heuristic)
//		• Stepwise runs: every Step does one unit of work and yields a snapshot
//		• Pacing: a driver that steps at 1 (slow) to 10 (fast) speed
//		• Rendering: colored or plain frames, run summaries, comparison tables
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/    the painted grid, layout parsing and region labelling
//	search/       the Engine, the four strategies, snapshots and results
//	driver/       rate-limited stepping with pause, resume and single step
//	render/       frames, stats lines and tables for the terminal
//	config/       YAML + environment configuration with validation
//	cmd/pathviz/  the run, compare and algorithms commands
//
// Quick example:
//
//	g, _ := gridgraph.Parse("S..\n##.\nE..", gridgraph.DefaultGridOptions())
//	e, _ := search.NewEngine(g, search.AStar)
//	_ = e.Begin()
//	for !e.IsComplete() {
//		e.Step()
//	}
//	fmt.Println(e.Results().Path)
//
// Cost model: entering a cell costs its weight (1 for empty, start and end;
// the trap weight for traps). BFS and DFS ignore weights while searching but
// still report the weighted cost of the path they found.
package pathviz
