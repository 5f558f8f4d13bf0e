// Package config loads pathviz settings.
//
// Precedence, lowest first: Default(), a YAML file, PATHVIZ_* environment
// variables, then whatever the caller applies (command-line flags) before
// calling Validate.
//
//	algorithm: astar        # bfs | dfs | dijkstra | astar
//	speed: 7                # 1 (500ms per step) .. 10 (50ms per step)
//	trap_weight: 5          # weight of '~' cells, ≥ 1
//	log_level: info         # debug | info | warn | error
//	metrics_addr: ":9090"   # optional Prometheus listener
//	grid: |                 # inline layout, or grid_file: path
//	  S..#....
//	  .#.#.~~.
//	  .#...#.E
package config
