// Package gridgraph models the paintable grid that path searches run over.
//
// What:
//
//   - Grid is a rectangular array of CellState values (Empty, Wall, Trap,
//     Start, End) plus a per-cell movement weight for traps.
//   - At most one Start and one End exist at any time; placing a new one
//     moves it, overwriting one clears it.
//   - Neighbors are 4-connected and always reported in the canonical order
//     up, down, left, right, so every search over a Grid is reproducible.
//   - ConnectedComponents groups traversable cells into 4-connected regions;
//     Reachable answers "can b be reached from a, ignoring weights".
//   - Parse builds a Grid from a text layout, String renders it back.
//
// Why:
//
//   - Search engines only need a narrow cost view of the grid (traversable?
//     weight? neighbors? endpoints?); Grid implements exactly that surface.
//   - Text layouts make fixtures and CLI inputs readable.
//
// Layout runes:
//
//	.  empty          #  wall
//	S  start          E  end
//	~  trap (default weight from GridOptions.TrapWeight)
//	1-9 trap with that exact weight
//
// Complexity:
//
//   - Neighbors:           O(1)
//   - ConnectedComponents: O(R×C), Memory: O(R×C)
//   - Parse / String:      O(R×C)
//
// Errors:
//
//   - ErrEmptyGrid:          zero rows or zero columns.
//   - ErrNonRectangular:     rows of differing lengths.
//   - ErrOutOfBounds:        coordinate outside the grid.
//   - ErrInvalidCell:        unknown layout rune or cell state.
//   - ErrBadWeight:          trap weight < 1.
//   - ErrDuplicateEndpoint:  a layout names more than one S or E.
//
// A Grid is not safe for concurrent mutation, and it must not be mutated
// while a search is running over it.
package gridgraph
