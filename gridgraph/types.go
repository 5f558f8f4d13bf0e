package gridgraph

import "fmt"

// CellState is what the user painted on a single cell.
type CellState uint8

const (
	// Empty is a free cell with movement cost 1.
	Empty CellState = iota
	// Wall is impassable; it is never offered as a neighbor.
	Wall
	// Trap is traversable but costs its configured weight to enter.
	Trap
	// Start marks the search origin (cost 1 when entered).
	Start
	// End marks the search goal (cost 1 when entered).
	End
)

// String returns the lowercase state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Trap:
		return "trap"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// valid reports whether s is one of the known states.
func (s CellState) valid() bool { return s <= End }

// Cell is a (row, column) coordinate. Identity is by value.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// DefaultTrapWeight is the weight given to traps painted without an explicit weight.
const DefaultTrapWeight = 5

// GridOptions holds tunables applied when building or painting a Grid.
type GridOptions struct {
	// TrapWeight is the weight assigned by SetCell(…, Trap) and by the
	// '~' layout rune. Must be ≥ 1.
	TrapWeight int
}

// DefaultGridOptions returns GridOptions{TrapWeight: DefaultTrapWeight}.
func DefaultGridOptions() GridOptions {
	return GridOptions{TrapWeight: DefaultTrapWeight}
}

// neighborOffsets is the canonical 4-connected order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
