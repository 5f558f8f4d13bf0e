package search

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Sentinel errors for engine construction and lifecycle.
var (
	// ErrNilGrid is returned when NewEngine receives a nil grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrEmptyGrid is returned when the grid reports zero rows or columns.
	ErrEmptyGrid = errors.New("search: grid has no cells")

	// ErrUnknownAlgorithm is returned for an algorithm outside the catalog.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrMissingEndpoints is returned by Begin when start or end is unset.
	ErrMissingEndpoints = errors.New("search: " + MissingEndpointsMessage)

	// ErrEndpointOutOfBounds is returned when the grid reports a start or
	// end cell outside its own rows and columns.
	ErrEndpointOutOfBounds = errors.New("search: endpoint outside grid")
)

// Messages passed to OnNoPath listeners.
const (
	NoPathMessage           = "no path exists between start and end"
	MissingEndpointsMessage = "start or end position not set"
)

// Unreachable is the cost of a cell no route has reached yet.
// It is larger than any real path cost.
const Unreachable int64 = math.MaxInt64

// Cell is the grid coordinate type.
type Cell = gridgraph.Cell

// Grid is the read-only cost surface a search runs over.
// *gridgraph.Grid satisfies it.
type Grid interface {
	Rows() int
	Cols() int
	IsTraversable(row, col int) bool
	// Weight is the cost of entering (row,col); only meaningful when traversable.
	Weight(row, col int) int
	// Neighbors returns in-bounds traversable cells in a fixed canonical order.
	Neighbors(c Cell) []Cell
	StartCell() (Cell, bool)
	EndCell() (Cell, bool)
}

// State is the lifecycle position of a run.
type State int

const (
	Idle State = iota
	Running
	Paused
	Complete
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// StepResult reports the outcome of one Step call.
// Success is only meaningful when Complete is true.
type StepResult struct {
	Complete bool
	Success  bool
}

// Snapshot is a by-value view of the run after a step. None of its slices
// alias engine state.
type Snapshot struct {
	// Visited lists settled cells in the order they were marked.
	Visited []Cell
	// Frontier lists discovered, unsettled cells in the order the strategy
	// will consider them (queue head first, stack bottom first, or
	// ascending priority for the heap strategies).
	Frontier []Cell
	// Path is empty until a successful terminal step.
	Path     []Cell
	Step     int
	Complete bool
	// Current is the cell taken from the frontier by the latest step;
	// HasCurrent is false before the first step. A stale heap entry popped
	// by Dijkstra or A* leaves Current unchanged.
	Current    Cell
	HasCurrent bool
}

// Results summarises a run. Valid at any time, authoritative once the run
// is complete.
type Results struct {
	RunID     string
	Algorithm Algorithm
	Success   bool
	Path      []Cell
	// VisitedCount is the size of the visited set.
	VisitedCount int
	// PathLength counts cells on the path, start and end included.
	PathLength int
	// PathCost is the sum of entry weights along the path, start excluded.
	PathCost int64
	// FrontierSize counts discovered cells still awaiting expansion.
	FrontierSize int
	Elapsed      time.Duration
	TotalSteps   int
}
