package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position outside grid boundaries")
	// ErrInvalidCell indicates an unknown cell state or layout rune.
	ErrInvalidCell = errors.New("gridgraph: invalid cell state")
	// ErrBadWeight indicates a trap weight below 1.
	ErrBadWeight = errors.New("gridgraph: trap weight must be at least 1")
	// ErrDuplicateEndpoint indicates a layout with more than one start or end.
	ErrDuplicateEndpoint = errors.New("gridgraph: layout contains more than one start or end")
)
