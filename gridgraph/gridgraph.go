package gridgraph

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, paintable grid of cells.
// states[r][c] holds the painted state; weights[r][c] is the entry cost of
// a trap and is ignored for every other state.
type Grid struct {
	rows, cols int
	states     [][]CellState
	weights    [][]int
	trapWeight int

	start, end       Cell
	hasStart, hasEnd bool
}

// New returns an all-empty rows×cols grid.
// Returns ErrEmptyGrid if either dimension is < 1, ErrBadWeight if
// opts.TrapWeight < 1.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts GridOptions) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	if opts.TrapWeight < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWeight, opts.TrapWeight)
	}
	g := &Grid{
		rows:       rows,
		cols:       cols,
		states:     make([][]CellState, rows),
		weights:    make([][]int, rows),
		trapWeight: opts.TrapWeight,
	}
	for r := 0; r < rows; r++ {
		g.states[r] = make([]CellState, cols)
		g.weights[r] = make([]int, cols)
	}

	return g, nil
}

// From2D builds a Grid from a non-empty rectangular slice of states.
// Traps receive opts.TrapWeight. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell or
// ErrDuplicateEndpoint.
func From2D(states [][]CellState, opts GridOptions) (*Grid, error) {
	if len(states) == 0 || len(states[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(states[0])
	for _, row := range states {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(states), w, opts)
	if err != nil {
		return nil, err
	}
	for r, row := range states {
		for c, s := range row {
			if err = g.place(r, c, s, opts.TrapWeight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Parse builds a Grid from a text layout, one line per row.
// Blank lines and surrounding whitespace are ignored. See the package
// documentation for the rune alphabet.
func Parse(layout string, opts GridOptions) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(lines[0]))
	for _, line := range lines {
		if len([]rune(line)) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(lines), w, opts)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c, ch := range []rune(line) {
			state, weight, ok := decodeRune(ch, opts.TrapWeight)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, ch, r, c)
			}
			if err = g.place(r, c, state, weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// place writes a cell during construction, rejecting a second start or end.
func (g *Grid) place(r, c int, s CellState, weight int) error {
	if !s.valid() {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, s, r, c)
	}
	if (s == Start && g.hasStart) || (s == End && g.hasEnd) {
		return fmt.Errorf("%w: second %s at (%d,%d)", ErrDuplicateEndpoint, s, r, c)
	}
	if s == Trap {
		return g.SetTrap(r, c, weight)
	}

	return g.SetCell(r, c, s)
}

func decodeRune(ch rune, trapWeight int) (CellState, int, bool) {
	switch {
	case ch == '.':
		return Empty, 0, true
	case ch == '#':
		return Wall, 0, true
	case ch == 'S':
		return Start, 0, true
	case ch == 'E':
		return End, 0, true
	case ch == '~':
		return Trap, trapWeight, true
	case ch >= '1' && ch <= '9':
		return Trap, int(ch - '0'), true
	default:
		return Empty, 0, false
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// TrapWeight returns the default weight applied by SetCell(…, Trap).
func (g *Grid) TrapWeight() int { return g.trapWeight }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// State returns the painted state of (row,col).
func (g *Grid) State(row, col int) (CellState, error) {
	if !g.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}

	return g.states[row][col], nil
}

// SetCell paints (row,col) with s.
//
// Start and End are unique: painting a new Start clears the old one back
// to Empty, and painting any other state over the current Start (or End)
// unsets that endpoint. Trap cells get the grid's default trap weight.
func (g *Grid) SetCell(row, col int, s CellState) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if !s.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCell, s)
	}

	current := g.states[row][col]
	here := Cell{Row: row, Col: col}

	if s == Start {
		if g.hasStart && g.start != here {
			g.states[g.start.Row][g.start.Col] = Empty
		}
		g.start, g.hasStart = here, true
	}
	if s == End {
		if g.hasEnd && g.end != here {
			g.states[g.end.Row][g.end.Col] = Empty
		}
		g.end, g.hasEnd = here, true
	}
	if current == Start && s != Start {
		g.hasStart = false
	}
	if current == End && s != End {
		g.hasEnd = false
	}

	g.states[row][col] = s
	g.weights[row][col] = 0
	if s == Trap {
		g.weights[row][col] = g.trapWeight
	}

	return nil
}

// SetTrap paints (row,col) as a trap with an explicit weight ≥ 1.
func (g *Grid) SetTrap(row, col, weight int) error {
	if weight < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWeight, weight)
	}
	if err := g.SetCell(row, col, Trap); err != nil {
		return err
	}
	g.weights[row][col] = weight

	return nil
}

// Clear resets every cell to Empty and unsets both endpoints.
func (g *Grid) Clear() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.states[r][c] = Empty
			g.weights[r][c] = 0
		}
	}
	g.hasStart, g.hasEnd = false, false
}

// IsTraversable reports whether (row,col) is in bounds and not a wall.
func (g *Grid) IsTraversable(row, col int) bool {
	return g.InBounds(row, col) && g.states[row][col] != Wall
}

// Weight returns the cost of entering (row,col): the trap weight for traps,
// 1 for every other traversable state. Only meaningful when traversable.
func (g *Grid) Weight(row, col int) int {
	if g.InBounds(row, col) && g.states[row][col] == Trap {
		return g.weights[row][col]
	}

	return 1
}

// Neighbors returns the in-bounds, traversable 4-neighbors of c in the
// canonical order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if g.IsTraversable(nr, nc) {
			out = append(out, Cell{Row: nr, Col: nc})
		}
	}

	return out
}

// StartCell returns the start cell, if one is painted.
func (g *Grid) StartCell() (Cell, bool) { return g.start, g.hasStart }

// EndCell returns the end cell, if one is painted.
func (g *Grid) EndCell() (Cell, bool) { return g.end, g.hasEnd }

// Ready reports whether both start and end are set.
func (g *Grid) Ready() bool { return g.hasStart && g.hasEnd }

// Clone returns an independent deep copy of g.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.states = make([][]CellState, g.rows)
	cp.weights = make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		cp.states[r] = append([]CellState(nil), g.states[r]...)
		cp.weights[r] = append([]int(nil), g.weights[r]...)
	}

	return &cp
}

// String renders the grid in the layout alphabet accepted by Parse.
// Traps heavier than 9 are written as '~'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.rune(r, c))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (g *Grid) rune(r, c int) rune {
	switch g.states[r][c] {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Trap:
		if w := g.weights[r][c]; w <= 9 {
			return rune('0' + w)
		}
		return '~'
	default:
		return '.'
	}
}
