package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Glyphs.
const (
	GlyphWall     = '#'
	GlyphTrap     = '~'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
	GlyphVisited  = '.'
	GlyphFrontier = 'o'
	GlyphPath     = '*'
	GlyphCurrent  = '@'
	GlyphEmpty    = '·'
)

// Layout is the painted grid a Renderer draws under a snapshot.
// *gridgraph.Grid satisfies it.
type Layout interface {
	Rows() int
	Cols() int
	State(row, col int) (gridgraph.CellState, error)
}

// Renderer draws frames for one grid.
type Renderer struct {
	layout Layout
	styles Styles
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables all styling.
func WithPlain() Option {
	return func(r *Renderer) { r.styles = PlainStyles() }
}

// WithStyles replaces the default style set.
func WithStyles(s Styles) Option {
	return func(r *Renderer) { r.styles = s }
}

// New returns a Renderer for layout.
func New(layout Layout, opts ...Option) *Renderer {
	r := &Renderer{layout: layout, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type mark uint8

const (
	markNone mark = iota
	markVisited
	markFrontier
	markPath
	markCurrent
)

// Frame draws the grid with snap overlaid, one line per row, no trailing
// newline.
func (r *Renderer) Frame(snap search.Snapshot) string {
	rows, cols := r.layout.Rows(), r.layout.Cols()
	marks := make([]mark, rows*cols)
	put := func(cells []search.Cell, m mark) {
		for _, c := range cells {
			if c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols {
				marks[c.Row*cols+c.Col] = m
			}
		}
	}
	put(snap.Visited, markVisited)
	put(snap.Frontier, markFrontier)
	put(snap.Path, markPath)
	if snap.HasCurrent {
		put([]search.Cell{snap.Current}, markCurrent)
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			state, _ := r.layout.State(row, col)
			b.WriteString(r.cell(state, marks[row*cols+col]))
		}
	}
	return b.String()
}

// Grid draws the painted grid alone.
func (r *Renderer) Grid() string {
	return r.Frame(search.Snapshot{})
}

func (r *Renderer) cell(state gridgraph.CellState, m mark) string {
	switch state {
	case gridgraph.Start:
		return r.styles.Endpoint.Render(string(GlyphStart))
	case gridgraph.End:
		return r.styles.Endpoint.Render(string(GlyphEnd))
	case gridgraph.Wall:
		return r.styles.Wall.Render(string(GlyphWall))
	}
	switch m {
	case markCurrent:
		return r.styles.Current.Render(string(GlyphCurrent))
	case markPath:
		return r.styles.Path.Render(string(GlyphPath))
	case markFrontier:
		return r.styles.Frontier.Render(string(GlyphFrontier))
	case markVisited:
		return r.styles.Visited.Render(string(GlyphVisited))
	}
	if state == gridgraph.Trap {
		return r.styles.Trap.Render(string(GlyphTrap))
	}
	return r.styles.Empty.Render(string(GlyphEmpty))
}

// Stats is the one-line live status under a frame.
func (r *Renderer) Stats(snap search.Snapshot) string {
	line := fmt.Sprintf("step %d  visited %d  frontier %d  path %d",
		snap.Step, len(snap.Visited), len(snap.Frontier), len(snap.Path))
	return r.styles.Muted.Render(line)
}

// Summary is the one-line outcome of a finished run.
func (r *Renderer) Summary(res search.Results) string {
	if !res.Success {
		return r.styles.Failure.Render(fmt.Sprintf("%s: no path found (visited %d, steps %d, %s)",
			res.Algorithm, res.VisitedCount, res.TotalSteps, round(res.Elapsed)))
	}
	return r.styles.Success.Render(fmt.Sprintf("%s: path found (length %d, cost %d, visited %d, steps %d, %s)",
		res.Algorithm, res.PathLength, res.PathCost, res.VisitedCount, res.TotalSteps, round(res.Elapsed)))
}

// Compare tabulates finished runs side by side.
func (r *Renderer) Compare(results []search.Results) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Muted).
		Headers("ALGORITHM", "FOUND", "LENGTH", "COST", "VISITED", "STEPS", "ELAPSED")
	for _, res := range results {
		found, length, cost := "no", "-", "-"
		if res.Success {
			found = "yes"
			length = fmt.Sprint(res.PathLength)
			cost = fmt.Sprint(res.PathCost)
		}
		t.Row(res.Algorithm.String(), found, length, cost,
			fmt.Sprint(res.VisitedCount), fmt.Sprint(res.TotalSteps), round(res.Elapsed).String())
	}
	return t.String()
}

// Catalog tabulates algorithm metadata.
func (r *Renderer) Catalog(infos []search.Info) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Muted).
		Headers("ID", "NAME", "TIME", "SPACE", "SHORTEST", "WEIGHTED")
	for _, info := range infos {
		t.Row(info.ID, info.Name, info.TimeComplexity, info.SpaceComplexity,
			yesNo(info.GuaranteesShortestPath), yesNo(info.Weighted))
	}
	return r.styles.Title.Render("Algorithms") + "\n" + t.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}
