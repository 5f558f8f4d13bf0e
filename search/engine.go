package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Engine runs one stepwise search over one grid.
// Start and end are resolved when the Engine is built; build a new Engine
// after moving them. An Engine is not safe for concurrent use.
type Engine struct {
	grid   Grid
	algo   Algorithm
	logger *slog.Logger
	clock  func() time.Time

	rows, cols int
	start, end Cell
	hasStart   bool
	hasEnd     bool

	// run state
	runID     string
	running   bool
	paused    bool
	complete  bool
	success   bool
	steps     int
	startedAt time.Time
	elapsed   time.Duration

	// shared bookkeeping, indexed by packed key
	visited []bool
	order   []Cell
	parent  []int
	cost    []int64

	// frontier: queue[head:] for BFS, queue as a stack for DFS, pq otherwise
	queue []Cell
	head  int
	pq    *stableQueue

	current    Cell
	hasCurrent bool
	path       []Cell
	pathCost   int64

	onStep      []func(Snapshot)
	onPathFound []func(Results)
	onNoPath    []func(string)
	onComplete  []func(Results)
}

// NewEngine binds algo to grid and resolves its endpoints.
// Returns ErrNilGrid, ErrUnknownAlgorithm, ErrEmptyGrid or
// ErrEndpointOutOfBounds for invalid input.
func NewEngine(grid Grid, algo Algorithm, opts ...Option) (*Engine, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	if grid.Rows() <= 0 || grid.Cols() <= 0 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		grid:        grid,
		algo:        algo,
		logger:      o.Logger,
		clock:       o.Clock,
		rows:        grid.Rows(),
		cols:        grid.Cols(),
		onStep:      o.onStep,
		onPathFound: o.onPathFound,
		onNoPath:    o.onNoPath,
		onComplete:  o.onComplete,
	}
	e.start, e.hasStart = grid.StartCell()
	e.end, e.hasEnd = grid.EndCell()
	if e.hasStart && !e.inBounds(e.start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d", ErrEndpointOutOfBounds, e.start, e.rows, e.cols)
	}
	if e.hasEnd && !e.inBounds(e.end) {
		return nil, fmt.Errorf("%w: end %v in %dx%d", ErrEndpointOutOfBounds, e.end, e.rows, e.cols)
	}

	return e, nil
}

// Algorithm returns the strategy this engine runs.
func (e *Engine) Algorithm() Algorithm { return e.algo }

// OnStep registers a listener fired after every effective Step.
func (e *Engine) OnStep(fn func(Snapshot)) {
	if fn != nil {
		e.onStep = append(e.onStep, fn)
	}
}

// OnPathFound registers a listener fired once on successful completion.
func (e *Engine) OnPathFound(fn func(Results)) {
	if fn != nil {
		e.onPathFound = append(e.onPathFound, fn)
	}
}

// OnNoPath registers a listener fired once on failed completion.
func (e *Engine) OnNoPath(fn func(message string)) {
	if fn != nil {
		e.onNoPath = append(e.onNoPath, fn)
	}
}

// OnComplete registers a listener fired once on any terminal step.
func (e *Engine) OnComplete(fn func(Results)) {
	if fn != nil {
		e.onComplete = append(e.onComplete, fn)
	}
}

// Begin resets all bookkeeping and starts a fresh run.
// Without both endpoints it notifies OnNoPath, stays Idle and returns
// ErrMissingEndpoints.
func (e *Engine) Begin() error {
	if !e.hasStart || !e.hasEnd {
		e.logger.Warn("search: cannot begin",
			slog.String("algorithm", e.algo.String()),
			slog.Bool("has_start", e.hasStart),
			slog.Bool("has_end", e.hasEnd),
		)
		runsTotal.WithLabelValues(e.algo.String(), outcomeMissingEndpoints).Inc()
		for _, fn := range e.onNoPath {
			fn(MissingEndpointsMessage)
		}
		return ErrMissingEndpoints
	}

	e.runID = uuid.NewString()
	e.running = true
	e.paused = false
	e.complete = false
	e.success = false
	e.steps = 0
	e.elapsed = 0
	e.current = Cell{}
	e.hasCurrent = false
	e.path = nil
	e.pathCost = 0
	e.initialize()
	e.startedAt = e.clock()

	e.logger.Debug("search: run started",
		slog.String("run_id", e.runID),
		slog.String("algorithm", e.algo.String()),
		slog.String("start", e.start.String()),
		slog.String("end", e.end.String()),
	)
	return nil
}

// Pause suspends stepping. Search structures are untouched.
func (e *Engine) Pause() { e.paused = true }

// Resume lifts a Pause.
func (e *Engine) Resume() { e.paused = false }

// Stop force-terminates an active run and freezes its elapsed time.
// No listeners fire. Safe from any state; repeated calls are no-ops.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.elapsed = e.clock().Sub(e.startedAt)
	e.running = false
	e.paused = false
	e.complete = true

	res := e.Results()
	recordRun(e.algo, outcomeStopped, res)
	e.logger.Debug("search: run stopped",
		slog.String("run_id", e.runID),
		slog.Int("steps", e.steps),
		slog.Int("visited", res.VisitedCount),
	)
}

// Step performs exactly one unit of search work.
// It is a no-op returning StepResult{} unless the run is Running.
//
// On the terminal step the run is finalised before OnStep fires, so that
// snapshot already carries Complete and the reconstructed path. OnPathFound
// or OnNoPath follows, then OnComplete.
func (e *Engine) Step() StepResult {
	if !e.running || e.paused || e.complete {
		return StepResult{}
	}
	e.steps++
	stepsTotal.WithLabelValues(e.algo.String()).Inc()

	done, found := e.executeStep()
	if !done {
		e.emitStep()
		return StepResult{}
	}

	e.finish(found)
	e.emitStep()

	res := e.Results()
	if found {
		for _, fn := range e.onPathFound {
			fn(res)
		}
	} else {
		for _, fn := range e.onNoPath {
			fn(NoPathMessage)
		}
	}
	for _, fn := range e.onComplete {
		fn(res)
	}
	return StepResult{Complete: true, Success: found}
}

// finish seals a run that reached a terminal step.
func (e *Engine) finish(found bool) {
	e.elapsed = e.clock().Sub(e.startedAt)
	e.running = false
	e.complete = true
	e.success = found
	if found {
		e.path = e.reconstructPath()
		e.pathCost = e.costOf(e.path)
	}

	res := e.Results()
	outcome := outcomeNoPath
	if found {
		outcome = outcomeFound
	}
	recordRun(e.algo, outcome, res)
	e.logger.Debug("search: run complete",
		slog.String("run_id", e.runID),
		slog.String("algorithm", e.algo.String()),
		slog.Bool("success", found),
		slog.Int("steps", e.steps),
		slog.Int("visited", res.VisitedCount),
		slog.Int("path_length", res.PathLength),
		slog.Int64("path_cost", res.PathCost),
		slog.Duration("elapsed", res.Elapsed),
	)
}

func (e *Engine) emitStep() {
	if len(e.onStep) == 0 {
		return
	}
	snap := e.VisualizationState()
	for _, fn := range e.onStep {
		fn(snap)
	}
}

// State reports the lifecycle position of the run.
func (e *Engine) State() State {
	switch {
	case e.complete:
		return Complete
	case e.running && e.paused:
		return Paused
	case e.running:
		return Running
	default:
		return Idle
	}
}

// IsRunning reports whether a run is active (paused or not).
func (e *Engine) IsRunning() bool { return e.running }

// IsComplete reports whether the run finished or was stopped.
func (e *Engine) IsComplete() bool { return e.complete }

// VisualizationState returns a by-value snapshot of the run.
func (e *Engine) VisualizationState() Snapshot {
	return Snapshot{
		Visited:    cloneCells(e.order),
		Frontier:   e.frontier(),
		Path:       cloneCells(e.path),
		Step:       e.steps,
		Complete:   e.complete,
		Current:    e.current,
		HasCurrent: e.hasCurrent,
	}
}

// Results returns the run statistics. Elapsed is live while running.
func (e *Engine) Results() Results {
	elapsed := e.elapsed
	if e.running {
		elapsed = e.clock().Sub(e.startedAt)
	}
	return Results{
		RunID:        e.runID,
		Algorithm:    e.algo,
		Success:      e.success,
		Path:         cloneCells(e.path),
		VisitedCount: len(e.order),
		PathLength:   len(e.path),
		PathCost:     e.pathCost,
		FrontierSize: e.frontierSize(),
		Elapsed:      elapsed,
		TotalSteps:   e.steps,
	}
}

// reconstructPath follows predecessors back from end. A chain that breaks
// before start yields an empty path.
func (e *Engine) reconstructPath() []Cell {
	startKey, k := e.key(e.start), e.key(e.end)
	var rev []Cell
	for hops := 0; ; hops++ {
		rev = append(rev, e.cellOf(k))
		if k == startKey {
			break
		}
		k = e.parent[k]
		if k < 0 || hops > len(e.parent) {
			return nil
		}
	}
	path := make([]Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// costOf sums entry weights along path, start excluded.
func (e *Engine) costOf(path []Cell) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		total += e.edgeCost(path[i])
	}
	return total
}

// edgeCost is the cost of entering c. Weights below 1 count as 1.
func (e *Engine) edgeCost(c Cell) int64 {
	w := e.grid.Weight(c.Row, c.Col)
	if w < 1 {
		return 1
	}
	return int64(w)
}

func (e *Engine) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.cols
}

func (e *Engine) key(c Cell) int { return c.Row*e.cols + c.Col }

func (e *Engine) cellOf(k int) Cell { return Cell{Row: k / e.cols, Col: k % e.cols} }

func (e *Engine) markVisited(c Cell) {
	e.visited[e.key(c)] = true
	e.order = append(e.order, c)
}

func (e *Engine) setCurrent(c Cell) {
	e.current = c
	e.hasCurrent = true
}

func cloneCells(cells []Cell) []Cell {
	if len(cells) == 0 {
		return []Cell{}
	}
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}
