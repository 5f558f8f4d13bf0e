package search

// initialize resets the shared bookkeeping and seeds the strategy frontier.
func (e *Engine) initialize() {
	n := e.rows * e.cols
	e.visited = make([]bool, n)
	e.order = make([]Cell, 0, n)
	e.parent = make([]int, n)
	e.cost = make([]int64, n)
	for i := range e.parent {
		e.parent[i] = -1
		e.cost[i] = Unreachable
	}
	e.cost[e.key(e.start)] = 0
	e.queue = nil
	e.head = 0
	e.pq = nil

	switch e.algo {
	case BFS:
		e.initBFS()
	case DFS:
		e.initDFS()
	case Dijkstra:
		e.initDijkstra()
	case AStar:
		e.initAStar()
	}
}

// executeStep advances the active strategy by one unit of work.
// done reports a terminal step; found is meaningful only when done.
func (e *Engine) executeStep() (done, found bool) {
	switch e.algo {
	case BFS:
		return e.stepBFS()
	case DFS:
		return e.stepDFS()
	case Dijkstra:
		return e.stepDijkstra()
	case AStar:
		return e.stepAStar()
	}
	return true, false
}

// frontier lists discovered, unsettled cells in consideration order.
func (e *Engine) frontier() []Cell {
	switch e.algo {
	case BFS, DFS:
		if e.head >= len(e.queue) {
			return []Cell{}
		}
		return cloneCells(e.queue[e.head:])
	default:
		return e.heapFrontier()
	}
}

func (e *Engine) frontierSize() int {
	switch e.algo {
	case BFS, DFS:
		return len(e.queue) - e.head
	default:
		return len(e.heapFrontier())
	}
}

// heapFrontier lists live heap entries by pop order. Stale entries and
// settled cells are skipped; each cell appears once, at its best position.
func (e *Engine) heapFrontier() []Cell {
	out := []Cell{}
	if e.pq == nil {
		return out
	}
	seen := make(map[int]struct{}, e.pq.Len())
	for _, it := range e.pq.ordered() {
		if e.visited[it.key] {
			continue
		}
		if _, dup := seen[it.key]; dup {
			continue
		}
		seen[it.key] = struct{}{}
		out = append(out, it.cell)
	}
	return out
}
