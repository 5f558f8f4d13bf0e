package search

// Dijkstra settles cells in order of cumulative entry cost. Improved routes
// push a fresh heap entry; the superseded one is discarded when popped.

func (e *Engine) initDijkstra() {
	e.pq = newStableQueue(e.rows * e.cols)
	e.pq.push(e.start, e.key(e.start), 0)
}

func (e *Engine) stepDijkstra() (done, found bool) {
	return e.settleNext()
}

// settleNext is the shared step of Dijkstra and A*: pop the best entry,
// settle it, and relax its unsettled neighbors.
func (e *Engine) settleNext() (done, found bool) {
	if e.pq.Len() == 0 {
		return true, false
	}
	it := e.pq.pop()
	if e.visited[it.key] {
		// stale
		return false, false
	}
	e.markVisited(it.cell)
	e.setCurrent(it.cell)
	if it.cell == e.end {
		return true, true
	}

	g := e.cost[it.key]
	for _, nb := range e.grid.Neighbors(it.cell) {
		k := e.key(nb)
		if e.visited[k] {
			continue
		}
		nd := g + e.edgeCost(nb)
		if nd >= e.cost[k] {
			continue
		}
		e.cost[k] = nd
		e.parent[k] = it.key
		e.pq.push(nb, k, e.priority(nb, nd))
	}
	return false, false
}

// priority is the heap key of a cell reached at cost g.
func (e *Engine) priority(c Cell, g int64) int64 {
	if e.algo == AStar {
		return g + manhattan(c, e.end)
	}
	return g
}
