package search

// BFS keeps a FIFO frontier in queue[head:]. Cells are marked visited when
// enqueued, so each cell enters the queue at most once.

func (e *Engine) initBFS() {
	e.queue = make([]Cell, 0, e.rows*e.cols)
	e.markVisited(e.start)
	e.queue = append(e.queue, e.start)
}

func (e *Engine) stepBFS() (done, found bool) {
	if e.head >= len(e.queue) {
		return true, false
	}
	cur := e.queue[e.head]
	e.head++
	e.setCurrent(cur)
	if cur == e.end {
		return true, true
	}

	ck := e.key(cur)
	for _, nb := range e.grid.Neighbors(cur) {
		k := e.key(nb)
		if e.visited[k] {
			continue
		}
		e.markVisited(nb)
		e.parent[k] = ck
		e.cost[k] = e.cost[ck] + 1
		e.queue = append(e.queue, nb)
	}
	return false, false
}
