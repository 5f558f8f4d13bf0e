package search

// DFS keeps a LIFO stack in queue, bottom first. A neighbor is marked
// visited and given its predecessor when it is pushed, not when it is
// popped, so the reported path follows discovery order and need not be
// the shortest.

func (e *Engine) initDFS() {
	e.queue = make([]Cell, 0, e.rows*e.cols)
	e.markVisited(e.start)
	e.queue = append(e.queue, e.start)
}

func (e *Engine) stepDFS() (done, found bool) {
	top := len(e.queue) - 1
	if top < 0 {
		return true, false
	}
	cur := e.queue[top]
	e.queue = e.queue[:top]
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
