package search

// A* is Dijkstra keyed by g + h, where h is the Manhattan distance to end.
// With entry weights of at least 1 the heuristic is admissible and
// consistent on a 4-connected grid, so the first settlement of end is
// optimal.

func (e *Engine) initAStar() {
	e.pq = newStableQueue(e.rows * e.cols)
	e.pq.push(e.start, e.key(e.start), manhattan(e.start, e.end))
}

func (e *Engine) stepAStar() (done, found bool) {
	return e.settleNext()
}

// manhattan returns |Δrow| + |Δcol|.
func manhattan(a, b Cell) int64 {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return int64(dr + dc)
}
