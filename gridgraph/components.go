package gridgraph

// ConnectedComponents finds all 4-connected regions of traversable cells.
// Components are discovered in row-major order of their first cell, and
// each component lists its cells in breadth-first order from that cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for labels and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	_, comps := g.label()

	return comps
}

// Reachable reports whether b can be reached from a by 4-connected moves
// over traversable cells, ignoring weights. Both cells must be traversable.
func (g *Grid) Reachable(a, b Cell) bool {
	if !g.IsTraversable(a.Row, a.Col) || !g.IsTraversable(b.Row, b.Col) {
		return false
	}
	labels, _ := g.label()

	return labels[g.index(a)] == labels[g.index(b)]
}

// label assigns a component id to every traversable cell (-1 for walls).
func (g *Grid) label() ([]int, [][]Cell) {
	labels := make([]int, g.rows*g.cols)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			seed := Cell{Row: r, Col: c}
			if !g.IsTraversable(r, c) || labels[g.index(seed)] >= 0 {
				continue
			}
			id := len(comps)
			labels[g.index(seed)] = id
			queue := []Cell{seed}
			for qi := 0; qi < len(queue); qi++ {
				for _, nb := range g.Neighbors(queue[qi]) {
					if labels[g.index(nb)] < 0 {
						labels[g.index(nb)] = id
						queue = append(queue, nb)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return labels, comps
}

// index maps a cell to its row-major index: row*Cols + col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}
