package maze

// Regions partitions the open (non-blocked) cells into 4-connected regions.
// Regions are ordered by their first cell in row-major order; each region
// lists its cells in flood-fill order starting from that cell.
//
// Unlike Neighbors, the flood fill treats the start cell like any other
// open cell, so it always belongs to exactly one region.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (m *Maze) Regions() [][]Position {
	seen := make([]bool, len(m.cells))
	var regions [][]Position
	for i := range m.cells {
		if seen[i] || m.cells[i].IsBlocked() {
			continue
		}
		regions = append(regions, m.flood(i, seen))
	}
	return regions
}

// Connected reports whether start and goal lie in the same region, i.e.
// whether any search can succeed.
func (m *Maze) Connected() bool {
	goal := m.goal.pos
	for _, p := range m.Reachable() {
		if p == goal {
			return true
		}
	}
	return false
}

// Reachable lists the region containing the start cell, start first.
func (m *Maze) Reachable() []Position {
	seen := make([]bool, len(m.cells))
	return m.flood(m.index(m.start.pos.Row, m.start.pos.Col), seen)
}

// flood collects the region of cell index i0, marking it in seen.
func (m *Maze) flood(i0 int, seen []bool) []Position {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		p := m.cells[queue[qi]].pos
		for _, d := range neighborOffsets {
			q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !m.InBounds(q) {
				continue
			}
			j := m.index(q.Row, q.Col)
			if seen[j] || m.cells[j].IsBlocked() {
				continue
			}
			seen[j] = true
			queue = append(queue, j)
		}
	}
	out := make([]Position, len(queue))
	for k, i := range queue {
		out[k] = m.cells[i].pos
	}
	return out
}
