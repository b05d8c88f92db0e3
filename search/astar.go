package search

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/container"
	"github.com/katalvlaran/mazesearch/maze"
)

// Manhattan returns |a.Row−b.Row| + |a.Col−b.Col|, the number of orthogonal
// steps between a and b on an open grid. Admissible and consistent for
// unit-cost four-way movement.
func Manhattan(a, b maze.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// priority orders nodes by f, then by h among equal f, so the search runs
// toward the goal along the many equal-cost routes of an open grid.
// scale must exceed every h in the maze.
func priority(n Node, scale int) int {
	return n.F()*scale + n.H
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AStar runs A* from the maze start with unit step cost and the Manhattan
// heuristic.
//
// Each popped node's own g is extended by one for its neighbours. A
// neighbour is admitted when it has no recorded g yet or the new g is
// strictly lower; older, dearer entries stay in the heap and are skipped
// when popped (lazy decrease-key). The search ends when the goal is popped
// or the heap drains. Ties in f go to the node closer to the goal.
// Returns ErrMazeNil for a nil maze.
func AStar(m *maze.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	w := newWalker(m, opts)
	start, goal := m.Start(), m.Goal()
	target := goal.Position()

	// best maps a position to the lowest g admitted for it so far.
	best := make(map[maze.Position]int, m.Rows()*m.Cols())
	pq := container.NewPriorityQueue[int, NodeID]()
	scale := m.Rows() + m.Cols() // Manhattan never exceeds rows+cols-2

	root := w.tree.add(start, NoNode, 0, Manhattan(start.Position(), target))
	best[start.Position()] = 0
	pq.Insert(priority(w.tree.nodes[root], scale), root)

	for !pq.IsEmpty() {
		e, err := pq.RemoveMin()
		if err != nil {
			return nil, fmt.Errorf("search: %s frontier: %w", AlgorithmAStar, err)
		}
		cur := w.tree.nodes[e.Value]

		// stale: a cheaper entry for this cell was admitted after this one
		if cur.G > best[cur.Cell.Position()] {
			continue
		}
		if cur.Cell == goal {
			return w.result(AlgorithmAStar, e.Value), nil
		}
		w.opts.OnExpand(cur.Cell)

		g := cur.G + 1
		for _, nbr := range m.Neighbors(cur.Cell) {
			p := nbr.Position()
			if prev, seen := best[p]; seen && g >= prev {
				continue
			}
			best[p] = g
			child := w.tree.add(nbr, e.Value, g, Manhattan(p, target))
			w.admit(nbr)
			pq.Insert(priority(w.tree.nodes[child], scale), child)
		}
	}

	return w.result(AlgorithmAStar, NoNode), nil
}
