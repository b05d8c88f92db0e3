package search

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/container"
	"github.com/katalvlaran/mazesearch/maze"
)

// frontier is the container discipline shared by DFS and BFS.
type frontier interface {
	Push(id NodeID)
	Pop() (NodeID, error)
	IsEmpty() bool
}

// walker encapsulates mutable traversal state.
type walker struct {
	maze     *maze.Maze
	opts     Options
	tree     *Tree
	visited  map[maze.Position]bool
	explored int
}

// newWalker applies opts and sizes the arena for m.
func newWalker(m *maze.Maze, opts []Option) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := m.Rows() * m.Cols()
	return &walker{
		maze:    m,
		opts:    o,
		tree:    &Tree{nodes: make([]Node, 0, n)},
		visited: make(map[maze.Position]bool, n),
	}
}

// admit counts a frontier admission and fires OnAdmit.
func (w *walker) admit(c *maze.Cell) {
	w.explored++
	w.opts.OnAdmit(c, w.explored)
}

// result packages the walker state.
func (w *walker) result(alg Algorithm, terminal NodeID) *Result {
	return &Result{Algorithm: alg, Explored: w.explored, tree: w.tree, terminal: terminal}
}

// DFS runs depth-first search from the maze start.
// Cells are marked visited when pushed, and the search stops as soon as
// the goal is pushed. An unreachable goal yields a Result with
// Found()==false. Returns ErrMazeNil for a nil maze.
func DFS(m *maze.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	return newWalker(m, opts).run(AlgorithmDFS, container.NewStack[NodeID]())
}

// BFS runs breadth-first search from the maze start. The path found has
// the minimum number of edges. Admission and termination rules match DFS.
// Returns ErrMazeNil for a nil maze.
func BFS(m *maze.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	return newWalker(m, opts).run(AlgorithmBFS, container.NewQueue[NodeID]())
}

// run drives an uninformed search over f until the goal is pushed or f drains.
func (w *walker) run(alg Algorithm, f frontier) (*Result, error) {
	start, goal := w.maze.Start(), w.maze.Goal()
	w.visited[start.Position()] = true
	f.Push(w.tree.add(start, NoNode, 0, 0))

	for !f.IsEmpty() {
		id, err := f.Pop()
		if err != nil {
			return nil, fmt.Errorf("search: %s frontier: %w", alg, err)
		}
		cur := w.tree.nodes[id]
		w.opts.OnExpand(cur.Cell)

		for _, nbr := range w.maze.Neighbors(cur.Cell) {
			if w.visited[nbr.Position()] {
				continue
			}
			w.visited[nbr.Position()] = true
			child := w.tree.add(nbr, id, cur.G+1, 0)
			w.admit(nbr)
			f.Push(child)
			if nbr == goal {
				return w.result(alg, child), nil
			}
		}
	}

	return w.result(alg, NoNode), nil
}

// Run dispatches to the traversal named by alg.
// Returns ErrUnknownAlgorithm for an undefined value.
func Run(alg Algorithm, m *maze.Maze, opts ...Option) (*Result, error) {
	switch alg {
	case AlgorithmDFS:
		return DFS(m, opts...)
	case AlgorithmBFS:
		return BFS(m, opts...)
	case AlgorithmAStar:
		return AStar(m, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}
