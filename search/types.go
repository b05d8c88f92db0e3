// Package search defines algorithm identifiers, options, sentinel errors,
// the node arena and the result type.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazesearch/maze"
)

// Sentinel errors for search execution and path reconstruction.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("search: maze is nil")

	// ErrNoPath is returned when a path is requested from a result that
	// never reached the goal.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrUnknownAlgorithm is returned by Run for an undefined Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm identifies a search strategy.
type Algorithm int

const (
	// AlgorithmDFS is depth-first search.
	AlgorithmDFS Algorithm = iota
	// AlgorithmBFS is breadth-first search.
	AlgorithmBFS
	// AlgorithmAStar is A* with the Manhattan heuristic.
	AlgorithmAStar
)

// Algorithms returns every strategy in reporting order: DFS, BFS, A*.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDFS, AlgorithmBFS, AlgorithmAStar}
}

// String returns the short display name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDFS:
		return "DFS"
	case AlgorithmBFS:
		return "BFS"
	case AlgorithmAStar:
		return "A*"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds the traversal hooks.
type Options struct {
	// OnAdmit is called each time a cell is admitted to the frontier,
	// with the explored count including this admission.
	OnAdmit func(c *maze.Cell, explored int)

	// OnExpand is called each time a node is taken off the frontier and
	// its neighbours are examined.
	OnExpand func(c *maze.Cell)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnAdmit:  func(*maze.Cell, int) {},
		OnExpand: func(*maze.Cell) {},
	}
}

// WithOnAdmit registers a callback run on every frontier admission.
func WithOnAdmit(fn func(c *maze.Cell, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdmit = fn
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(c *maze.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// NodeID indexes a Node inside its Tree, in creation order.
type NodeID int

// NoNode is the parent of the root and the terminal of a failed search.
const NoNode NodeID = -1

// Node is one step of a discovered path. It never changes after creation.
type Node struct {
	// Cell is the maze cell this node covers.
	Cell *maze.Cell
	// Parent is the node that discovered this one, NoNode for the root.
	Parent NodeID
	// G is the number of steps from the start along the parent chain.
	G int
	// H is the heuristic estimate to the goal; zero outside A*.
	H int
}

// F returns G + H, the A* priority of the node.
func (n Node) F() int { return n.G + n.H }

// Tree is an append-only arena of search nodes.
type Tree struct {
	nodes []Node
}

// add appends a node and returns its id.
func (t *Tree) add(c *maze.Cell, parent NodeID, g, h int) NodeID {
	t.nodes = append(t.nodes, Node{Cell: c, Parent: parent, G: g, H: h})
	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of nodes created during the search.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given id, or false if id is out of range.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Path walks parent links from id to the root and returns the cells in
// root→id order. Returns ErrNoPath if id is not in the tree.
func (t *Tree) Path(id NodeID) ([]*maze.Cell, error) {
	if _, ok := t.Node(id); !ok {
		return nil, fmt.Errorf("%w: node %d not in tree of %d", ErrNoPath, id, len(t.nodes))
	}
	var path []*maze.Cell
	for cur := id; cur != NoNode; cur = t.nodes[cur].Parent {
		path = append(path, t.nodes[cur].Cell)
	}
	// reverse to get root → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Result is the outcome of one traversal.
type Result struct {
	// Algorithm is the strategy that produced the result.
	Algorithm Algorithm
	// Explored is the number of frontier admissions.
	Explored int

	tree     *Tree
	terminal NodeID
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return r.terminal != NoNode }

// Terminal returns the node wrapping the goal, or false if none was found.
func (r *Result) Terminal() (Node, bool) {
	if !r.Found() {
		return Node{}, false
	}
	return r.tree.Node(r.terminal)
}

// Tree returns the node arena built during the traversal.
func (r *Result) Tree() *Tree { return r.tree }
