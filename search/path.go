package search

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/maze"
)

// Path returns the cells from start to goal, both included.
// Returns ErrNoPath if the traversal did not reach the goal.
func (r *Result) Path() ([]*maze.Cell, error) {
	if !r.Found() {
		return nil, fmt.Errorf("%w: %s result", ErrNoPath, r.Algorithm)
	}
	return r.tree.Path(r.terminal)
}

// PathLength returns the number of cells on the path, both endpoints included.
// Returns ErrNoPath if the traversal did not reach the goal.
func (r *Result) PathLength() (int, error) {
	if !r.Found() {
		return 0, fmt.Errorf("%w: %s result", ErrNoPath, r.Algorithm)
	}
	n := 0
	for cur := r.terminal; cur != NoNode; cur = r.tree.nodes[cur].Parent {
		n++
	}
	return n, nil
}

// SamePath reports whether a and b reconstruct to the same cells in the
// same order. Cells compare by position and contents, so results computed
// on separate copies of one maze can be compared.
// Returns ErrNoPath if either result did not reach the goal.
func SamePath(a, b *Result) (bool, error) {
	pa, err := a.Path()
	if err != nil {
		return false, err
	}
	pb, err := b.Path()
	if err != nil {
		return false, err
	}
	if len(pa) != len(pb) {
		return false, nil
	}
	for i := range pa {
		if !pa[i].Equal(pb[i]) {
			return false, nil
		}
	}
	return true, nil
}
