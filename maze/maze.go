package maze

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// neighborOffsets lists (dRow, dCol) in the order Neighbors reports them:
// south, north, east, west. DFS and BFS results depend on this order.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Maze is a rows×cols grid with exactly one start and one goal cell.
type Maze struct {
	rows, cols int
	cells      []Cell // row-major: index = row*cols + col
	start      *Cell
	goal       *Cell
}

// New builds a rows×cols maze of empty cells, places start and goal, then
// blocks round((rows·cols−2)·p) of the remaining cells chosen uniformly
// without replacement. Half-way counts round to even.
//
// Returns ErrEmptyGrid if rows or cols is not positive, ErrOutOfBounds if
// start or goal lies outside the grid, ErrStartIsGoal if they coincide.
// A maze whose blocks cut the goal off from the start is valid; searches
// report it as having no path.
//
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, opts ...Option) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.goalSet {
		o.goal = Position{Row: rows - 1, Col: cols - 1}
	}

	m, err := newBlank(rows, cols, o.start, o.goal)
	if err != nil {
		return nil, err
	}

	k := int(math.RoundToEven(float64(rows*cols-2) * o.blocked))
	if k > 0 {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		m.blockRandom(k, rng)
	}

	return m, nil
}

// newBlank returns a maze with only start and goal set.
func newBlank(rows, cols int, start, goal Position) (*Maze, error) {
	m := &Maze{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s in %d×%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !m.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %s in %d×%d grid", ErrOutOfBounds, goal, rows, cols)
	}
	if start == goal {
		return nil, fmt.Errorf("%w: both at %s", ErrStartIsGoal, start)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.cells[m.index(r, c)] = Cell{pos: Position{Row: r, Col: c}}
		}
	}
	m.start = &m.cells[m.index(start.Row, start.Col)]
	m.start.contents = Start
	m.goal = &m.cells[m.index(goal.Row, goal.Col)]
	m.goal.contents = Goal

	return m, nil
}

// blockRandom blocks k free cells by a partial Fisher–Yates shuffle over
// every cell except start and goal.
func (m *Maze) blockRandom(k int, rng *rand.Rand) {
	free := make([]int, 0, len(m.cells)-2)
	for i := range m.cells {
		if &m.cells[i] == m.start || &m.cells[i] == m.goal {
			continue
		}
		free = append(free, i)
	}
	if k > len(free) {
		k = len(free)
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
		m.cells[free[i]].contents = Blocked
	}
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the start cell.
func (m *Maze) Start() *Cell { return m.start }

// Goal returns the goal cell.
func (m *Maze) Goal() *Cell { return m.goal }

// InBounds reports whether pos lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}

// index maps (row, col) to a row-major offset.
func (m *Maze) index(row, col int) int {
	return row*m.cols + col
}

// At returns the cell at pos, or false if pos is out of bounds.
func (m *Maze) At(pos Position) (*Cell, bool) {
	if !m.InBounds(pos) {
		return nil, false
	}
	return &m.cells[m.index(pos.Row, pos.Col)], true
}

// Row returns the cells of row r from west to east, or nil if r is out of range.
func (m *Maze) Row(r int) []*Cell {
	if r < 0 || r >= m.rows {
		return nil
	}
	row := make([]*Cell, m.cols)
	for c := range row {
		row[c] = &m.cells[m.index(r, c)]
	}
	return row
}

// BlockedCount returns the number of blocked cells.
func (m *Maze) BlockedCount() int {
	n := 0
	for i := range m.cells {
		if m.cells[i].contents == Blocked {
			n++
		}
	}
	return n
}

// Block marks the cell at pos as blocked. Intended for building fixed
// mazes before any search runs.
// Returns ErrOutOfBounds or ErrReservedCell.
func (m *Maze) Block(pos Position) error {
	c, ok := m.At(pos)
	if !ok {
		return fmt.Errorf("%w: block %s", ErrOutOfBounds, pos)
	}
	if c == m.start || c == m.goal {
		return fmt.Errorf("%w: %s", ErrReservedCell, pos)
	}
	c.contents = Blocked
	return nil
}

// Neighbors returns the cells orthogonally adjacent to c that are inside
// the grid and not blocked, in the order south, north, east, west. The
// start cell is never returned. The slice is freshly allocated.
// Complexity: O(1).
func (m *Maze) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n, ok := m.At(Position{Row: c.pos.Row + d[0], Col: c.pos.Col + d[1]})
		if !ok || n.IsBlocked() || n == m.start {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Clone returns an independent deep copy of m. Searches and path marking on
// the copy never affect m.
func (m *Maze) Clone() *Maze {
	cp := &Maze{
		rows:  m.rows,
		cols:  m.cols,
		cells: make([]Cell, len(m.cells)),
	}
	copy(cp.cells, m.cells)
	cp.start = &cp.cells[m.index(m.start.pos.Row, m.start.pos.Col)]
	cp.goal = &cp.cells[m.index(m.goal.pos.Row, m.goal.pos.Col)]
	return cp
}
