// Package maze defines cell contents, positions, options and sentinel
// errors for grid mazes.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for maze construction and mutation.
var (
	// ErrEmptyGrid indicates a maze without rows or columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrStartIsGoal indicates identical start and goal positions.
	ErrStartIsGoal = errors.New("maze: start and goal must differ")
	// ErrReservedCell indicates an attempt to block the start or goal cell.
	ErrReservedCell = errors.New("maze: start and goal cells cannot be blocked")
	// ErrBadLayout indicates a malformed text layout.
	ErrBadLayout = errors.New("maze: malformed layout")
)

// Contents is the closed set of states a cell can be in.
type Contents int

const (
	// Empty is an open, unmarked cell.
	Empty Contents = iota
	// Start is the single start cell.
	Start
	// Goal is the single goal cell.
	Goal
	// Blocked is an impassable cell.
	Blocked
	// Path is an open cell marked as lying on a reconstructed path.
	Path
)

var contentsNames = [...]string{"EMPTY", "START", "GOAL", "BLOCKED", "PATH"}

var contentsSymbols = [...]string{" ", "⦿", "◆", "░", "★"}

// String returns the upper-case name of c.
func (c Contents) String() string {
	if c < Empty || c > Path {
		return fmt.Sprintf("Contents(%d)", int(c))
	}
	return contentsNames[c]
}

// Symbol returns the single glyph used when rendering c.
func (c Contents) Symbol() string {
	if c < Empty || c > Path {
		return "?"
	}
	return contentsSymbols[c]
}

// Position is a (row, col) grid coordinate. It is comparable and used as a map key.
type Position struct {
	Row, Col int
}

// String formats p as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Cell is one grid square. Cells live inside their Maze; only the maze
// changes their contents.
type Cell struct {
	pos      Position
	contents Contents
}

// Position returns the cell's coordinate.
func (c *Cell) Position() Position { return c.pos }

// Contents returns the cell's current state.
func (c *Cell) Contents() Contents { return c.contents }

// IsBlocked reports whether the cell is impassable.
func (c *Cell) IsBlocked() bool { return c.contents == Blocked }

// IsStart reports whether the cell is the start.
func (c *Cell) IsStart() bool { return c.contents == Start }

// IsGoal reports whether the cell is the goal.
func (c *Cell) IsGoal() bool { return c.contents == Goal }

// Equal reports whether c and o have the same position and contents.
// Cells taken from different copies of one maze compare equal.
func (c *Cell) Equal(o *Cell) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.pos == o.pos && c.contents == o.contents
}

// String formats the cell as "(row, col): glyph", with [EMPTY] for open cells.
func (c *Cell) String() string {
	if c.contents == Empty {
		return fmt.Sprintf("%s: [EMPTY]", c.pos)
	}
	return fmt.Sprintf("%s: %s", c.pos, c.contents.Symbol())
}

// DefaultBlockedProportion is the share of free cells New blocks when no
// WithBlockedProportion option is given.
const DefaultBlockedProportion = 0.2

// Option configures New.
type Option func(*options)

// options collects construction parameters for New.
type options struct {
	start, goal       Position
	startSet, goalSet bool
	blocked           float64
	rng               *rand.Rand
}

// defaultOptions returns start (0,0), goal unset (resolved to the bottom-right
// corner), DefaultBlockedProportion and no RNG.
func defaultOptions() options {
	return options{blocked: DefaultBlockedProportion}
}

// WithStart places the start cell at pos.
func WithStart(pos Position) Option {
	return func(o *options) {
		o.start, o.startSet = pos, true
	}
}

// WithGoal places the goal cell at pos.
func WithGoal(pos Position) Option {
	return func(o *options) {
		o.goal, o.goalSet = pos, true
	}
}

// WithBlockedProportion sets the share p of free cells (all but start and
// goal) to block. Panics if p is outside [0,1].
func WithBlockedProportion(p float64) Option {
	if p < 0 || p > 1 || p != p {
		panic(fmt.Sprintf("maze: WithBlockedProportion(%v) outside [0,1]", p))
	}
	return func(o *options) {
		o.blocked = p
	}
}

// WithRand supplies the randomness source used to choose blocked cells.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds a fresh randomness source; use it in tests to lock layouts.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}
