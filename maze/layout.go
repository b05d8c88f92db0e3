package maze

import (
	"fmt"
	"strings"
)

// Layout glyphs accepted by Parse.
const (
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
	GlyphBlocked = '#'
	GlyphEmpty   = '.'
)

// classicLayout is the 10×10 benchmark maze: start top-left, goal
// bottom-right, thirteen fixed blocks.
const classicLayout = `
S....#.#..
.#........
.......#..
.##......#
..#.......
..#..#....
.#........
..........
.....#...#
.........G
`

// Parse builds a maze from a text layout, one line per row. Leading and
// trailing whitespace on each line is ignored, as are blank lines.
// Glyphs: 'S' start, 'G' goal, '#' blocked, '.' empty.
//
// Returns ErrEmptyGrid for an empty layout, ErrNonRectangular for ragged
// rows, ErrBadLayout for an unknown glyph or a missing or repeated S or G.
func Parse(layout string) (*Maze, error) {
	var lines [][]rune
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	for _, l := range lines {
		if len(l) != cols {
			return nil, ErrNonRectangular
		}
	}

	var start, goal Position
	var blocks []Position
	starts, goals := 0, 0
	for r, l := range lines {
		for c, g := range l {
			p := Position{Row: r, Col: c}
			switch g {
			case GlyphStart:
				start = p
				starts++
			case GlyphGoal:
				goal = p
				goals++
			case GlyphBlocked:
				blocks = append(blocks, p)
			case GlyphEmpty:
			default:
				return nil, fmt.Errorf("%w: glyph %q at %s", ErrBadLayout, g, p)
			}
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: want one %c and one %c, got %d and %d",
			ErrBadLayout, GlyphStart, GlyphGoal, starts, goals)
	}

	m, err := newBlank(rows, cols, start, goal)
	if err != nil {
		return nil, err
	}
	for _, p := range blocks {
		if err = m.Block(p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustParse is like Parse but panics on error. For fixed layouts in tests
// and examples.
func MustParse(layout string) *Maze {
	m, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return m
}

// Classic returns a fresh copy of the 10×10 benchmark maze.
func Classic() *Maze {
	return MustParse(classicLayout)
}

// Layout renders m back into Parse's glyph format. Path cells render as empty.
func (m *Maze) Layout() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			switch m.cells[m.index(r, c)].contents {
			case Start:
				b.WriteRune(GlyphStart)
			case Goal:
				b.WriteRune(GlyphGoal)
			case Blocked:
				b.WriteRune(GlyphBlocked)
			default:
				b.WriteRune(GlyphEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
