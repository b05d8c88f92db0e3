package maze

import (
	"fmt"
	"strings"
)

// MarkPath flips every cell of path to Path, except the start and goal.
// The cells must belong to m. Not safe while a search runs on m.
func (m *Maze) MarkPath(path []*Cell) {
	for _, c := range path {
		if c == nil || c.contents == Start || c.contents == Goal {
			continue
		}
		c.contents = Path
	}
}

// ClearPath resets every Path cell to Empty.
func (m *Maze) ClearPath() {
	for i := range m.cells {
		if m.cells[i].contents == Path {
			m.cells[i].contents = Empty
		}
	}
}

// String renders the grid one row per line, each cell the contents glyph
// padded to width two and delimited by vertical bars. No trailing newline.
func (m *Maze) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('|')
		for c := 0; c < m.cols; c++ {
			fmt.Fprintf(&b, "%-2s|", m.cells[m.index(r, c)].contents.Symbol())
		}
	}
	return b.String()
}
