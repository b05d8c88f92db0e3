// Package maze models a rectangular grid maze of cells with one start,
// one goal and any number of blocked cells, and defines the adjacency
// rule the searches in package search walk over.
//
// What:
//
//   - Maze owns a row-major grid of Cell values; searches hold *Cell
//     references into it.
//   - New builds a rows×cols maze and blocks round((rows·cols−2)·p) random
//     cells (never start or goal) from an explicit *rand.Rand.
//   - Parse builds a maze from a text layout; Classic returns the fixed
//     10×10 benchmark maze.
//   - Neighbors returns the open orthogonal neighbours of a cell in the fixed
//     order south, north, east, west, never including the start cell.
//   - Regions flood-fills the open cells into 4-connected regions;
//     Reachable and Connected answer solvability without searching.
//   - MarkPath/ClearPath flip interior path cells for rendering; String
//     renders the grid.
//
// Why:
//
//   - A closed Contents enum keeps cell states explicit; Position is a plain
//     comparable value so searches key their visited sets by it and never by
//     mutable cell contents.
//   - Clone gives every search its own grid, so path marking on one copy
//     never leaks into another.
//
// Complexity:
//
//   - New:       O(R×C) time and memory.
//   - Neighbors: O(1) (at most four bounds checks).
//   - Clone:     O(R×C).
//   - Regions:   O(R×C).
//
// Options:
//
//   - WithStart(pos), WithGoal(pos):  start/goal positions (default (0,0) and (R−1,C−1)).
//   - WithBlockedProportion(p):       fraction of free cells to block, p ∈ [0,1] (default 0.2).
//   - WithRand(r), WithSeed(s):       randomness source for blocking.
//
// Errors:
//
//   - ErrEmptyGrid:      rows or cols not positive, or an empty layout.
//   - ErrNonRectangular: layout rows of differing lengths.
//   - ErrOutOfBounds:    a position outside the grid.
//   - ErrStartIsGoal:    start and goal coincide.
//   - ErrReservedCell:   attempt to block the start or goal.
//   - ErrBadLayout:      unknown glyph, or missing/duplicate start or goal.
//
// A Maze is not safe for concurrent use.
package maze
