// Package experiment runs DFS, BFS and A* side by side on randomized mazes
// and aggregates how much each explored and how long its path was.
//
// What
//
//   - Trial runs the three searches on independent clones of one maze and
//     returns an Outcome: explored counts, path lengths, the size of the
//     start's region, and whether A* matched BFS in length and in cells.
//   - Runner draws maze sizes from a config.Config, builds the mazes from
//     one seeded source, runs a Trial per maze and collects a Report.
//   - Summary accumulates outcomes into means and agreement counts.
//
// Every outcome carries a random UUID that appears in its log records so a
// displayed maze can be matched with its log line.
//
// Options
//
//   - WithLogger(l):  structured logger (default slog.Default()).
//   - WithDisplay(w): render the three marked mazes of every trial to w.
//
// Errors
//
//   - ErrInconsistentResults  the searches, or the flood fill of the maze,
//     disagree on whether a path exists.
//   - Search and maze construction errors are wrapped and returned.
package experiment
