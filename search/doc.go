// Package search finds a start→goal path through a maze.Maze with three
// classical strategies and reports how much work each one did.
//
// What
//
//   - DFS:   frontier is a container.Stack (LIFO).
//   - BFS:   frontier is a container.Queue (FIFO); the path has the fewest edges.
//   - AStar: frontier is a container.PriorityQueue keyed by f = g + h, ties
//     to the smaller h, with unit step cost and the Manhattan heuristic; the
//     path has the fewest edges.
//   - Every call returns a *Result holding the explored count, the node
//     arena and the terminal node (absent when the goal is unreachable).
//   - Result.Path, Result.PathLength and SamePath reconstruct and compare paths.
//
// Explored count
//
//	The number of frontier admissions, start excluded. DFS and BFS admit a
//	cell at most once (it is marked visited on push). A* admits a cell again
//	whenever it finds a strictly cheaper g for it. The three counts are
//	directly comparable as a measure of search effort.
//
// Termination
//
//	DFS and BFS stop as soon as the goal is pushed. A* stops when the goal
//	is popped. All three stop with Found()==false once the frontier drains.
//	An unreachable goal is a normal outcome, not an error.
//
// Determinism
//
//	maze.Neighbors returns south, north, east, west, so DFS and BFS are fully
//	reproducible. A* breaks f ties in favour of the smaller h, then by heap
//	order.
//
// Node arena
//
//	Search nodes live in a Tree indexed by creation order; each node stores
//	its parent's NodeID (NoNode for the root). Paths are rebuilt by walking
//	ids, which never mutates the tree.
//
// Complexity (N = rows×cols)
//
//   - DFS, BFS: O(N) time and memory.
//   - AStar:    O(N log N) time, O(N) memory.
//
// Options
//
//   - WithOnAdmit(fn):  called for every frontier admission with the running count.
//   - WithOnExpand(fn): called for every node taken off the frontier and expanded.
//
// Errors
//
//   - ErrMazeNil           the maze pointer is nil.
//   - ErrNoPath            path requested from a result that did not reach the goal.
//   - ErrUnknownAlgorithm  Run called with an undefined Algorithm.
//
// A traversal never mutates the maze. Do not mark paths on a maze while
// another traversal runs on it; clone the maze per traversal instead.
package search
