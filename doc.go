// Package mazesearch compares uninformed and informed search on grid mazes.
//
// A maze is a rectangular grid of cells, some blocked, with one start and
// one goal. Depth-first search, breadth-first search and A* with the
// Manhattan heuristic each look for a path, and the experiment driver
// records how many cells each admitted to its frontier and how long the
// path it found was.
//
// Packages:
//
//	container/       generic Stack, Queue and min PriorityQueue frontiers
//	maze/            grid, cells, random and text-layout construction, rendering
//	search/          DFS, BFS, A*, search-node arena and path utilities
//	experiment/      side-by-side trials, batch runner and summary statistics
//	config/          run configuration from the environment and .env files
//	cmd/mazesearch/  command-line driver
//
// Quick example:
//
//	m := maze.MustParse(`
//		S#.
//		.##
//		..G`)
//	res, _ := search.AStar(m)
//	path, _ := res.Path()
//	m.MarkPath(path)
//	fmt.Println(m)
//
// The algorithm packages never log; attach hooks (search.WithOnAdmit,
// search.WithOnExpand) to observe a traversal. The experiment driver logs
// through log/slog.
package mazesearch
