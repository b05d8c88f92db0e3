package search_test

import (
	"testing"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// benchMaze builds a 200×200 maze with 20% blocks. Solvability does not
// matter here: an unsolvable maze drains the whole reachable region.
func benchMaze(b *testing.B) *maze.Maze {
	b.Helper()
	m, err := maze.New(200, 200, maze.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return m
}

func benchmarkAlgorithm(b *testing.B, alg search.Algorithm) {
	m := benchMaze(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(alg, m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDFS measures DFS on a 200×200 maze. Complexity: O(N)
func BenchmarkDFS(b *testing.B) { benchmarkAlgorithm(b, search.AlgorithmDFS) }

// BenchmarkBFS measures BFS on a 200×200 maze. Complexity: O(N)
func BenchmarkBFS(b *testing.B) { benchmarkAlgorithm(b, search.AlgorithmBFS) }

// BenchmarkAStar measures A* on a 200×200 maze. Complexity: O(N log N)
func BenchmarkAStar(b *testing.B) { benchmarkAlgorithm(b, search.AlgorithmAStar) }
