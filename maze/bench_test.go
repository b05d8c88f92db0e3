package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazesearch/maze"
)

// BenchmarkNew measures construction of a 200×200 maze with 20% blocks.
// Complexity: O(R×C)
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := maze.New(200, 200, maze.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbors sweeps every cell of a 200×200 maze.
func BenchmarkNeighbors(b *testing.B) {
	m, err := maze.New(200, 200, maze.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for r := 0; r < m.Rows(); r++ {
			for _, c := range m.Row(r) {
				_ = m.Neighbors(c)
			}
		}
	}
}
