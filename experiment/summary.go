package experiment

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/mazesearch/search"
)

// Summary aggregates outcomes. The zero value is ready to use.
type Summary struct {
	Trials   int
	Solvable int

	// Totals over solvable trials only.
	explored map[search.Algorithm]int
	lengths  map[search.Algorithm]int

	AStarMatchesBFSLength int
	AStarSameAsBFS        int
}

// Add folds one outcome into the summary.
func (s *Summary) Add(o Outcome) {
	s.Trials++
	if !o.Solvable {
		return
	}
	if s.explored == nil {
		s.explored = make(map[search.Algorithm]int, 3)
		s.lengths = make(map[search.Algorithm]int, 3)
	}
	s.Solvable++
	for alg, n := range o.Explored {
		s.explored[alg] += n
	}
	for alg, n := range o.Lengths {
		s.lengths[alg] += n
	}
	if o.AStarMatchesBFSLength {
		s.AStarMatchesBFSLength++
	}
	if o.AStarSameAsBFS {
		s.AStarSameAsBFS++
	}
}

// MeanExplored is the mean admission count of alg over solvable trials, 0 if none.
func (s Summary) MeanExplored(alg search.Algorithm) float64 {
	return mean(s.explored[alg], s.Solvable)
}

// MeanLength is the mean path length of alg over solvable trials, 0 if none.
func (s Summary) MeanLength(alg search.Algorithm) float64 {
	return mean(s.lengths[alg], s.Solvable)
}

func mean(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// String renders the summary as an aligned table.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "trials: %d, solvable: %d\n", s.Trials, s.Solvable)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tmean explored\tmean length")
	for _, alg := range search.Algorithms() {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", alg, s.MeanExplored(alg), s.MeanLength(alg))
	}
	tw.Flush()

	fmt.Fprintf(&b, "A* length equals BFS: %d/%d\n", s.AStarMatchesBFSLength, s.Solvable)
	fmt.Fprintf(&b, "A* path equals BFS: %d/%d", s.AStarSameAsBFS, s.Solvable)
	return b.String()
}
