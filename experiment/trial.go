package experiment

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// ErrInconsistentResults is returned when the searches disagree with each
// other or with the flood fill of the maze about whether the goal is reachable.
var ErrInconsistentResults = errors.New("experiment: searches disagree on solvability")

// Option configures Trial and Runner.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	display io.Writer
}

func resolve(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With(slog.String("component", "experiment"))
	return o
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithDisplay renders every trial's marked mazes to w. Panics on nil.
func WithDisplay(w io.Writer) Option {
	if w == nil {
		panic("experiment: WithDisplay(nil)")
	}
	return func(o *options) {
		o.display = w
	}
}

// Outcome is the comparison record of one maze.
type Outcome struct {
	ID         uuid.UUID
	Rows, Cols int
	// Solvable is true when the goal is reachable from the start.
	Solvable bool
	// Reachable counts the open cells connected to the start, start included.
	Reachable int
	// Explored holds each algorithm's frontier admission count.
	Explored map[search.Algorithm]int
	// Lengths holds each algorithm's path length in cells; empty when unsolvable.
	Lengths map[search.Algorithm]int
	// AStarMatchesBFSLength reports equal A* and BFS path lengths.
	AStarMatchesBFSLength bool
	// AStarSameAsBFS reports that A* and BFS chose exactly the same cells.
	AStarSameAsBFS bool
}

// Trial runs every algorithm on its own clone of m, so m itself is never
// marked, and compares the results.
func Trial(m *maze.Maze, opts ...Option) (Outcome, error) {
	if m == nil {
		return Outcome{}, fmt.Errorf("experiment: %w", search.ErrMazeNil)
	}
	return trial(m, resolve(opts))
}

func trial(m *maze.Maze, o options) (Outcome, error) {
	out := Outcome{
		ID:        uuid.New(),
		Rows:      m.Rows(),
		Cols:      m.Cols(),
		Reachable: len(m.Reachable()),
		Explored:  make(map[search.Algorithm]int, 3),
		Lengths:   make(map[search.Algorithm]int, 3),
	}

	algs := search.Algorithms()
	copies := make(map[search.Algorithm]*maze.Maze, len(algs))
	results := make(map[search.Algorithm]*search.Result, len(algs))
	found := 0
	for _, alg := range algs {
		cp := m.Clone()
		res, err := search.Run(alg, cp)
		if err != nil {
			return Outcome{}, fmt.Errorf("experiment: trial %s: %w", out.ID, err)
		}
		copies[alg], results[alg] = cp, res
		out.Explored[alg] = res.Explored
		if res.Found() {
			found++
		}
	}

	connected := m.Connected()
	switch {
	case found == 0 && !connected:
		o.logger.Debug("maze not solvable",
			slog.String("trial", out.ID.String()),
			slog.Int("rows", out.Rows),
			slog.Int("cols", out.Cols),
			slog.Int("reachable", out.Reachable),
		)
		if o.display != nil {
			fmt.Fprintf(o.display, "trial %s: maze is not solvable\n%s\n\n", out.ID, m)
		}
		return out, nil
	case found == len(algs) && connected:
	default:
		return Outcome{}, fmt.Errorf("%w: trial %s, %d of %d found the goal, connected=%t",
			ErrInconsistentResults, out.ID, found, len(algs), connected)
	}

	out.Solvable = true
	for _, alg := range algs {
		n, err := results[alg].PathLength()
		if err != nil {
			return Outcome{}, fmt.Errorf("experiment: trial %s: %w", out.ID, err)
		}
		out.Lengths[alg] = n
	}
	out.AStarMatchesBFSLength = out.Lengths[search.AlgorithmAStar] == out.Lengths[search.AlgorithmBFS]

	// compare before marking: marked cells no longer equal their unmarked twins
	same, err := search.SamePath(results[search.AlgorithmBFS], results[search.AlgorithmAStar])
	if err != nil {
		return Outcome{}, fmt.Errorf("experiment: trial %s: %w", out.ID, err)
	}
	out.AStarSameAsBFS = same

	if o.display != nil {
		for _, alg := range algs {
			path, err := results[alg].Path()
			if err != nil {
				return Outcome{}, fmt.Errorf("experiment: trial %s: %w", out.ID, err)
			}
			copies[alg].MarkPath(path)
			fmt.Fprintf(o.display, "trial %s: %s explored %d, path %d cells\n%s\n\n",
				out.ID, alg, out.Explored[alg], out.Lengths[alg], copies[alg])
		}
	}

	o.logger.Debug("trial finished",
		slog.String("trial", out.ID.String()),
		slog.Int("rows", out.Rows),
		slog.Int("cols", out.Cols),
		slog.Bool("astar_matches_bfs", out.AStarMatchesBFSLength),
		slog.Bool("astar_same_as_bfs", out.AStarSameAsBFS),
	)
	return out, nil
}
