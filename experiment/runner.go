package experiment

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazesearch/config"
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// Runner runs a batch of trials on randomly sized mazes.
type Runner struct {
	cfg  config.Config
	rng  *rand.Rand
	opts options
}

// NewRunner validates cfg and prepares the random source: cfg.Seed when
// non-zero, the clock otherwise.
func NewRunner(cfg config.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		opts: resolve(opts),
	}, nil
}

// Run executes cfg.Trials trials and returns their summary. The first error
// aborts the batch.
func (r *Runner) Run() (Summary, error) {
	var s Summary
	r.opts.logger.Info("batch started",
		slog.Int("trials", r.cfg.Trials),
		slog.Float64("blocked", r.cfg.Blocked),
	)
	for i := 0; i < r.cfg.Trials; i++ {
		rows := between(r.rng, r.cfg.MinRows, r.cfg.MaxRows)
		cols := between(r.rng, r.cfg.MinCols, r.cfg.MaxCols)
		m, err := maze.New(rows, cols,
			maze.WithBlockedProportion(r.cfg.Blocked),
			maze.WithRand(r.rng),
		)
		if err != nil {
			return s, fmt.Errorf("experiment: trial %d: %w", i, err)
		}
		out, err := trial(m, r.opts)
		if err != nil {
			return s, err
		}
		s.Add(out)

		explored := make([]any, 0, len(out.Explored))
		for _, alg := range search.Algorithms() {
			explored = append(explored, slog.Int(alg.String(), out.Explored[alg]))
		}
		r.opts.logger.Info("trial",
			slog.Int("n", i),
			slog.String("trial", out.ID.String()),
			slog.Int("rows", rows),
			slog.Int("cols", cols),
			slog.Bool("solvable", out.Solvable),
			slog.Group("explored", explored...),
		)
	}
	r.opts.logger.Info("batch finished",
		slog.Int("trials", s.Trials),
		slog.Int("solvable", s.Solvable),
	)
	return s, nil
}

// between draws uniformly from [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
