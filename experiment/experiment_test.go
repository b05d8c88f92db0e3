package experiment_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesearch/config"
	"github.com/katalvlaran/mazesearch/experiment"
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

func quiet() experiment.Option {
	return experiment.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

//----------------------------------------------------------------------------//
// Trial
//----------------------------------------------------------------------------//

func TestTrial_NilMaze(t *testing.T) {
	_, err := experiment.Trial(nil, quiet())
	assert.ErrorIs(t, err, search.ErrMazeNil)
}

func TestTrial_Corridor(t *testing.T) {
	m := maze.MustParse(`
		S#.
		.##
		..G`)
	out, err := experiment.Trial(m, quiet())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, out.ID)
	assert.Equal(t, 3, out.Rows)
	assert.Equal(t, 3, out.Cols)
	assert.True(t, out.Solvable)
	assert.Equal(t, 5, out.Reachable)
	for _, alg := range search.Algorithms() {
		assert.Equal(t, 4, out.Explored[alg], alg.String())
		assert.Equal(t, 5, out.Lengths[alg], alg.String())
	}
	assert.True(t, out.AStarMatchesBFSLength)
	assert.True(t, out.AStarSameAsBFS)
}

func TestTrial_Unsolvable(t *testing.T) {
	m := maze.MustParse(`
		S#.
		.#.
		.#G`)
	out, err := experiment.Trial(m, quiet())
	require.NoError(t, err)

	assert.False(t, out.Solvable)
	assert.Empty(t, out.Lengths)
	assert.Equal(t, 3, out.Reachable)
	for _, alg := range search.Algorithms() {
		assert.Equal(t, out.Reachable-1, out.Explored[alg], alg.String())
	}
	assert.False(t, out.AStarMatchesBFSLength)
	assert.False(t, out.AStarSameAsBFS)
}

func TestTrial_DisplayLeavesInputUnmarked(t *testing.T) {
	m := maze.Classic()
	before := m.String()

	var buf bytes.Buffer
	out, err := experiment.Trial(m, quiet(), experiment.WithDisplay(&buf))
	require.NoError(t, err)
	require.True(t, out.Solvable)

	assert.Equal(t, before, m.String())
	text := buf.String()
	for _, alg := range search.Algorithms() {
		assert.Contains(t, text, alg.String()+" explored ")
	}
	assert.Contains(t, text, maze.Path.Symbol())
	assert.Contains(t, text, out.ID.String())
	assert.Equal(t, 19, out.Lengths[search.AlgorithmBFS])
	assert.Equal(t, 19, out.Lengths[search.AlgorithmAStar])
}

func TestTrial_DisplayUnsolvable(t *testing.T) {
	var buf bytes.Buffer
	_, err := experiment.Trial(maze.MustParse("S#G"), quiet(), experiment.WithDisplay(&buf))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "not solvable")
}

func TestTrial_UniqueIDs(t *testing.T) {
	m := maze.MustParse("SG")
	a, err := experiment.Trial(m, quiet())
	require.NoError(t, err)
	b, err := experiment.Trial(m, quiet())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { experiment.WithLogger(nil) })
	assert.Panics(t, func() { experiment.WithDisplay(nil) })
}

//----------------------------------------------------------------------------//
// Runner
//----------------------------------------------------------------------------//

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Trials = 25
	cfg.MinRows, cfg.MaxRows = 2, 12
	cfg.MinCols, cfg.MaxCols = 3, 12
	cfg.Seed = 42
	return cfg
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Trials = 0
	_, err := experiment.NewRunner(cfg, quiet())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunner_SeedReproducible(t *testing.T) {
	r1, err := experiment.NewRunner(smallConfig(), quiet())
	require.NoError(t, err)
	s1, err := r1.Run()
	require.NoError(t, err)

	r2, err := experiment.NewRunner(smallConfig(), quiet())
	require.NoError(t, err)
	s2, err := r2.Run()
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, 25, s1.Trials)
}

func TestRunner_Properties(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig(), quiet())
	require.NoError(t, err)
	s, err := r.Run()
	require.NoError(t, err)

	require.Positive(t, s.Solvable)
	// A* with an admissible heuristic is as short as BFS on every maze.
	assert.Equal(t, s.Solvable, s.AStarMatchesBFSLength)
	assert.LessOrEqual(t, s.AStarSameAsBFS, s.AStarMatchesBFSLength)
	assert.InDelta(t, s.MeanLength(search.AlgorithmBFS), s.MeanLength(search.AlgorithmAStar), 1e-9)
	assert.GreaterOrEqual(t, s.MeanLength(search.AlgorithmDFS), s.MeanLength(search.AlgorithmBFS))
}

func TestRunner_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := smallConfig()
	cfg.Trials = 3
	r, err := experiment.NewRunner(cfg, experiment.WithLogger(logger))
	require.NoError(t, err)
	_, err = r.Run()
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "component=experiment")
	assert.Contains(t, logs, "msg=\"batch finished\"")
	assert.Equal(t, 3, strings.Count(logs, "msg=trial "))
	assert.Contains(t, logs, "explored.BFS=")
}

//----------------------------------------------------------------------------//
// Summary
//----------------------------------------------------------------------------//

func TestSummary_ZeroValue(t *testing.T) {
	var s experiment.Summary
	assert.Zero(t, s.MeanExplored(search.AlgorithmBFS))
	assert.Zero(t, s.MeanLength(search.AlgorithmAStar))
	assert.Contains(t, s.String(), "trials: 0, solvable: 0")
}

func TestSummary_Add(t *testing.T) {
	var s experiment.Summary
	s.Add(experiment.Outcome{
		Solvable: true,
		Explored: map[search.Algorithm]int{search.AlgorithmDFS: 4, search.AlgorithmBFS: 10, search.AlgorithmAStar: 6},
		Lengths:  map[search.Algorithm]int{search.AlgorithmDFS: 9, search.AlgorithmBFS: 5, search.AlgorithmAStar: 5},

		AStarMatchesBFSLength: true,
		AStarSameAsBFS:        true,
	})
	s.Add(experiment.Outcome{
		Solvable: true,
		Explored: map[search.Algorithm]int{search.AlgorithmDFS: 8, search.AlgorithmBFS: 20, search.AlgorithmAStar: 12},
		Lengths:  map[search.Algorithm]int{search.AlgorithmDFS: 11, search.AlgorithmBFS: 7, search.AlgorithmAStar: 7},

		AStarMatchesBFSLength: true,
	})
	// unsolvable outcomes only count as trials
	s.Add(experiment.Outcome{
		Explored: map[search.Algorithm]int{search.AlgorithmDFS: 100, search.AlgorithmBFS: 100, search.AlgorithmAStar: 100},
	})

	assert.Equal(t, 3, s.Trials)
	assert.Equal(t, 2, s.Solvable)
	assert.InDelta(t, 6.0, s.MeanExplored(search.AlgorithmDFS), 1e-9)
	assert.InDelta(t, 15.0, s.MeanExplored(search.AlgorithmBFS), 1e-9)
	assert.InDelta(t, 9.0, s.MeanExplored(search.AlgorithmAStar), 1e-9)
	assert.InDelta(t, 10.0, s.MeanLength(search.AlgorithmDFS), 1e-9)
	assert.InDelta(t, 6.0, s.MeanLength(search.AlgorithmBFS), 1e-9)
	assert.Equal(t, 2, s.AStarMatchesBFSLength)
	assert.Equal(t, 1, s.AStarSameAsBFS)
}
