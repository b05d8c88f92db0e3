// Command mazesearch compares DFS, BFS and A* on randomized grid mazes.
//
// Configuration comes from MAZE_* environment variables (optionally from a
// .env file) and is overridden by flags:
//
//	mazesearch -trials 100 -blocked 0.3 -seed 7
//	mazesearch -classic
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/mazesearch/config"
	"github.com/katalvlaran/mazesearch/experiment"
	"github.com/katalvlaran/mazesearch/maze"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mazesearch:", err)
		os.Exit(1)
	}
}

// options is the parsed command line.
type options struct {
	cfg     config.Config
	classic bool
}

// parseArgs overlays flags on the environment configuration and validates
// the result once, so a flag can replace an out-of-range MAZE_* value.
// Returns flag.ErrHelp for -h.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	cfg, err := config.Read()
	if err != nil {
		return options{}, err
	}

	var o options
	fs := flag.NewFlagSet("mazesearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of random mazes")
	fs.IntVar(&cfg.MinRows, "min-rows", cfg.MinRows, "smallest row count")
	fs.IntVar(&cfg.MaxRows, "max-rows", cfg.MaxRows, "largest row count")
	fs.IntVar(&cfg.MinCols, "min-cols", cfg.MinCols, "smallest column count")
	fs.IntVar(&cfg.MaxCols, "max-cols", cfg.MaxCols, "largest column count")
	fs.Float64Var(&cfg.Blocked, "blocked", cfg.Blocked, "proportion of blocked cells in [0,1]")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for the clock")
	fs.BoolVar(&cfg.Show, "show", cfg.Show, "render every maze with its three paths")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&o.classic, "classic", false, "run once on the fixed 10x10 maze and show it")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	o.cfg = cfg
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	cfg := o.cfg

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	opts := []experiment.Option{experiment.WithLogger(logger)}
	if cfg.Show || o.classic {
		opts = append(opts, experiment.WithDisplay(stdout))
	}

	if o.classic {
		out, err := experiment.Trial(maze.Classic(), opts...)
		if err != nil {
			return err
		}
		var s experiment.Summary
		s.Add(out)
		fmt.Fprintln(stdout, s)
		return nil
	}

	runner, err := experiment.NewRunner(cfg, opts...)
	if err != nil {
		return err
	}
	s, err := runner.Run()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, s)
	return nil
}
