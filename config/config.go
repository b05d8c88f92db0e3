// Package config loads the experiment run configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned by Validate and Load for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvTrials   = "MAZE_TRIALS"
	EnvMinRows  = "MAZE_MIN_ROWS"
	EnvMaxRows  = "MAZE_MAX_ROWS"
	EnvMinCols  = "MAZE_MIN_COLS"
	EnvMaxCols  = "MAZE_MAX_COLS"
	EnvBlocked  = "MAZE_BLOCKED"
	EnvSeed     = "MAZE_SEED"
	EnvShow     = "MAZE_SHOW"
	EnvLogLevel = "MAZE_LOG_LEVEL"
)

// Config holds the parameters of a batch of randomized maze trials.
type Config struct {
	Trials   int        // Number of random mazes to generate
	MinRows  int        // Smallest row count, inclusive
	MaxRows  int        // Largest row count, inclusive
	MinCols  int        // Smallest column count, inclusive
	MaxCols  int        // Largest column count, inclusive
	Blocked  float64    // Proportion of free cells to block, in [0,1]
	Seed     int64      // Randomness seed; 0 means seed from the clock
	Show     bool       // Render each maze with the three marked paths
	LogLevel slog.Level // Minimum level of emitted log records
}

// Default returns the stock configuration: 30 trials of 5..30 × 5..30
// mazes with 20% blocks, clock seed, no display, info logging.
func Default() Config {
	return Config{
		Trials:   30,
		MinRows:  5,
		MaxRows:  30,
		MinCols:  5,
		MaxCols:  30,
		Blocked:  0.2,
		Seed:     0,
		Show:     false,
		LogLevel: slog.LevelInfo,
	}
}

// Load is Read followed by Validate.
func Load(files ...string) (Config, error) {
	cfg, err := Read(files...)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Read reads the given .env files (".env" when none are named) if they
// exist, then overlays environment variables on Default. Values are parsed
// but not range-checked, so callers can apply overrides before Validate.
// A missing .env file is not an error; variables already set in the
// environment win over file values.
func Read(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Default()
	var err error
	if cfg.Trials, err = intEnv(EnvTrials, cfg.Trials); err != nil {
		return Config{}, err
	}
	if cfg.MinRows, err = intEnv(EnvMinRows, cfg.MinRows); err != nil {
		return Config{}, err
	}
	if cfg.MaxRows, err = intEnv(EnvMaxRows, cfg.MaxRows); err != nil {
		return Config{}, err
	}
	if cfg.MinCols, err = intEnv(EnvMinCols, cfg.MinCols); err != nil {
		return Config{}, err
	}
	if cfg.MaxCols, err = intEnv(EnvMaxCols, cfg.MaxCols); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvBlocked); ok {
		if cfg.Blocked, err = strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvBlocked, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvShow); ok {
		if cfg.Show, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvShow, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if err = cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvLogLevel, v, err)
		}
	}

	return cfg, nil
}

// intEnv returns the integer value of key, or def when key is unset.
func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}

// Validate checks ranges: at least one trial, positive sizes with min ≤ max,
// room for distinct start and goal, and a proportion in [0,1].
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	case c.MinRows < 1 || c.MinCols < 1:
		return fmt.Errorf("%w: sizes must be positive, got %d rows, %d cols", ErrInvalidConfig, c.MinRows, c.MinCols)
	case c.MinRows > c.MaxRows:
		return fmt.Errorf("%w: min rows %d above max rows %d", ErrInvalidConfig, c.MinRows, c.MaxRows)
	case c.MinCols > c.MaxCols:
		return fmt.Errorf("%w: min cols %d above max cols %d", ErrInvalidConfig, c.MinCols, c.MaxCols)
	case c.MinRows*c.MinCols < 2:
		return fmt.Errorf("%w: a maze needs at least two cells", ErrInvalidConfig)
	case c.Blocked < 0 || c.Blocked > 1 || c.Blocked != c.Blocked:
		return fmt.Errorf("%w: blocked proportion %v outside [0,1]", ErrInvalidConfig, c.Blocked)
	}
	return nil
}
