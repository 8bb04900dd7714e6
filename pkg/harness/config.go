package harness

import (
	"fmt"
	"log/slog"
)

// Strategy selects how the timed samples for one cell are reduced to a
// single measurement.
type Strategy string

const (
	// StrategyMin keeps the fastest sample. Slower samples measure the same
	// work plus scheduler and cache noise, so the minimum is the most stable
	// estimate of the candidate's own cost.
	StrategyMin Strategy = "min"

	// StrategyMean averages all samples.
	StrategyMean Strategy = "mean"
)

// ParseStrategy parses a strategy name as given on the command line.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMin, StrategyMean:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategyMin, StrategyMean)
}

// Config controls how a Runner measures each (candidate, input) cell.
type Config struct {
	// Repetitions is the number of predicate invocations per timed block.
	// A single call is far below timer resolution, so a whole block is timed
	// and the block duration divided by Repetitions (default: 1_000_000).
	Repetitions int

	// Samples is the number of timed blocks taken per cell (default: 5).
	Samples int

	// Strategy reduces the per-block timings to one value (default: min).
	Strategy Strategy

	// Logger receives one record per measurement as it is taken.
	// Nil disables progress logging.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Repetitions: 1_000_000,
		Samples:     5,
		Strategy:    StrategyMin,
	}
}

func (c Config) validate() error {
	if c.Repetitions <= 0 {
		return fmt.Errorf("repetitions must be positive, got %d", c.Repetitions)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	return nil
}
