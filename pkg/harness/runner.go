package harness

import (
	"context"
	"fmt"
	"time"
)

// Runner measures candidate predicates according to its Config.
type Runner struct {
	cfg Config
}

// NewRunner validates cfg and returns a Runner.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Runner{cfg: cfg}, nil
}

// sink keeps the compiler from eliminating the predicate call in the timed
// loop.
var sink bool

// Run measures every candidate against every input and returns the filled
// result table. Cells are measured sequentially, candidate by candidate, so
// the table shape and ordering are reproducible even though the duration
// values are not.
//
// A panicking candidate aborts the whole run: a single failing implementation
// invalidates comparability of the table, so no partial results are returned.
func (r *Runner) Run(ctx context.Context, candidates []Candidate, inputs []int) (*Table, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates given")
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs given")
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.Fn == nil {
			return nil, fmt.Errorf("candidate %q has no function", c.Name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate candidate name %q", c.Name)
		}
		seen[c.Name] = true
	}

	table := newTable(candidates, inputs)
	for _, cand := range candidates {
		for _, input := range inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			secs, err := r.measure(cand, input)
			if err != nil {
				return nil, err
			}

			m := Measurement{
				Candidate:   cand.Name,
				Input:       input,
				Seconds:     secs,
				Repetitions: r.cfg.Repetitions,
				Samples:     r.cfg.Samples,
				Strategy:    r.cfg.Strategy,
			}
			table.put(m)

			if r.cfg.Logger != nil {
				r.cfg.Logger.Info("measured",
					"candidate", cand.Name,
					"year", input,
					"sec_per_call", secs,
				)
			}
		}
	}
	return table, nil
}

// measure times Samples blocks of Repetitions calls and reduces the block
// timings to a per-call duration in seconds.
func (r *Runner) measure(cand Candidate, input int) (_ float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("candidate %q panicked on input %d: %v", cand.Name, input, p)
		}
	}()

	fn := cand.Fn
	samples := make([]float64, 0, r.cfg.Samples)
	for s := 0; s < r.cfg.Samples; s++ {
		start := time.Now()
		for i := 0; i < r.cfg.Repetitions; i++ {
			sink = fn(input)
		}
		samples = append(samples, time.Since(start).Seconds())
	}

	return reduce(r.cfg.Strategy, samples) / float64(r.cfg.Repetitions), nil
}

// reduce collapses per-block timings according to the strategy. Callers
// guarantee samples is non-empty and the strategy is valid.
func reduce(strategy Strategy, samples []float64) float64 {
	switch strategy {
	case StrategyMean:
		var total float64
		for _, s := range samples {
			total += s
		}
		return total / float64(len(samples))
	default: // StrategyMin
		fastest := samples[0]
		for _, s := range samples[1:] {
			if s < fastest {
				fastest = s
			}
		}
		return fastest
	}
}
