package harness

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// testConfig keeps runs fast: correctness properties don't depend on the
// repetition count.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Repetitions = 100
	cfg.Samples = 2
	return cfg
}

func testCandidates() []Candidate {
	return []Candidate{
		{Name: "a", Fn: isLeap},
		{Name: "b", Fn: isLeap},
	}
}

func TestRunPopulatesEveryCell(t *testing.T) {
	runner, err := NewRunner(testConfig())
	require.NoError(t, err)

	candidates := testCandidates()
	inputs := []int{1900, 2000, 2019, 2020}

	table, err := runner.Run(context.Background(), candidates, inputs)
	require.NoError(t, err)

	for _, cand := range candidates {
		for _, input := range inputs {
			m, ok := table.Lookup(cand.Name, input)
			require.Truef(t, ok, "missing cell (%s, %d)", cand.Name, input)
			assert.Equal(t, cand.Name, m.Candidate)
			assert.Equal(t, input, m.Input)
			assert.GreaterOrEqual(t, m.Seconds, 0.0)
			assert.False(t, math.IsNaN(m.Seconds))
			assert.False(t, math.IsInf(m.Seconds, 0))
			assert.Equal(t, 100, m.Repetitions)
			assert.Equal(t, 2, m.Samples)
			assert.Equal(t, StrategyMin, m.Strategy)
		}
	}
	assert.Len(t, table.Cells(), len(candidates)*len(inputs))
}

func TestRunPreservesOrdering(t *testing.T) {
	runner, err := NewRunner(testConfig())
	require.NoError(t, err)

	candidates := []Candidate{
		{Name: "zeta", Fn: isLeap},
		{Name: "alpha", Fn: isLeap},
		{Name: "mid", Fn: isLeap},
	}
	inputs := []int{2020, 1900, 2000}

	first, err := runner.Run(context.Background(), candidates, inputs)
	require.NoError(t, err)
	second, err := runner.Run(context.Background(), candidates, inputs)
	require.NoError(t, err)

	want := []string{"zeta", "alpha", "mid"}
	assert.Equal(t, want, first.Rows())
	assert.Equal(t, want, second.Rows())
	assert.Equal(t, inputs, first.Cols())
	assert.Equal(t, inputs, second.Cols())
}

func TestRunInvokesExpectedCallCount(t *testing.T) {
	cfg := testConfig()
	runner, err := NewRunner(cfg)
	require.NoError(t, err)

	calls := 0
	counting := []Candidate{{Name: "counting", Fn: func(year int) bool {
		calls++
		return isLeap(year)
	}}}

	_, err = runner.Run(context.Background(), counting, []int{2000, 2019})
	require.NoError(t, err)
	// 2 inputs x 2 samples x 100 repetitions
	assert.Equal(t, 2*cfg.Samples*cfg.Repetitions, calls)
}

func TestRunPanicAborts(t *testing.T) {
	runner, err := NewRunner(testConfig())
	require.NoError(t, err)

	candidates := []Candidate{
		{Name: "ok", Fn: isLeap},
		{Name: "broken", Fn: func(year int) bool {
			if year == 2019 {
				panic("no thanks")
			}
			return isLeap(year)
		}},
	}

	table, err := runner.Run(context.Background(), candidates, []int{2000, 2019})
	require.Error(t, err)
	assert.Nil(t, table)
	assert.Contains(t, err.Error(), `"broken"`)
	assert.Contains(t, err.Error(), "2019")
}

func TestRunCancelledContext(t *testing.T) {
	runner, err := NewRunner(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table, err := runner.Run(ctx, testCandidates(), []int{2000})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, table)
}

func TestRunRejectsBadArguments(t *testing.T) {
	runner, err := NewRunner(testConfig())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = runner.Run(ctx, nil, []int{2000})
	assert.ErrorContains(t, err, "no candidates")

	_, err = runner.Run(ctx, testCandidates(), nil)
	assert.ErrorContains(t, err, "no inputs")

	_, err = runner.Run(ctx, []Candidate{{Name: "nil-fn"}}, []int{2000})
	assert.ErrorContains(t, err, "no function")

	dup := []Candidate{{Name: "x", Fn: isLeap}, {Name: "x", Fn: isLeap}}
	_, err = runner.Run(ctx, dup, []int{2000})
	assert.ErrorContains(t, err, "duplicate candidate")
}

func TestNewRunnerValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero repetitions", func(c *Config) { c.Repetitions = 0 }},
		{"negative samples", func(c *Config) { c.Samples = -1 }},
		{"bad strategy", func(c *Config) { c.Strategy = "median" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewRunner(cfg)
			assert.Error(t, err)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("min")
	require.NoError(t, err)
	assert.Equal(t, StrategyMin, s)

	s, err = ParseStrategy("mean")
	require.NoError(t, err)
	assert.Equal(t, StrategyMean, s)

	_, err = ParseStrategy("median")
	assert.ErrorContains(t, err, "median")
}

func TestReduce(t *testing.T) {
	samples := []float64{3, 1, 2}
	assert.Equal(t, 1.0, reduce(StrategyMin, samples))
	assert.Equal(t, 2.0, reduce(StrategyMean, samples))
}

func TestCrossCheck(t *testing.T) {
	agree := []Candidate{
		{Name: "a", Fn: isLeap},
		{Name: "b", Fn: isLeap},
	}
	assert.NoError(t, CrossCheck(agree, []int{1900, 2000, 2019, 2020}))

	disagree := append(agree, Candidate{Name: "c", Fn: func(year int) bool {
		return year%4 == 0 // misses the century rule
	}})
	err := CrossCheck(disagree, []int{2019, 1900})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1900")
	assert.Contains(t, err.Error(), "c=true")

	// A single candidate has nothing to disagree with.
	assert.NoError(t, CrossCheck(agree[:1], []int{1900}))
}
