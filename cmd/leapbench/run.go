package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leapbench/pkg/harness"
	"leapbench/pkg/leap"
	"leapbench/pkg/report"
)

var (
	runReps     int
	runSamples  int
	runStrategy string
	runYears    []int
	runFormat   string
	runQuiet    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Measure the implementations and print the timing table",
	Long: `Times every implementation against every year and prints the resulting
table. Each cell is measured as repeated blocks of predicate calls; the block
timings are reduced with the chosen strategy (min by default, the
noise-resistant choice) and divided down to a per-call duration.

The implementations are cross-checked against each other before any timing
starts: a disagreeing implementation aborts the run, since its timings would
not be comparable.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runReps, "reps", 1_000_000, "predicate invocations per timed block")
	runCmd.Flags().IntVar(&runSamples, "samples", 5, "timed blocks per (implementation, year) cell")
	runCmd.Flags().StringVar(&runStrategy, "strategy", string(harness.StrategyMin), "reduction across blocks: min or mean")
	runCmd.Flags().IntSliceVar(&runYears, "years", leap.Years(), "years to benchmark")
	runCmd.Flags().StringVar(&runFormat, "format", "table", "output format: table, markdown, or benchstat")
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "suppress per-measurement progress logs")
}

func runRun(cmd *cobra.Command, args []string) error {
	strategy, err := harness.ParseStrategy(runStrategy)
	if err != nil {
		return err
	}

	candidates := leap.Candidates()
	if err := harness.CrossCheck(candidates, runYears); err != nil {
		return fmt.Errorf("refusing to time disagreeing implementations: %w", err)
	}

	cfg := harness.DefaultConfig()
	cfg.Repetitions = runReps
	cfg.Samples = runSamples
	cfg.Strategy = strategy
	if !runQuiet {
		cfg.Logger = logger
	}

	runner, err := harness.NewRunner(cfg)
	if err != nil {
		return err
	}

	table, err := runner.Run(cmd.Context(), candidates, runYears)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch runFormat {
	case "table":
		return report.Table(out, table)
	case "markdown":
		return report.Markdown(out, table)
	case "benchstat":
		return report.Benchstat(out, table)
	default:
		return fmt.Errorf("unknown format %q (want table, markdown, or benchstat)", runFormat)
	}
}
