package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"leapbench/pkg/harness"
	"leapbench/pkg/leap"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check that all implementations agree, without timing",
	Long: `Prints the truth table of every implementation for the benchmark years and
fails if any implementation disagrees with the others.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	candidates := leap.Candidates()
	years := leap.Years()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "year")
	for _, cand := range candidates {
		fmt.Fprintf(w, "\t%s", cand.Name)
	}
	fmt.Fprintln(w)

	for _, year := range years {
		fmt.Fprintf(w, "%d", year)
		for _, cand := range candidates {
			fmt.Fprintf(w, "\t%t", cand.Fn(year))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if err := harness.CrossCheck(candidates, years); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "all implementations agree")
	return nil
}
