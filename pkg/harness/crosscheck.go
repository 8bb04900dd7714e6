package harness

import "fmt"

// CrossCheck verifies that every candidate agrees with the first one on
// every input. Timing comparisons between predicates that disagree are
// meaningless, so callers should run this before Runner.Run.
func CrossCheck(candidates []Candidate, inputs []int) error {
	if len(candidates) < 2 {
		return nil
	}
	ref := candidates[0]
	for _, input := range inputs {
		want := ref.Fn(input)
		for _, cand := range candidates[1:] {
			if got := cand.Fn(input); got != want {
				return fmt.Errorf("candidates disagree on input %d: %s=%t, %s=%t",
					input, ref.Name, want, cand.Name, got)
			}
		}
	}
	return nil
}
