// Package harness measures the execution time of interchangeable leap-year
// predicates and assembles the measurements into a two-dimensional result
// table: one row per candidate implementation, one column per input year.
//
// Measurement is single-threaded and synchronous on purpose. Timing runs in
// parallel would put scheduler noise into the numbers being compared.
package harness

// Candidate pairs a display name with one implementation strategy for
// deciding leap-year status. Fn must be pure: same input, same output, no
// side effects.
type Candidate struct {
	Name string
	Fn   func(year int) bool
}
