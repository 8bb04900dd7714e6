// Package leap provides four implementations of the Gregorian leap-year
// rule, each using a different technique, for head-to-head benchmarking.
package leap

import (
	"time"

	"leapbench/pkg/harness"
)

// IfStatements decides leap-year status with modulo arithmetic and
// short-circuit boolean logic.
func IfStatements(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Expression is the conditional-expression variant: centuries are decided by
// the 400-year rule, every other year by divisibility by 4.
func Expression(year int) bool {
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

// DateAdd uses date arithmetic: add one day to February 28 and check whether
// the result lands on the 29th.
func DateAdd(year int) bool {
	return time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 1).Day() == 29
}

// CalendarDays asks the standard library how long the year is: the ordinal
// day of December 31 is 366 exactly in leap years.
func CalendarDays(year int) bool {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366
}

// Candidates returns the four techniques as named benchmark candidates in
// fixed display order.
func Candidates() []harness.Candidate {
	return []harness.Candidate{
		{Name: "if-statements", Fn: IfStatements},
		{Name: "ternary", Fn: Expression},
		{Name: "date-add", Fn: DateAdd},
		{Name: "calendar-days", Fn: CalendarDays},
	}
}

// Years returns the representative benchmark inputs. 1900 and 2000 exercise
// the century and 400-year edge cases; 2019 and 2020 are an ordinary common
// year and an ordinary leap year.
func Years() []int {
	return []int{1900, 2000, 2019, 2020}
}
