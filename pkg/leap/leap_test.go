package leap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthTable(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false}, // century, not divisible by 400
		{2000, true},  // century, divisible by 400
		{2019, false}, // ordinary common year
		{2020, true},  // ordinary leap year
		{1600, true},
		{1700, false},
		{2100, false},
		{2023, false},
		{2024, true},
		{4, true},
	}

	for _, cand := range Candidates() {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%d", cand.Name, tt.year), func(t *testing.T) {
				assert.Equal(t, tt.want, cand.Fn(tt.year))
			})
		}
	}
}

// TestImplementationsAgree sweeps every year since the Gregorian reform and
// requires all four techniques to return the same answer.
func TestImplementationsAgree(t *testing.T) {
	candidates := Candidates()
	for year := 1583; year <= 2400; year++ {
		want := IfStatements(year)
		for _, cand := range candidates {
			require.Equalf(t, want, cand.Fn(year),
				"%s disagrees with if-statements on year %d", cand.Name, year)
		}
	}
}

func TestCandidatesOrder(t *testing.T) {
	var names []string
	for _, cand := range Candidates() {
		require.NotNil(t, cand.Fn)
		names = append(names, cand.Name)
	}
	assert.Equal(t, []string{"if-statements", "ternary", "date-add", "calendar-days"}, names)
}

func TestYears(t *testing.T) {
	assert.Equal(t, []int{1900, 2000, 2019, 2020}, Years())
}
