package harness

// Measurement is one observed execution duration for a candidate on a given
// input: the per-call cost in seconds after sample reduction.
type Measurement struct {
	Candidate   string   // Candidate display name
	Input       int      // Year the predicate was called with
	Seconds     float64  // Seconds per single call
	Repetitions int      // Invocations per timed block
	Samples     int      // Timed blocks taken
	Strategy    Strategy // Reduction applied across blocks
}

type cellKey struct {
	candidate string
	input     int
}

// Table is the result of a run. Row and column order follow the order the
// candidates and inputs were given in, so repeated runs with the same
// arguments display identically.
type Table struct {
	rows  []string
	cols  []int
	cells map[cellKey]Measurement
}

func newTable(candidates []Candidate, inputs []int) *Table {
	t := &Table{
		rows:  make([]string, 0, len(candidates)),
		cols:  make([]int, 0, len(inputs)),
		cells: make(map[cellKey]Measurement, len(candidates)*len(inputs)),
	}
	for _, c := range candidates {
		t.rows = append(t.rows, c.Name)
	}
	t.cols = append(t.cols, inputs...)
	return t
}

func (t *Table) put(m Measurement) {
	t.cells[cellKey{candidate: m.Candidate, input: m.Input}] = m
}

// Rows returns the candidate names in display order.
func (t *Table) Rows() []string {
	rows := make([]string, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Cols returns the input years in display order.
func (t *Table) Cols() []int {
	cols := make([]int, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// Lookup returns the measurement for one (candidate, input) cell.
func (t *Table) Lookup(candidate string, input int) (Measurement, bool) {
	m, ok := t.cells[cellKey{candidate: candidate, input: input}]
	return m, ok
}

// Cells returns all measurements in row-major display order.
func (t *Table) Cells() []Measurement {
	out := make([]Measurement, 0, len(t.rows)*len(t.cols))
	for _, row := range t.rows {
		for _, col := range t.cols {
			if m, ok := t.Lookup(row, col); ok {
				out = append(out, m)
			}
		}
	}
	return out
}
