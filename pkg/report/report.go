// Package report renders a harness result table as text: a bordered console
// table, a markdown pipe table, or Go benchmark lines for benchstat.
// Rendering is textual only; charts and file export are deliberately out of
// scope for this tool.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"leapbench/pkg/harness"
)

// Durations land in the low nanoseconds, so cells use scientific notation
// with one digit of precision.
const cellFormat = "%.1e"

// Table renders t as a bordered console table followed by a caption with the
// measurement parameters. On terminals too narrow for borders it falls back
// to the markdown layout.
func Table(w io.Writer, t *harness.Table) error {
	if tWidth := termWidth(); tWidth > 0 && tWidth < minTableWidth(t) {
		return Markdown(w, t)
	}

	tbl := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	tbl.Header(headers(t))
	for _, row := range bodyRows(t) {
		if err := tbl.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := tbl.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	if c := caption(t); c != "" {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

// Markdown writes t as a markdown pipe table, the layout the timing results
// are quoted in prose as.
func Markdown(w io.Writer, t *harness.Table) error {
	head := headers(t)

	line := "|"
	sep := "|"
	for i, h := range head {
		line += " " + h + " |"
		if i == 0 {
			sep += ":----|"
		} else {
			sep += "----:|"
		}
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}

	for _, row := range bodyRows(t) {
		line := "|"
		for _, cell := range row {
			line += " " + cell + " |"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Benchstat writes one line per cell in Go benchmark output format, suitable
// for piping into benchstat.
func Benchstat(w io.Writer, t *harness.Table) error {
	for _, m := range t.Cells() {
		_, err := fmt.Fprintf(w, "BenchmarkLeap/impl=%s/year=%d\t%d\t%.4g ns/op\n",
			m.Candidate, m.Input, m.Repetitions, m.Seconds*1e9)
		if err != nil {
			return err
		}
	}
	return nil
}

func headers(t *harness.Table) []string {
	head := []string{"candidate"}
	for _, col := range t.Cols() {
		head = append(head, strconv.Itoa(col))
	}
	return head
}

func bodyRows(t *harness.Table) [][]string {
	var rows [][]string
	for _, name := range t.Rows() {
		row := []string{name}
		for _, col := range t.Cols() {
			if m, ok := t.Lookup(name, col); ok {
				row = append(row, fmt.Sprintf(cellFormat, m.Seconds))
			} else {
				row = append(row, "n/a")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// caption describes the measurement parameters, e.g.
// "min of 5 × 1,000,000 calls per cell, seconds per call".
func caption(t *harness.Table) string {
	cells := t.Cells()
	if len(cells) == 0 {
		return ""
	}
	m := cells[0]
	return fmt.Sprintf("%s of %d × %s calls per cell, seconds per call",
		m.Strategy, m.Samples, humanize.Comma(int64(m.Repetitions)))
}

// minTableWidth estimates the rendered width of the bordered table: per
// column one border char plus two padding chars, plus the trailing border.
func minTableWidth(t *harness.Table) int {
	nameW := len("candidate")
	for _, name := range t.Rows() {
		if len(name) > nameW {
			nameW = len(name)
		}
	}

	const cellW = 7 // e.g. "1.2e-09"
	const colOverhead = 3

	width := nameW + colOverhead + 1
	for range t.Cols() {
		width += cellW + colOverhead
	}
	return width
}

// termWidth returns the terminal width, or 0 when stdout and stderr are not
// terminals.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}
