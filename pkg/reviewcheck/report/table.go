// Package report renders extraction tables, validation verdicts, and run
// summaries as aligned plain text.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a plain-text table whose columns stay aligned even when cells
// mix ASCII and double-width runes.
type Table struct {
	Header []string
	Rows   [][]string
}

// Render returns the header line plus one line per row, columns joined
// with ", " and padded to the widest cell by display width. A table with
// no rows renders the header line only.
func (t *Table) Render() string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	writeLine := func(cols []string) {
		for i, cell := range cols {
			if i > 0 {
				b.WriteString(", ")
			}
			if i < len(widths) {
				cell = runewidth.FillRight(cell, widths[i])
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	writeLine(t.Header)
	for _, row := range t.Rows {
		writeLine(row)
	}
	return b.String()
}
