// Package tables renders aligned-column text tables for route reporting.
package tables

import "strings"

// columnGap is the fixed separator between columns.
const columnGap = 2

// Table is a titled set of rows under a fixed header. Missing cells render
// as empty strings.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Render formats the table with each column padded to its widest cell,
// header included, plus the fixed column gap. Trailing spaces are
// trimmed from each line.
func (t Table) Render() string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(t.Title)
		b.WriteString("\n\n")
	}

	writeRow(&b, t.Header, widths)
	for _, row := range t.Rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	var line strings.Builder
	for i, width := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		line.WriteString(cell)

		if i < len(widths)-1 {
			line.WriteString(strings.Repeat(" ", width-len(cell)+columnGap))
		}
	}
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteString("\n")
}
