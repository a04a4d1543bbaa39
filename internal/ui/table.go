package ui

import "strings"

// Table is a borderless column-aligned table for journal and docs
// listings. Cells are left-aligned and padded with spaces; widths are
// computed when the table renders.
type Table struct {
	cols    int
	padding int
	rows    [][]string
}

// NewTable returns a table with the given column count and two spaces of
// inter-column padding.
func NewTable(cols int) *Table {
	return &Table{cols: cols, padding: 2}
}

// SetPadding overrides the inter-column padding.
func (t *Table) SetPadding(padding int) {
	t.padding = padding
}

// AddRow appends a row. Extra cells are dropped, missing cells render
// empty.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, t.cols)
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := make([]int, t.cols)
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	gap := strings.Repeat(" ", t.padding)
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(gap)
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
