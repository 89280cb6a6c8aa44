package catalog

import (
	"sort"
	"strings"
)

// Seven fixed columns, in rendering order.
var tableHeader = [7]string{
	"identifier",
	"opt-in",
	"correctable",
	"enabled in your config",
	"kind",
	"analyzer",
	"configuration",
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

// RenderTable lays rows into the fixed-column catalog table.
//
// Rows render in ascending identifier order, lexicographic by code point;
// this is the only guarantee about row order in the output. Identifier
// collisions are undefined behavior of the input: the sort is stable, so
// colliding rows keep their enumeration order.
func (l Layout) RenderTable(rows []Row, terminalWidth int) string {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Identifier < sorted[j].Identifier
	})

	cells := make([][7]string, 0, len(sorted)+1)
	cells = append(cells, tableHeader)
	for _, row := range sorted {
		cells = append(cells, [7]string{
			row.Identifier,
			yesNo(row.OptIn),
			yesNo(row.Correctable),
			yesNo(row.Configured),
			row.Kind.String(),
			yesNo(row.AnalyzerOnly),
			l.Truncate(row.Description, terminalWidth),
		})
	}

	// Column width fits the longest cell, header included.
	var widths [7]int
	for _, r := range cells {
		for i, c := range r {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	var b strings.Builder

	hrule := func() {
		for _, w := range widths {
			b.WriteByte('+')
			b.WriteString(strings.Repeat("-", w+2))
		}
		b.WriteString("+\n")
	}
	line := func(r [7]string) {
		for i, c := range r {
			b.WriteString("| ")
			b.WriteString(c)
			b.WriteString(strings.Repeat(" ", widths[i]-len(c)+1))
		}
		b.WriteString("|\n")
	}

	hrule()
	line(cells[0])
	hrule()
	for _, r := range cells[1:] {
		line(r)
	}
	if len(cells) > 1 {
		hrule()
	}

	return b.String()
}
