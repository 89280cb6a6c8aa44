package catalog

import "strings"

// Layout carries the fixed formatting constants of the table view. It is
// passed explicitly rather than read from globals to keep rendering pure
// and independently testable.
type Layout struct {
	// DescriptionOffset is the column at which the description starts:
	// the combined width of all preceding columns.
	DescriptionOffset int

	// MinDescriptionWidth is the floor of the description budget, so the
	// column stays readable on narrow and non-terminal outputs.
	MinDescriptionWidth int
}

// DefaultLayout matches the reference seven-column table.
func DefaultLayout() Layout {
	return Layout{
		DescriptionOffset: 112,
		// Enough for a meaningful fragment of the column's header word
		// plus an ellipsis.
		MinDescriptionWidth: len("configuration") - 3,
	}
}

const ellipsis = "..."

// Truncate fits free text into the description column of a terminal with
// the given width. Newlines are escaped so the row stays single-line.
// Only the table view truncates; the detail view prints text verbatim.
func (l Layout) Truncate(text string, terminalWidth int) string {
	text = strings.ReplaceAll(text, "\n", `\n`)

	budget := terminalWidth - l.DescriptionOffset
	if budget < l.MinDescriptionWidth {
		budget = l.MinDescriptionWidth
	}

	if len(text) <= budget {
		return text
	}

	return text[:budget] + ellipsis
}
