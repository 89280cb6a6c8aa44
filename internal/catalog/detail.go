package catalog

import (
	"fmt"
	"strings"

	"github.com/sirkon/relint/internal/rule"
)

// RenderDetail renders the single-rule view: the instance's full
// configuration description followed by its triggering examples. Nothing
// is truncated or escaped here; example line breaks are preserved.
func RenderDetail(r rule.Rule) string {
	var b strings.Builder

	b.WriteString(r.ConfigurationDescription())
	b.WriteByte('\n')

	examples := r.Description().TriggeringExamples
	if len(examples) == 0 {
		return b.String()
	}

	b.WriteString("\nTriggering examples:\n")
	for i, example := range examples {
		fmt.Fprintf(&b, "\nExample #%d\n\n", i+1)

		for _, line := range strings.Split(strings.TrimRight(example, "\n"), "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
