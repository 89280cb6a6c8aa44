package rules

import (
	"github.com/sirkon/relint/internal/registry"
	"github.com/sirkon/relint/internal/rule"
)

func init() {
	// Error handling discipline.
	registry.Default.Register("no_silent_drop", func() rule.Rule { return NewNoSilentDrop() })
	registry.Default.Register("annotate_external", func() rule.Rule { return NewAnnotateExternal() })
	registry.Default.Register("no_log_and_return", func() rule.Rule { return NewNoLogAndReturn() })

	// Style.
	registry.Default.Register("error_last_return", func() rule.Rule { return NewErrorLastReturn() })
	registry.Default.Register("annotation_format", func() rule.Rule { return NewAnnotationFormat() })
	registry.Default.Register("custom_rules", func() rule.Rule { return NewCustomRules() })

	// Idiomatic usage.
	registry.Default.Register("exit_discipline", func() rule.Rule { return NewExitDiscipline() })

	// Metrics.
	registry.Default.Register("function_length", func() rule.Rule { return NewFunctionLength() })
	registry.Default.Register("deep_nesting", func() rule.Rule { return NewDeepNesting() })
}
