package catalog

import "github.com/sirkon/relint/internal/rule"

// Row is the flattened presentation unit of a single catalog entry.
type Row struct {
	// Identifier is never empty. For sub-rules of a composite rule this
	// is the sub-rule's own name, not the parent's identifier.
	Identifier string

	OptIn       bool
	Correctable bool

	// Configured reports whether the project configuration activates
	// the rule.
	Configured bool

	Kind         rule.Kind
	AnalyzerOnly bool

	// Description is the free-text configuration summary. May contain
	// newlines; the renderer escapes them.
	Description string
}

// Resolver answers whether a rule is active in the project configuration
// and with what instance.
type Resolver interface {
	Resolve(id string) (rule.Rule, bool)
}
