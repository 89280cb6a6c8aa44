package rule

import (
	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"
)

// Capabilities is the closed set of boolean facts about a rule type.
// It is derived from the rule's static classification at registration
// time and never mutated afterwards.
type Capabilities struct {
	// OptIn rules are inactive unless the project configuration names them.
	OptIn bool

	// Correctable rules can rewrite offending code automatically.
	Correctable bool

	// AnalyzerOnly rules need a fully type-checked go/analysis pass and
	// cannot run on bare syntax.
	AnalyzerOnly bool
}

// Description is the static identity of a rule type. Instances are owned
// by the registry and must be treated as immutable.
type Description struct {
	// Identifier is unique within the registry, snake_case.
	Identifier string

	// Summary is a one-line human-readable explanation.
	Summary string

	Kind         Kind
	Capabilities Capabilities

	// TriggeringExamples are code fragments the rule would report.
	// May be empty.
	TriggeringExamples []string
}

// Rule is a constructible rule instance.
//
// A fresh instance built from the registry factory carries the rule type's
// defaults; Configure applies project configuration parameters on top.
type Rule interface {
	Description() Description

	// ConfigurationDescription renders the instance's effective parameters
	// as free text. It may span multiple lines and may differ between a
	// default and a configured instance.
	ConfigurationDescription() string

	// Configure applies raw project configuration parameters. A nil or
	// null node keeps the defaults.
	Configure(params *yaml.Node) error
}

// CustomRuleConfig is one named pattern-based sub-rule nested inside a
// Collector instance. Sub-rules exist only through project configuration
// and are not present in the registry under their own identifiers.
type CustomRuleConfig struct {
	Name    string
	Regex   string
	Message string
}

// Collector marks composite rules holding named sub-rules. The catalog
// presents each sub-rule as an independent row.
type Collector interface {
	Rule

	CustomRules() []CustomRuleConfig
}

// AnalyzerRule marks rules backed by a go/analysis Analyzer.
type AnalyzerRule interface {
	Rule

	Analyzer() *analysis.Analyzer
}

// NullParams reports whether a Configure argument carries no parameters.
// Covers both an absent node and an explicit YAML null (`rule_id:` with
// no value).
func NullParams(n *yaml.Node) bool {
	if n == nil || n.Kind == 0 {
		return true
	}

	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
