package rules

import (
	"fmt"

	"github.com/sirkon/relint/internal/rule"
	"gopkg.in/yaml.v3"
)

// DeepNesting bounds statement nesting depth within a function body.
type DeepNesting struct {
	Severity Severity `yaml:"severity"`
	MaxDepth int      `yaml:"max_depth"`
}

// NewDeepNesting returns the rule with its default parameters.
func NewDeepNesting() *DeepNesting {
	return &DeepNesting{
		Severity: SeverityWarning,
		MaxDepth: 3,
	}
}

func (r *DeepNesting) Description() rule.Description {
	return rule.Description{
		Identifier:   "deep_nesting",
		Summary:      "Deeply nested control flow hides the happy path.",
		Kind:         rule.KindMetrics,
		Capabilities: rule.Capabilities{OptIn: true},
		TriggeringExamples: []string{
			`for _, item := range items {
	if item.Valid {
		for _, part := range item.Parts {
			if part.Ready {
				process(part)
			}
		}
	}
}`,
		},
	}
}

func (r *DeepNesting) ConfigurationDescription() string {
	return fmt.Sprintf("severity: %s, max depth: %d", r.Severity, r.MaxDepth)
}

func (r *DeepNesting) Configure(params *yaml.Node) error {
	if err := decodeParams(params, r); err != nil {
		return err
	}

	if r.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", r.MaxDepth)
	}

	return nil
}
