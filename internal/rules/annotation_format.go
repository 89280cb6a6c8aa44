package rules

import (
	"fmt"

	"github.com/sirkon/relint/internal/rule"
	"gopkg.in/yaml.v3"
)

// AnnotationFormat demands wrap annotation formats to be string literals
// ending with the wrapping verb suffix.
type AnnotationFormat struct {
	Severity       Severity `yaml:"severity"`
	Suffix         string   `yaml:"suffix"`
	RequireLiteral bool     `yaml:"require_literal"`
}

// NewAnnotationFormat returns the rule with its default parameters.
func NewAnnotationFormat() *AnnotationFormat {
	return &AnnotationFormat{
		Severity:       SeverityWarning,
		Suffix:         ": %w",
		RequireLiteral: true,
	}
}

func (r *AnnotationFormat) Description() rule.Description {
	return rule.Description{
		Identifier:   "annotation_format",
		Summary:      "Error annotation formats must be literals ending with the wrapping verb.",
		Kind:         rule.KindStyle,
		Capabilities: rule.Capabilities{Correctable: true},
		TriggeringExamples: []string{
			`return fmt.Errorf("read config (%w)", err)`,
			`return fmt.Errorf(failureContext(), err)`,
		},
	}
}

func (r *AnnotationFormat) ConfigurationDescription() string {
	return fmt.Sprintf(
		"severity: %s, suffix: %q, literal format required: %t",
		r.Severity, r.Suffix, r.RequireLiteral,
	)
}

func (r *AnnotationFormat) Configure(params *yaml.Node) error {
	if err := decodeParams(params, r); err != nil {
		return err
	}

	if r.Suffix == "" {
		return fmt.Errorf("annotation suffix must not be empty")
	}

	return nil
}
