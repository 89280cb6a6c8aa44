package rules

import (
	"fmt"

	"github.com/sirkon/relint/internal/rule"
	"gopkg.in/yaml.v3"
)

// FunctionLength bounds function body length in lines.
type FunctionLength struct {
	Warning        int  `yaml:"warning"`
	Error          int  `yaml:"error"`
	IgnoreComments bool `yaml:"ignore_comments"`
}

// NewFunctionLength returns the rule with its default thresholds.
func NewFunctionLength() *FunctionLength {
	return &FunctionLength{
		Warning:        60,
		Error:          100,
		IgnoreComments: true,
	}
}

func (r *FunctionLength) Description() rule.Description {
	return rule.Description{
		Identifier: "function_length",
		Summary:    "Function bodies should not span too many lines.",
		Kind:       rule.KindMetrics,
	}
}

func (r *FunctionLength) ConfigurationDescription() string {
	return fmt.Sprintf(
		"warning: %d lines, error: %d lines, comments ignored: %t",
		r.Warning, r.Error, r.IgnoreComments,
	)
}

func (r *FunctionLength) Configure(params *yaml.Node) error {
	if err := decodeParams(params, r); err != nil {
		return err
	}

	if r.Warning <= 0 || r.Error <= 0 {
		return fmt.Errorf("line thresholds must be positive, got warning=%d error=%d", r.Warning, r.Error)
	}
	if r.Error < r.Warning {
		return fmt.Errorf("error threshold %d is below warning threshold %d", r.Error, r.Warning)
	}

	return nil
}
