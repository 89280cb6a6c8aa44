package rules

import (
	"fmt"

	"github.com/sirkon/relint/internal/rule"
	"gopkg.in/yaml.v3"
)

// ErrorLastReturn demands the error result to be the last return value of
// a function signature.
type ErrorLastReturn struct {
	Severity Severity `yaml:"severity"`
}

// NewErrorLastReturn returns the rule with its default parameters.
func NewErrorLastReturn() *ErrorLastReturn {
	return &ErrorLastReturn{Severity: SeverityWarning}
}

func (r *ErrorLastReturn) Description() rule.Description {
	return rule.Description{
		Identifier:   "error_last_return",
		Summary:      "Functions returning an error must place it as the last return value.",
		Kind:         rule.KindStyle,
		Capabilities: rule.Capabilities{Correctable: true},
		TriggeringExamples: []string{
			`func load(path string) (error, *Config)`,
			`func fetch(id int) (err error, found bool)`,
		},
	}
}

func (r *ErrorLastReturn) ConfigurationDescription() string {
	return fmt.Sprintf("severity: %s", r.Severity)
}

func (r *ErrorLastReturn) Configure(params *yaml.Node) error {
	return decodeParams(params, r)
}
