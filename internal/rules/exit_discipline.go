package rules

import (
	"fmt"
	"strings"

	"github.com/sirkon/relint/internal/rule"
	"github.com/sirkon/relint/internal/sigs"
	"gopkg.in/yaml.v3"
)

// ExitDiscipline restricts program-abandoning calls (os.Exit, log.Fatal,
// panic and friends) to a small set of allowed functions.
type ExitDiscipline struct {
	severity Severity
	allowIn  []string
	abandons *sigs.Abandons
	custom   int
}

// NewExitDiscipline returns the rule with the predefined abandon catalog.
func NewExitDiscipline() *ExitDiscipline {
	return &ExitDiscipline{
		severity: SeverityWarning,
		allowIn:  []string{"main", "init", "TestMain"},
		abandons: sigs.KnownAbandons(nil),
	}
}

func (r *ExitDiscipline) Description() rule.Description {
	return rule.Description{
		Identifier:   "exit_discipline",
		Summary:      "Program-abandoning calls belong to main or init only.",
		Kind:         rule.KindIdiomatic,
		Capabilities: rule.Capabilities{OptIn: true},
		TriggeringExamples: []string{
			`func load(path string) *Config {
	cfg, err := parse(path)
	if err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
	return cfg
}`,
		},
	}
}

func (r *ExitDiscipline) ConfigurationDescription() string {
	return fmt.Sprintf(
		"severity: %s, allowed in: %s, known abandon functions: %d (%d custom)",
		r.severity, strings.Join(r.allowIn, ", "), r.abandons.Len(), r.custom,
	)
}

func (r *ExitDiscipline) Configure(params *yaml.Node) error {
	if rule.NullParams(params) {
		return nil
	}

	var p struct {
		Severity      *Severity         `yaml:"severity"`
		AllowIn       []string          `yaml:"allow_in"`
		ExitFunctions map[string]string `yaml:"exit_functions"`
	}
	if err := params.Decode(&p); err != nil {
		return fmt.Errorf("decode rule parameters: %w", err)
	}

	if p.Severity != nil {
		r.severity = *p.Severity
	}
	if p.AllowIn != nil {
		r.allowIn = p.AllowIn
	}

	custom := make(map[sigs.PackagedFunc]sigs.AbandonKind, len(p.ExitFunctions))
	for name, kindText := range p.ExitFunctions {
		fn, err := splitPackagedFunc(name)
		if err != nil {
			return err
		}

		var kind sigs.AbandonKind
		if err := kind.UnmarshalText([]byte(kindText)); err != nil {
			return fmt.Errorf("exit function %q: %w", name, err)
		}

		custom[fn] = kind
	}

	r.abandons = sigs.KnownAbandons(custom)
	r.custom = len(custom)

	return nil
}
