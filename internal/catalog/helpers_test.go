package catalog

import (
	"github.com/sirkon/relint/internal/rule"
	"gopkg.in/yaml.v3"
)

type fakeRule struct {
	desc     rule.Description
	confDesc string
}

func (f *fakeRule) Description() rule.Description     { return f.desc }
func (f *fakeRule) ConfigurationDescription() string  { return f.confDesc }
func (f *fakeRule) Configure(params *yaml.Node) error { return nil }

type fakeCollector struct {
	fakeRule
	subs []rule.CustomRuleConfig
}

func (f *fakeCollector) CustomRules() []rule.CustomRuleConfig { return f.subs }

// fakeResolver marks identifiers it holds as configured.
type fakeResolver map[string]rule.Rule

func (m fakeResolver) Resolve(id string) (rule.Rule, bool) {
	r, ok := m[id]
	return r, ok
}
