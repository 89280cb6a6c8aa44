package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/sirkon/relint/internal/rule"
	"gopkg.in/yaml.v3"
)

// CustomRules is the composite container for user-defined regex rules.
// It never reports anything on its own: each configured sub-rule behaves
// as an independent rule named after its configuration key.
type CustomRules struct {
	subs []rule.CustomRuleConfig
}

// NewCustomRules returns an empty container.
func NewCustomRules() *CustomRules {
	return &CustomRules{}
}

func (r *CustomRules) Description() rule.Description {
	return rule.Description{
		Identifier: "custom_rules",
		Summary:    "Create your own rules from regular expressions.",
		Kind:       rule.KindStyle,
	}
}

func (r *CustomRules) ConfigurationDescription() string {
	if len(r.subs) == 0 {
		return "user-defined regular expression rules"
	}

	names := make([]string, len(r.subs))
	for i, s := range r.subs {
		names[i] = s.Name
	}

	return "user-defined rules: " + strings.Join(names, ", ")
}

// Configure reads named sub-rule bodies. The mapping order of the
// configuration file is the enumeration order of the sub-rules.
func (r *CustomRules) Configure(params *yaml.Node) error {
	if rule.NullParams(params) {
		return nil
	}

	if params.Kind != yaml.MappingNode {
		return fmt.Errorf("custom rules expect a mapping of rule names to rule bodies")
	}

	seen := map[string]struct{}{}
	for i := 0; i < len(params.Content); i += 2 {
		name := params.Content[i].Value
		if name == "" {
			return fmt.Errorf("custom rule name must not be empty")
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("custom rule %q defined twice", name)
		}
		seen[name] = struct{}{}

		var body struct {
			Regex   string `yaml:"regex"`
			Message string `yaml:"message"`
		}
		if err := params.Content[i+1].Decode(&body); err != nil {
			return fmt.Errorf("custom rule %q: %w", name, err)
		}

		if body.Regex == "" {
			return fmt.Errorf("custom rule %q: regex is required", name)
		}
		if _, err := regexp.Compile(body.Regex); err != nil {
			return fmt.Errorf("custom rule %q: %w", name, err)
		}

		r.subs = append(r.subs, rule.CustomRuleConfig{
			Name:    name,
			Regex:   body.Regex,
			Message: body.Message,
		})
	}

	return nil
}

// CustomRules returns the configured sub-rules in configuration order.
func (r *CustomRules) CustomRules() []rule.CustomRuleConfig {
	return slices.Clone(r.subs)
}
