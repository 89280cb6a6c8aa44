package catalog

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/relint/internal/rule"
)

func simpleFactory(desc rule.Description, confDesc string) func() rule.Rule {
	return func() rule.Rule {
		return &fakeRule{desc: desc, confDesc: confDesc}
	}
}

func TestExpandSimple(t *testing.T) {
	desc := rule.Description{
		Identifier:   "rule_a",
		Summary:      "a rule",
		Kind:         rule.KindLint,
		Capabilities: rule.Capabilities{OptIn: true, AnalyzerOnly: true},
	}

	t.Run("not configured", func(t *testing.T) {
		got := Expand("rule_a", simpleFactory(desc, "defaults"), fakeResolver{})

		expected := []Row{{
			Identifier:   "rule_a",
			OptIn:        true,
			AnalyzerOnly: true,
			Kind:         rule.KindLint,
			Description:  "defaults",
		}}
		if !reflect.DeepEqual(expected, got) {
			deepequal.SideBySide(t, "rows", expected, got)
		}
	})

	t.Run("configured instance supplies the text", func(t *testing.T) {
		cfg := fakeResolver{
			"rule_a": &fakeRule{desc: desc, confDesc: "tuned"},
		}

		got := Expand("rule_a", simpleFactory(desc, "defaults"), cfg)

		expected := []Row{{
			Identifier:   "rule_a",
			OptIn:        true,
			AnalyzerOnly: true,
			Configured:   true,
			Kind:         rule.KindLint,
			Description:  "tuned",
		}}
		if !reflect.DeepEqual(expected, got) {
			deepequal.SideBySide(t, "rows", expected, got)
		}
	})
}

func TestExpandComposite(t *testing.T) {
	desc := rule.Description{
		Identifier: "custom_rules",
		Summary:    "user-defined rules",
		Kind:       rule.KindStyle,
	}

	configured := &fakeCollector{
		fakeRule: fakeRule{desc: desc, confDesc: "user-defined rules: no_fixme, no_print"},
		subs: []rule.CustomRuleConfig{
			{Name: "no_fixme", Regex: "FIXME", Message: "no FIXME comments"},
			{Name: "no_print", Regex: `fmt\.Print`, Message: "no debug prints"},
		},
	}
	cfg := fakeResolver{"custom_rules": configured}

	got := Expand("custom_rules", simpleFactory(desc, "user-defined rules"), cfg)

	expected := []Row{
		{Identifier: "no_fixme", Configured: true, Kind: rule.KindStyle, Description: "FIXME"},
		{Identifier: "no_print", Configured: true, Kind: rule.KindStyle, Description: `fmt\.Print`},
	}
	if !reflect.DeepEqual(expected, got) {
		deepequal.SideBySide(t, "rows", expected, got)
	}

	for _, row := range got {
		if row.Identifier == "custom_rules" {
			t.Error("sub-rows must not carry the parent identifier")
		}
	}
}

func TestExpandCompositeUnconfigured(t *testing.T) {
	// The container itself still presents a single row when the project
	// configures no sub-rules.
	desc := rule.Description{
		Identifier: "custom_rules",
		Kind:       rule.KindStyle,
	}

	factory := func() rule.Rule {
		return &fakeCollector{fakeRule: fakeRule{desc: desc, confDesc: "user-defined rules"}}
	}

	got := Expand("custom_rules", factory, fakeResolver{})
	if len(got) != 1 {
		t.Fatalf("expected a single row, got %d", len(got))
	}
	if got[0].Identifier != "custom_rules" || got[0].Configured {
		t.Errorf("unexpected row %+v", got[0])
	}
}
