package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := rootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRulesTable(t *testing.T) {
	out, err := execute(t, "rules")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("table is too short:\n%s", out)
	}

	if !strings.Contains(lines[1], "| identifier |") {
		t.Errorf("missing header: %q", lines[1])
	}

	// Without a configuration nothing is enabled, and rows come sorted.
	var prev string
	for _, line := range lines[3 : len(lines)-1] {
		cells := strings.Split(line, "|")
		if len(cells) < 8 {
			t.Fatalf("malformed row %q", line)
		}

		id := strings.TrimSpace(cells[1])
		if prev != "" && id < prev {
			t.Errorf("row %q breaks identifier order after %q", id, prev)
		}
		prev = id

		if enabled := strings.TrimSpace(cells[4]); enabled != "no" {
			t.Errorf("rule %s reports enabled=%q without a configuration", id, enabled)
		}
	}

	for _, id := range []string{"no_silent_drop", "custom_rules", "function_length"} {
		if !strings.Contains(out, id) {
			t.Errorf("rule %s is missing from the table", id)
		}
	}
}

func TestRulesMutuallyExclusiveFlags(t *testing.T) {
	out, err := execute(t, "rules", "--enabled", "--disabled")
	if err == nil {
		t.Fatal("expected a usage error")
	}

	var usage usageError
	if !errors.As(err, &usage) {
		t.Errorf("expected a usage error, got %T: %v", err, err)
	}

	if strings.Contains(out, "| identifier |") {
		t.Error("no table must be printed on a usage error")
	}
}

func TestRulesUnknownIdentifier(t *testing.T) {
	out, err := execute(t, "rules", "no_such_rule")
	if err == nil {
		t.Fatal("expected a usage error")
	}

	var usage usageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected a usage error, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "no_such_rule") {
		t.Errorf("the message must name the identifier: %q", err.Error())
	}

	if out != "" {
		t.Errorf("no detail text must be printed, got %q", out)
	}
}

func TestRulesSingleRule(t *testing.T) {
	out, err := execute(t, "rules", "no_silent_drop")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, "severity: error") {
		t.Errorf("detail must start with the configuration description:\n%s", out)
	}
	if !strings.Contains(out, "Triggering examples:") {
		t.Errorf("missing examples header:\n%s", out)
	}
	if !strings.Contains(out, "Example #1") || !strings.Contains(out, "Example #2") {
		t.Errorf("examples must be enumerated:\n%s", out)
	}
}

func TestRulesWithConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relint.yaml")
	content := `
rules:
  function_length:
    warning: 80
    error: 120
  custom_rules:
    no_fixme:
      regex: 'FIXME'
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("enabled only", func(t *testing.T) {
		out, err := execute(t, "rules", "--enabled", "--config", path)
		if err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(out, "function_length") {
			t.Errorf("configured rule is missing:\n%s", out)
		}
		if strings.Contains(out, "no_silent_drop") {
			t.Errorf("unconfigured rule leaked into the enabled view:\n%s", out)
		}

		// custom_rules expands into its sub-rule.
		if !strings.Contains(out, "no_fixme") {
			t.Errorf("custom sub-rule is missing:\n%s", out)
		}
		if strings.Contains(out, "custom_rules") {
			t.Errorf("the container itself must not appear once configured:\n%s", out)
		}
	})

	t.Run("disabled only", func(t *testing.T) {
		out, err := execute(t, "rules", "--disabled", "--config", path)
		if err != nil {
			t.Fatal(err)
		}

		if strings.Contains(out, "function_length") {
			t.Errorf("configured rule leaked into the disabled view:\n%s", out)
		}
		if !strings.Contains(out, "no_silent_drop") {
			t.Errorf("unconfigured rule is missing:\n%s", out)
		}
	})

	t.Run("configured parameters reach the table", func(t *testing.T) {
		out, err := execute(t, "rules", "--config", path)
		if err != nil {
			t.Fatal(err)
		}

		for _, line := range strings.Split(out, "\n") {
			if !strings.Contains(line, "function_length") {
				continue
			}

			if !strings.Contains(line, "yes") {
				t.Errorf("function_length must render as enabled: %q", line)
			}

			return
		}

		t.Error("function_length row not found")
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, Version) {
		t.Errorf("version output %q misses %q", out, Version)
	}
}
