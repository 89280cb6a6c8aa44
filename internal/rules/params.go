package rules

import (
	"fmt"
	"strings"

	"github.com/sirkon/relint/internal/rule"
	"github.com/sirkon/relint/internal/sigs"
	"gopkg.in/yaml.v3"
)

// Severity is the reporting level of a rule violation.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// UnmarshalYAML restricts severity values to the known set.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}

	switch v := Severity(text); v {
	case SeverityWarning, SeverityError:
		*s = v
		return nil
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
}

// decodeParams applies raw configuration parameters onto dst. Null
// parameters keep the defaults.
func decodeParams(params *yaml.Node, dst any) error {
	if rule.NullParams(params) {
		return nil
	}

	if err := params.Decode(dst); err != nil {
		return fmt.Errorf("decode rule parameters: %w", err)
	}

	return nil
}

// splitPackagedFunc parses a "<package path>.<name>" function reference.
func splitPackagedFunc(s string) (sigs.PackagedFunc, error) {
	pos := strings.LastIndexByte(s, '.')
	if pos <= 0 || pos == len(s)-1 {
		return sigs.PackagedFunc{}, fmt.Errorf("malformed function reference %q, want <package path>.<name>", s)
	}

	return sigs.PackagedFunc{PkgPath: s[:pos], Name: s[pos+1:]}, nil
}
