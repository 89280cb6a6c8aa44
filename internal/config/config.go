// Package config loads the project configuration and resolves it against
// the rule registry.
//
// The configuration is a YAML file activating rules and supplying their
// parameters:
//
//	rules:
//	  annotate_external:
//	  annotation_format:
//	    suffix: ": %w"
//	  custom_rules:
//	    no_fixme:
//	      regex: 'FIXME'
//	      message: FIXME comments are forbidden
//
// A rule listed under rules:, even with a null body, is active for the
// project. File order of the entries is preserved.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// configuration path is given.
const DefaultFileName = ".relint.yaml"

// File is the parsed project configuration.
type File struct {
	Rules ruleParams `yaml:"rules"`
}

// ruleParams preserves the file order of rule entries on top of a
// identifier → raw parameters mapping.
type ruleParams struct {
	order []string
	nodes map[string]*yaml.Node
}

// UnmarshalYAML keeps mapping keys in document order, which the plain
// map decoding would lose.
func (p *ruleParams) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("rules: mapping of rule identifiers expected")
	}

	p.nodes = map[string]*yaml.Node{}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if _, ok := p.nodes[key]; ok {
			return fmt.Errorf("rule %q configured twice", key)
		}

		p.order = append(p.order, key)
		p.nodes[key] = node.Content[i+1]
	}

	return nil
}

// Order returns configured rule identifiers in file order.
func (p *ruleParams) Order() []string { return p.order }

// Node returns the raw parameters of the identifier, nil when the entry
// carries a null body.
func (p *ruleParams) Node(id string) *yaml.Node { return p.nodes[id] }

// Load reads the configuration file. An empty path means the default
// file name in the working directory; its absence is not an error and
// yields an empty configuration. An explicitly given path must exist.
func Load(path string, logger *slog.Logger) (*File, error) {
	if logger == nil {
		logger = slog.Default()
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Debug("no project configuration found", slog.String("path", path))
			return &File{}, nil
		}

		return nil, fmt.Errorf("read configuration: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse configuration %s: %w", path, err)
	}

	logger.Debug(
		"loaded project configuration",
		slog.String("path", path),
		slog.Int("rules", len(f.Rules.Order())),
	)

	return &f, nil
}
