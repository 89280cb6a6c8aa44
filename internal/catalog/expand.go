package catalog

import (
	"github.com/sirkon/relint/internal/registry"
	"github.com/sirkon/relint/internal/rule"
)

// Expand flattens one registered rule into its presentable rows.
//
// A fresh default instance supplies the static facts of the rule type:
// capability flags, kind, base description. When the project configures
// the rule, the configured instance takes over as the source of the
// description text, since parameters may alter it.
//
// A composite instance holding named sub-rules expands into one row per
// sub-rule instead of a row of its own; sub-rows exist only through
// configuration and so always report as configured.
func Expand(id string, factory registry.Factory, cfg Resolver) []Row {
	def := factory()
	desc := def.Description()

	effective := def
	configured := false
	if inst, ok := cfg.Resolve(id); ok {
		effective = inst
		configured = true
	}

	if coll, ok := effective.(rule.Collector); ok {
		if subs := coll.CustomRules(); len(subs) > 0 {
			rows := make([]Row, 0, len(subs))
			for _, sub := range subs {
				rows = append(rows, Row{
					Identifier:  sub.Name,
					Configured:  true,
					Kind:        desc.Kind,
					Description: sub.Regex,
				})
			}

			return rows
		}
	}

	return []Row{{
		Identifier:   desc.Identifier,
		OptIn:        desc.Capabilities.OptIn,
		Correctable:  desc.Capabilities.Correctable,
		Configured:   configured,
		Kind:         desc.Kind,
		AnalyzerOnly: desc.Capabilities.AnalyzerOnly,
		Description:  effective.ConfigurationDescription(),
	}}
}

// Rows runs Filter and Expand over the whole registry.
func Rows(mode FilterMode, reg *registry.Registry, cfg Resolver) []Row {
	var rows []Row
	for _, id := range Filter(mode, reg.Identifiers(), cfg) {
		factory, ok := reg.Lookup(id)
		if !ok {
			// Filter only returns registry identifiers.
			continue
		}

		rows = append(rows, Expand(id, factory, cfg)...)
	}

	return rows
}
