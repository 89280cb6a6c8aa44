package config

import (
	"fmt"

	"github.com/sirkon/relint/internal/registry"
	"github.com/sirkon/relint/internal/rule"
)

// Resolved holds configured rule instances built against a registry.
// Constructed fresh per invocation, never persisted.
type Resolved struct {
	instances []rule.Rule
	byID      map[string]rule.Rule
}

// Resolve builds configured instances for every rule the file activates.
// Unknown identifiers and invalid parameters are reported as errors.
func Resolve(f *File, reg *registry.Registry) (*Resolved, error) {
	res := &Resolved{
		byID: map[string]rule.Rule{},
	}

	for _, id := range f.Rules.Order() {
		factory, ok := reg.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q in configuration", id)
		}

		inst := factory()
		if err := inst.Configure(f.Rules.Node(id)); err != nil {
			return nil, fmt.Errorf("configure rule %q: %w", id, err)
		}

		res.instances = append(res.instances, inst)
		res.byID[id] = inst
	}

	return res, nil
}

// Resolve returns the configured instance of the identifier, when the
// project activates it.
func (r *Resolved) Resolve(id string) (rule.Rule, bool) {
	inst, ok := r.byID[id]
	return inst, ok
}

// Instances returns configured instances in configuration file order.
func (r *Resolved) Instances() []rule.Rule {
	return r.instances
}
