// Package registry keeps the ordered catalog of known rule types.
//
// The registry maps rule identifiers to factories producing fresh default
// instances. Iteration order is the registration order, which keeps
// catalog output deterministic across runs.
package registry

import (
	"fmt"

	"github.com/sirkon/relint/internal/rule"
)

// Factory produces a fresh default instance of a rule type.
type Factory func() rule.Rule

// Registry is an ordered identifier → factory mapping.
type Registry struct {
	order     []string
	factories map[string]Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		factories: map[string]Factory{},
	}
}

// Register adds a rule type under the given identifier. Registration is a
// startup-time operation; a duplicate or empty identifier is a programming
// error and panics.
func (r *Registry) Register(id string, f Factory) {
	if id == "" {
		panic("empty rule identifier")
	}
	if _, ok := r.factories[id]; ok {
		panic(fmt.Sprintf("rule %q registered twice", id))
	}

	r.order = append(r.order, id)
	r.factories[id] = f
}

// Identifiers returns all registered identifiers in registration order.
// The returned slice is a copy.
func (r *Registry) Identifiers() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)

	return ids
}

// Lookup returns the factory registered under the identifier.
func (r *Registry) Lookup(id string) (Factory, bool) {
	f, ok := r.factories[id]
	return f, ok
}

// Len returns the number of registered rule types.
func (r *Registry) Len() int { return len(r.order) }

// Default is the process-wide registry the built-in rules register into.
var Default = New()
