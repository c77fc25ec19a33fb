package inventory

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/summoners/internal/game/summon"
)

// Registry holds item definitions indexed by ID.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Def)}
}

// DefaultRegistry returns a Registry holding DefaultDefs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range DefaultDefs() {
		r.defs[d.ID] = d
	}
	return r
}

// Register adds d to the registry.
//
// Precondition: d must not be nil.
// Postcondition: Def(d.ID) returns (d, true); returns error if d is invalid
// or d.ID is already registered.
func (r *Registry) Register(d *Def) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.Register: %w", err)
	}
	if _, exists := r.defs[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.Register: item ID %q already registered", d.ID)
	}
	r.defs[d.ID] = d
	return nil
}

// Def returns the Def for the given id and whether it was found.
func (r *Registry) Def(id string) (*Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// IDs returns all registered IDs in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.defs))
	for id := range r.defs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// New builds a live item from the definition id. A definition's Summon name is
// resolved through effects.
//
// Postcondition: returns an error if id is unknown or its summon effect is not in effects.
func (r *Registry) New(id string, effects map[string]summon.Effect) (*Gear, error) {
	d, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("inventory: unknown item %q", id)
	}
	var effect summon.Effect
	if d.Summon != "" {
		effect, ok = effects[d.Summon]
		if !ok {
			return nil, fmt.Errorf("inventory: item %q: unknown summon effect %q", id, d.Summon)
		}
	}
	if d.Kind == KindProtection {
		return NewProtection(d.Name, d.label(), d.Magnitude, effect), nil
	}
	return NewWeapon(d.Name, d.label(), d.Magnitude, effect), nil
}
