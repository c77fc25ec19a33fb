// Package inventory provides the items a party member can carry and apply:
// weapons, protections, their magical variants, and YAML-defined item content.
package inventory

import (
	"fmt"

	"github.com/cory-johannsen/summoners/internal/game/character"
	"github.com/cory-johannsen/summoners/internal/game/summon"
)

// Kind selects the stat an item modifies.
type Kind string

const (
	// KindWeapon items add to damage.
	KindWeapon Kind = "weapon"
	// KindProtection items add to armor.
	KindProtection Kind = "protection"
)

// Gear is the single implementation of character.Item shared by every weapon
// and protection variant.
//
// Invariant: kind is KindWeapon or KindProtection; magnitude is fixed at construction.
type Gear struct {
	name      string
	label     string
	kind      Kind
	magnitude int
	effect    summon.Effect
}

// NewWeapon returns a damage item. A non-nil effect fires on every Apply.
func NewWeapon(name, label string, damage int, effect summon.Effect) *Gear {
	return &Gear{name: name, label: label, kind: KindWeapon, magnitude: damage, effect: effect}
}

// NewProtection returns an armor item. A non-nil effect fires on every Apply.
func NewProtection(name, label string, armor int, effect summon.Effect) *Gear {
	return &Gear{name: name, label: label, kind: KindProtection, magnitude: armor, effect: effect}
}

// Name returns the display name.
func (g *Gear) Name() string { return g.name }

// Kind returns the stat family the item modifies.
func (g *Gear) Kind() Kind { return g.kind }

// Magnitude returns the fixed effect size.
func (g *Gear) Magnitude() int { return g.magnitude }

// HasSummon reports whether a summon effect is attached.
func (g *Gear) HasSummon() bool { return g.effect != nil }

func (g *Gear) stat(c character.Character) *int {
	if g.kind == KindProtection {
		return &c.Sheet().Armor
	}
	return &c.Sheet().Damage
}

// Apply adds the magnitude to c's damage or armor, then runs the summon
// effect, if any, against c before returning.
func (g *Gear) Apply(c character.Character) {
	*g.stat(c) += g.magnitude
	if g.effect != nil {
		g.effect(c)
	}
}

// Remove subtracts the magnitude from c's damage or armor.
//
// The guard only checks stat >= magnitude; it cannot tell whether this item's
// contribution is the one being reverted.
// Postcondition: returns false with no mutation when the stat is below magnitude.
// Summoned minions are never reverted.
func (g *Gear) Remove(c character.Character) bool {
	s := g.stat(c)
	if *s < g.magnitude {
		return false
	}
	*s -= g.magnitude
	return true
}

// String renders the variant label, name, and magnitude.
func (g *Gear) String() string {
	stat := "Damage"
	if g.kind == KindProtection {
		stat = "Armor"
	}
	return fmt.Sprintf("%s: %s (%s: %d)", g.label, g.name, stat, g.magnitude)
}
