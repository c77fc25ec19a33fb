package character

import (
	"reflect"
	"slices"
	"strings"
)

// PartyMember is a player-controlled character that owns an inventory of items
// and a roster of summoned minions.
type PartyMember struct {
	Stats
	inventory []Item
	minions   []*Minion
}

// NewPartyMember creates a party member at full health with an empty inventory
// and no minions.
func NewPartyMember(name string, maxHP, damage, armor int) *PartyMember {
	return &PartyMember{Stats: NewStats(name, maxHP, damage, armor)}
}

// AddItem appends item to the inventory. The same item may be added more than once.
func (p *PartyMember) AddItem(item Item) {
	p.inventory = append(p.inventory, item)
}

// ApplyItems applies every inventory item to p in insertion order.
// Effects compound: each item sees the stats left by the items before it.
func (p *PartyMember) ApplyItems() {
	for _, item := range p.inventory {
		item.Apply(p)
	}
}

// RemoveItem reverts item's contribution and drops its first occurrence from
// the inventory. Occurrences are matched with == when item's dynamic value is
// comparable and with reflect.DeepEqual otherwise.
//
// Postcondition: returns false with no mutation when item is not in the
// inventory or when the item's own guard rejects the reversal.
func (p *PartyMember) RemoveItem(item Item) bool {
	idx := slices.IndexFunc(p.inventory, func(it Item) bool { return sameItem(it, item) })
	if idx < 0 {
		return false
	}
	if !item.Remove(p) {
		return false
	}
	p.inventory = slices.Delete(p.inventory, idx, idx+1)
	return true
}

// sameItem compares a and b without panicking on non-comparable values.
func sameItem(a, b Item) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() {
		return true
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// AddMinion appends m to the active roster. The roster never shrinks.
func (p *PartyMember) AddMinion(m *Minion) {
	p.minions = append(p.minions, m)
}

// Inventory returns a copy of the inventory in insertion order.
func (p *PartyMember) Inventory() []Item {
	return slices.Clone(p.inventory)
}

// Minions returns a copy of the active roster in summoning order.
func (p *PartyMember) Minions() []*Minion {
	return slices.Clone(p.minions)
}

// String renders the base stats followed by the inventory and the minion roster.
func (p *PartyMember) String() string {
	var b strings.Builder
	b.WriteString(p.Stats.String())
	b.WriteString("\nInventory:")
	if len(p.inventory) == 0 {
		b.WriteString(" (empty)")
	}
	for _, item := range p.inventory {
		b.WriteString("\n  - ")
		b.WriteString(item.String())
	}
	if len(p.minions) == 0 {
		b.WriteString("\nNo active minions.")
		return b.String()
	}
	b.WriteString("\nActive minions:")
	for _, m := range p.minions {
		b.WriteString("\n  - ")
		b.WriteString(m.String())
	}
	return b.String()
}
