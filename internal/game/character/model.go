// Package character defines the character capability, the stat record shared by
// every character variant, and the two variants: party members and minions.
package character

import "fmt"

// Stats is the stat record embedded by every character variant. Embedding it
// supplies the whole Character capability.
//
// Invariant: 0 <= CurrentHP <= MaxHP after any Heal or ReceiveDamage call.
// Item application writes Damage and Armor directly and never touches hit points.
type Stats struct {
	Name      string
	MaxHP     int
	CurrentHP int
	Damage    int
	Armor     int
}

// NewStats returns a Stats record at full health.
//
// The constructor does not validate its arguments; see Build for a checked path.
func NewStats(name string, maxHP, damage, armor int) Stats {
	return Stats{
		Name:      name,
		MaxHP:     maxHP,
		CurrentHP: maxHP,
		Damage:    damage,
		Armor:     armor,
	}
}

// Sheet returns the mutable stat record itself.
func (s *Stats) Sheet() *Stats { return s }

// Attack returns the current effective damage.
func (s *Stats) Attack() int { return s.Damage }

// Defense returns the current effective armor.
func (s *Stats) Defense() int { return s.Armor }

// Heal adds amount to CurrentHP and clamps the result to MaxHP.
//
// Negative amounts are not rejected: they lower CurrentHP and no lower clamp
// is applied.
func (s *Stats) Heal(amount int) {
	s.CurrentHP += amount
	if s.CurrentHP > s.MaxHP {
		s.CurrentHP = s.MaxHP
	}
}

// ReceiveDamage subtracts max(0, damage-Armor) from CurrentHP, never going below zero.
//
// Postcondition: damage <= Armor leaves CurrentHP unchanged.
func (s *Stats) ReceiveDamage(damage int) {
	effective := damage - s.Armor
	if effective < 0 {
		effective = 0
	}
	s.CurrentHP -= effective
	if s.CurrentHP < 0 {
		s.CurrentHP = 0
	}
}

// IsDead reports whether the character has zero or fewer hit points.
func (s *Stats) IsDead() bool {
	return s.CurrentHP <= 0
}

// String renders name, hit points, damage, and armor.
func (s *Stats) String() string {
	return fmt.Sprintf("%s (HP: %d/%d, Damage: %d, Armor: %d)",
		s.Name, s.CurrentHP, s.MaxHP, s.Damage, s.Armor)
}

// Character is any entity with hit points, damage, and armor.
// *PartyMember and *Minion are the implementations.
type Character interface {
	Sheet() *Stats
	Attack() int
	Defense() int
	Heal(amount int)
	ReceiveDamage(damage int)
	IsDead() bool
	fmt.Stringer
}

// Item reversibly modifies a character's stats.
//
// Items do not record whether they have been applied; callers pair each Apply
// with at most one Remove. Pointer implementations are matched by identity in
// PartyMember.RemoveItem; value implementations need not be comparable.
type Item interface {
	// Apply adds the item's contribution to c and fires any attached summon effect.
	Apply(c Character)
	// Remove reverts the item's contribution from c, reporting false and
	// leaving c unchanged when the guard rejects the reversal.
	Remove(c Character) bool
	fmt.Stringer
}

// MinionRegistrar is implemented by characters that keep a roster of summoned minions.
type MinionRegistrar interface {
	AddMinion(m *Minion)
}
