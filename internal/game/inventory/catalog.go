package inventory

import "github.com/cory-johannsen/summoners/internal/game/summon"

// Variant labels.
const (
	LabelWeapon            = "Weapon"
	LabelProtection        = "Protection"
	LabelMagicalWeapon     = "Magical Weapon"
	LabelMagicalProtection = "Magical Protection"
)

// Sword returns a 10-damage weapon.
func Sword() *Gear { return NewWeapon("Sword", LabelWeapon, 10, nil) }

// Axe returns a 15-damage weapon.
func Axe() *Gear { return NewWeapon("Axe", LabelWeapon, 15, nil) }

// Shield returns a 5-armor protection.
func Shield() *Gear { return NewProtection("Shield", LabelProtection, 5, nil) }

// Helmet returns a 3-armor protection.
func Helmet() *Gear { return NewProtection("Helmet", LabelProtection, 3, nil) }

// MagicalSword returns a 10-damage weapon; effect may be nil.
func MagicalSword(effect summon.Effect) *Gear {
	return NewWeapon("Magical Sword", LabelMagicalWeapon, 10, effect)
}

// MagicalAxe returns a 15-damage weapon; effect may be nil.
func MagicalAxe(effect summon.Effect) *Gear {
	return NewWeapon("Magical Axe", LabelMagicalWeapon, 15, effect)
}

// MagicalShield returns a 5-armor protection; effect may be nil.
func MagicalShield(effect summon.Effect) *Gear {
	return NewProtection("Magical Shield", LabelMagicalProtection, 5, effect)
}
