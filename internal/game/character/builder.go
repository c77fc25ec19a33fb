package character

import (
	"errors"
	"fmt"
)

// Build constructs a PartyMember after checking its starting stats.
//
// Precondition: none; invalid input is reported as an error.
// Postcondition: Returns a PartyMember at full health, or a non-nil error
// describing every violated constraint.
func Build(name string, maxHP, damage, armor int) (*PartyMember, error) {
	var errs []error
	if name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if maxHP < 1 {
		errs = append(errs, fmt.Errorf("max hp must be >= 1, got %d", maxHP))
	}
	if damage < 0 {
		errs = append(errs, fmt.Errorf("damage must be >= 0, got %d", damage))
	}
	if armor < 0 {
		errs = append(errs, fmt.Errorf("armor must be >= 0, got %d", armor))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("character build failed: %w", errors.Join(errs...))
	}
	return NewPartyMember(name, maxHP, damage, armor), nil
}
