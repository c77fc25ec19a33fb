package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validKinds is the set of valid Def kinds.
var validKinds = map[Kind]bool{
	KindWeapon:     true,
	KindProtection: true,
}

// Def defines the static properties of an item loaded from YAML.
type Def struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Kind      Kind   `yaml:"kind"`
	Magnitude int    `yaml:"magnitude"`
	Magical   bool   `yaml:"magical"`
	// Summon names the summon effect fired on apply; empty means none.
	Summon string `yaml:"summon"`
}

// Validate checks that the Def satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("Kind must be one of weapon, protection; got %q", d.Kind))
	}
	if d.Magnitude < 0 {
		errs = append(errs, fmt.Errorf("Magnitude must be >= 0, got %d", d.Magnitude))
	}
	if d.Summon != "" && !d.Magical {
		errs = append(errs, errors.New("Summon requires Magical"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// label returns the display label for the item's variant.
func (d *Def) label() string {
	switch {
	case d.Kind == KindWeapon && d.Magical:
		return LabelMagicalWeapon
	case d.Kind == KindWeapon:
		return LabelWeapon
	case d.Magical:
		return LabelMagicalProtection
	default:
		return LabelProtection
	}
}

// DefaultDefs returns definitions matching the built-in catalog.
func DefaultDefs() []*Def {
	return []*Def{
		{ID: "sword", Name: "Sword", Kind: KindWeapon, Magnitude: 10},
		{ID: "axe", Name: "Axe", Kind: KindWeapon, Magnitude: 15},
		{ID: "shield", Name: "Shield", Kind: KindProtection, Magnitude: 5},
		{ID: "helmet", Name: "Helmet", Kind: KindProtection, Magnitude: 3},
		{ID: "magical_sword", Name: "Magical Sword", Kind: KindWeapon, Magnitude: 10, Magical: true},
		{ID: "magical_axe", Name: "Magical Axe", Kind: KindWeapon, Magnitude: 15, Magical: true},
		{ID: "magical_shield", Name: "Magical Shield", Kind: KindProtection, Magnitude: 5, Magical: true},
	}
}

// LoadDefs reads all *.yaml and *.yml files from dir, parses each as a Def,
// validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Defs or the first encountered error.
func LoadDefs(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDefs: cannot read directory %q: %w", dir, err)
	}

	var defs []*Def
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot read file %q: %w", path, err)
		}
		var d Def
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadDefs: invalid item in %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}
