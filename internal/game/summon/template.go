// Package summon provides summon effects: callbacks attached to magical items
// that create minions and register them with the summoner.
package summon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in template IDs.
const (
	EarthElementalID = "earth_elemental"
	FireElementalID  = "fire_elemental"
	IceElementalID   = "ice_elemental"
)

// Template defines the fixed stats of a summonable minion.
type Template struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	MaxHP  int    `yaml:"max_hp"`
	Damage int    `yaml:"damage"`
	Armor  int    `yaml:"armor"`
}

// DefaultTemplates returns fresh copies of the built-in elemental templates.
func DefaultTemplates() []*Template {
	return []*Template{
		{ID: EarthElementalID, Name: "Earth Elemental", MaxHP: 30, Damage: 15, Armor: 5},
		{ID: FireElementalID, Name: "Fire Elemental", MaxHP: 40, Damage: 20, Armor: 3},
		{ID: IceElementalID, Name: "Ice Elemental", MaxHP: 35, Damage: 25, Armor: 2},
	}
}

// Validate checks that the template satisfies its invariants.
//
// Precondition: t is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (t *Template) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if t.MaxHP < 1 {
		errs = append(errs, fmt.Errorf("max_hp must be >= 1, got %d", t.MaxHP))
	}
	if t.Damage < 0 {
		errs = append(errs, fmt.Errorf("damage must be >= 0, got %d", t.Damage))
	}
	if t.Armor < 0 {
		errs = append(errs, fmt.Errorf("armor must be >= 0, got %d", t.Armor))
	}
	if len(errs) > 0 {
		return fmt.Errorf("minion template %q: %v", t.ID, errs)
	}
	return nil
}

// LoadTemplateFromBytes parses a single minion template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing minion template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml and *.yml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading minion dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
