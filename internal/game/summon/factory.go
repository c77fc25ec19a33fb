package summon

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/summoners/internal/game/character"
)

// Effect is invoked by an item's Apply with the character the item was applied to.
// It is synchronous and returns nothing.
type Effect func(target character.Character)

// Factory creates minions from templates, announces each summoning, and
// registers the minion with summoners that keep a roster.
//
// Factory is not safe for concurrent use.
type Factory struct {
	templates map[string]*Template
	builtins  map[string]Template
	out       io.Writer
	logger    *zap.Logger
	newID     func() string
}

// NewFactory returns a Factory preloaded with DefaultTemplates.
// Notices are written to out; a nil out discards them and a nil logger is
// replaced with a no-op logger.
func NewFactory(out io.Writer, logger *zap.Logger) *Factory {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Factory{
		templates: make(map[string]*Template),
		builtins:  make(map[string]Template),
		out:       out,
		logger:    logger,
		newID:     func() string { return uuid.New().String() },
	}
	for _, t := range DefaultTemplates() {
		f.templates[t.ID] = t
		f.builtins[t.ID] = *t
	}
	return f
}

// Register adds t, replacing any template with the same ID. Replacing a
// built-in ID affects Summon, Effect and Effects only; EarthElemental,
// FireElemental and IceElemental keep their fixed stats.
//
// Postcondition: Template(t.ID) returns t; returns an error if t is invalid.
func (f *Factory) Register(t *Template) error {
	if t == nil {
		return fmt.Errorf("summon: Factory.Register: template must not be nil")
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("summon: Factory.Register: %w", err)
	}
	if _, exists := f.templates[t.ID]; exists {
		f.logger.Debug("overriding minion template", zap.String("template", t.ID))
	}
	f.templates[t.ID] = t
	return nil
}

// Template returns the template registered under id.
func (f *Factory) Template(id string) (*Template, bool) {
	t, ok := f.templates[id]
	return t, ok
}

// TemplateIDs returns the registered template IDs in sorted order.
func (f *Factory) TemplateIDs() []string {
	ids := make([]string, 0, len(f.templates))
	for id := range f.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Summon creates a minion from the template templateID on behalf of summoner,
// announces it, and registers it when summoner implements
// character.MinionRegistrar. Otherwise the minion is announced and dropped.
//
// Postcondition: Returns the new minion, or an error if the template is unknown.
func (f *Factory) Summon(templateID string, summoner character.Character) (*character.Minion, error) {
	t, ok := f.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("summon: unknown minion template %q", templateID)
	}
	return f.summon(t, summoner), nil
}

func (f *Factory) summon(t *Template, summoner character.Character) *character.Minion {
	m := character.NewMinion(f.newID(), t.ID, t.Name, t.MaxHP, t.Damage, t.Armor)
	summonerName := summoner.Sheet().Name

	if _, err := fmt.Fprintf(f.out, "%s summons %s!\n", summonerName, m.Name); err != nil {
		f.logger.Warn("writing summon notice", zap.Error(err))
	}
	f.logger.Info("minion summoned",
		zap.String("summoner", summonerName),
		zap.String("minion", m.Name),
		zap.String("minion_id", m.ID),
	)

	reg, ok := summoner.(character.MinionRegistrar)
	if !ok {
		f.logger.Debug("summoner keeps no roster; minion dropped",
			zap.String("summoner", summonerName),
			zap.String("minion_id", m.ID),
		)
		return m
	}
	reg.AddMinion(m)
	return m
}

// Effect returns an Effect that summons from templateID. The template is
// resolved on every invocation so later Register calls take effect.
//
// Postcondition: Returns an error if templateID is not registered now.
func (f *Factory) Effect(templateID string) (Effect, error) {
	if _, ok := f.templates[templateID]; !ok {
		return nil, fmt.Errorf("summon: unknown minion template %q", templateID)
	}
	return func(target character.Character) {
		if _, err := f.Summon(templateID, target); err != nil {
			f.logger.Warn("summon effect failed", zap.String("template", templateID), zap.Error(err))
		}
	}, nil
}

// Effects returns one Effect per registered template, keyed by template ID.
func (f *Factory) Effects() map[string]Effect {
	out := make(map[string]Effect, len(f.templates))
	for id := range f.templates {
		eff, _ := f.Effect(id)
		out[id] = eff
	}
	return out
}

// EarthElemental summons a 30/15/5 Earth Elemental.
func (f *Factory) EarthElemental() Effect { return f.builtin(EarthElementalID) }

// FireElemental summons a 40/20/3 Fire Elemental.
func (f *Factory) FireElemental() Effect { return f.builtin(FireElementalID) }

// IceElemental summons a 35/25/2 Ice Elemental.
func (f *Factory) IceElemental() Effect { return f.builtin(IceElementalID) }

// builtin summons from the stats id had when f was constructed, ignoring any
// later Register under the same ID.
func (f *Factory) builtin(id string) Effect {
	t := f.builtins[id]
	return func(target character.Character) {
		f.summon(&t, target)
	}
}
