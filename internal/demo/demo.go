// Package demo runs the fixed demonstration script: a party member equips three
// magical items, each summoning a different elemental, then sheds two of them
// and takes a hit.
package demo

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/summoners/internal/config"
	"github.com/cory-johannsen/summoners/internal/game/character"
	"github.com/cory-johannsen/summoners/internal/game/inventory"
	"github.com/cory-johannsen/summoners/internal/game/summon"
)

const (
	demoDamage = 30
	demoHeal   = 20
)

// Run executes the demonstration, writing the transcript to out.
//
// Precondition: cfg has passed Validate.
// Postcondition: returns a non-nil error only when content loading or hero
// construction fails; the script itself cannot fail.
func Run(out io.Writer, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	factory := summon.NewFactory(out, logger)
	content, err := loadContent(cfg, factory, logger)
	if err != nil {
		return err
	}
	defer content.close()

	hero, err := character.Build(cfg.Demo.HeroName, cfg.Demo.HeroMaxHP, cfg.Demo.HeroDamage, cfg.Demo.HeroArmor)
	if err != nil {
		return fmt.Errorf("building demo hero: %w", err)
	}

	sword := inventory.MagicalSword(factory.IceElemental())
	axe := inventory.MagicalAxe(factory.FireElemental())
	shield := inventory.MagicalShield(factory.EarthElemental())
	hero.AddItem(sword)
	hero.AddItem(axe)
	hero.AddItem(shield)

	hero.ApplyItems()
	section(out, "After applying items", hero)

	for _, item := range []*inventory.Gear{sword, shield} {
		ok := hero.RemoveItem(item)
		logger.Debug("item removal",
			zap.String("item", item.Name()),
			zap.String("kind", string(item.Kind())),
			zap.Int("magnitude", item.Magnitude()),
			zap.Bool("removed", ok),
		)
		fmt.Fprintf(out, "Removing %s: %s\n", item.Name(), outcome(ok))
	}
	section(out, "After removing two items", hero)

	hero.ReceiveDamage(demoDamage)
	hero.Heal(demoHeal)
	section(out, fmt.Sprintf("After taking %d damage and healing %d", demoDamage, demoHeal), hero)

	if len(content.items) > 0 {
		for _, item := range content.items {
			hero.AddItem(item)
			item.Apply(hero)
		}
		section(out, "After applying content items", hero)
	}

	logger.Info("demo complete",
		zap.String("hero", hero.Name),
		zap.Int("minions", len(hero.Minions())),
		zap.Bool("dead", hero.IsDead()),
	)
	return nil
}

func section(out io.Writer, title string, p *character.PartyMember) {
	fmt.Fprintf(out, "\n=== %s ===\n%s\n", title, p)
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
