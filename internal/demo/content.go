package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/summoners/internal/config"
	"github.com/cory-johannsen/summoners/internal/game/inventory"
	"github.com/cory-johannsen/summoners/internal/game/summon"
	"github.com/cory-johannsen/summoners/internal/scripting"
)

// loadedContent is the optional content found in the configured directories.
type loadedContent struct {
	items  []*inventory.Gear
	engine *scripting.Engine
}

func (c *loadedContent) close() {
	if c.engine != nil {
		c.engine.Close()
	}
}

// loadContent registers minion templates, loads Lua summon scripts, and builds
// one live item per content item definition. Each directory is optional.
//
// Item summon names resolve to minion templates first and Lua hooks second.
func loadContent(cfg config.Config, factory *summon.Factory, logger *zap.Logger) (*loadedContent, error) {
	content := &loadedContent{}

	if dir := cfg.Content.MinionsDir; dir != "" {
		templates, err := summon.LoadTemplates(dir)
		if err != nil {
			return nil, fmt.Errorf("loading minion templates: %w", err)
		}
		for _, t := range templates {
			if err := factory.Register(t); err != nil {
				return nil, err
			}
		}
		logger.Info("loaded minion templates", zap.Int("count", len(templates)))
	}

	effects := factory.Effects()

	if dir := cfg.Content.ScriptsDir; dir != "" {
		content.engine = scripting.NewEngine(factory, logger, cfg.Scripting.InstructionLimit)
		if err := content.engine.LoadDir(dir); err != nil {
			content.close()
			return nil, err
		}
	}

	if dir := cfg.Content.ItemsDir; dir != "" {
		defs, err := inventory.LoadDefs(dir)
		if err != nil {
			content.close()
			return nil, fmt.Errorf("loading item defs: %w", err)
		}
		reg := inventory.NewRegistry()
		for _, d := range defs {
			if err := reg.Register(d); err != nil {
				content.close()
				return nil, err
			}
			if _, ok := effects[d.Summon]; !ok && d.Summon != "" && content.engine != nil && content.engine.HasHook(d.Summon) {
				effects[d.Summon] = content.engine.Effect(d.Summon)
			}
		}
		for _, id := range reg.IDs() {
			item, err := reg.New(id, effects)
			if err != nil {
				content.close()
				return nil, err
			}
			content.items = append(content.items, item)
		}
		logger.Info("loaded content items", zap.Int("count", len(content.items)))
	}

	return content, nil
}
