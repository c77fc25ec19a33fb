package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/summoners/internal/game/character"
	"github.com/cory-johannsen/summoners/internal/game/summon"
)

// Engine owns one sandboxed Lua state whose global functions can be used as
// summon effects. A hook receives the summoner as a table
// {name, hp, max_hp, damage, armor, has_roster} and may call
// engine.summon(template_id) and engine.log(message).
//
// Engine is not safe for concurrent use.
type Engine struct {
	L         *lua.LState
	factory   *summon.Factory
	logger    *zap.Logger
	instLimit int

	// target is the summoner of the hook call in progress; nil between calls.
	target character.Character
}

// NewEngine creates an Engine whose engine.summon calls go through factory.
//
// Precondition: factory must be non-nil. instLimit <= 0 uses DefaultInstructionLimit.
// Postcondition: Returns an Engine with no scripts loaded; call Close when done.
func NewEngine(factory *summon.Factory, logger *zap.Logger, instLimit int) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		L:         NewSandboxedState(),
		factory:   factory,
		logger:    logger,
		instLimit: instLimit,
	}
	e.registerModules()
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.L.Close()
}

// LoadDir executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: returns an error on the first file that fails to load.
func (e *Engine) LoadDir(scriptDir string) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}
	var luaFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, entry.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := withBudget(e.L, e.instLimit, func() error { return e.L.DoFile(path) }); err != nil {
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
		e.logger.Debug("loaded summon script", zap.String("path", path))
	}
	return nil
}

// LoadString executes src in the engine's state.
func (e *Engine) LoadString(src string) error {
	if err := withBudget(e.L, e.instLimit, func() error { return e.L.DoString(src) }); err != nil {
		return fmt.Errorf("scripting: loading source: %w", err)
	}
	return nil
}

// HasHook reports whether a global function named hook is defined.
func (e *Engine) HasHook(hook string) bool {
	_, ok := e.L.GetGlobal(hook).(*lua.LFunction)
	return ok
}

// Effect returns a summon effect that calls the Lua global hook with the summoner.
// Missing hooks and Lua runtime errors are logged at Warn level and never propagated.
func (e *Engine) Effect(hook string) summon.Effect {
	return func(target character.Character) {
		e.call(hook, target)
	}
}

func (e *Engine) call(hook string, target character.Character) {
	fn, ok := e.L.GetGlobal(hook).(*lua.LFunction)
	if !ok {
		e.logger.Warn("scripting: summon hook not defined", zap.String("hook", hook))
		return
	}

	e.target = target
	defer func() { e.target = nil }()

	err := withBudget(e.L, e.instLimit, func() error {
		return e.L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, e.summonerTable(target))
	})
	if err != nil {
		e.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.String("summoner", target.Sheet().Name),
			zap.Error(err),
		)
	}
}

func (e *Engine) summonerTable(c character.Character) *lua.LTable {
	s := c.Sheet()
	_, hasRoster := c.(character.MinionRegistrar)
	tbl := e.L.NewTable()
	e.L.SetField(tbl, "name", lua.LString(s.Name))
	e.L.SetField(tbl, "hp", lua.LNumber(s.CurrentHP))
	e.L.SetField(tbl, "max_hp", lua.LNumber(s.MaxHP))
	e.L.SetField(tbl, "damage", lua.LNumber(s.Damage))
	e.L.SetField(tbl, "armor", lua.LNumber(s.Armor))
	e.L.SetField(tbl, "has_roster", lua.LBool(hasRoster))
	return tbl
}
