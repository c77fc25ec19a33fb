package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// registerModules installs the engine global table.
func (e *Engine) registerModules() {
	engine := e.L.NewTable()
	e.L.SetFuncs(engine, map[string]lua.LGFunction{
		"summon": e.luaSummon,
		"log":    e.luaLog,
	})
	e.L.SetGlobal("engine", engine)
}

// luaSummon implements engine.summon(template_id) -> minion name.
func (e *Engine) luaSummon(L *lua.LState) int {
	id := L.CheckString(1)
	if e.target == nil {
		L.RaiseError("engine.summon called outside a summon hook")
		return 0
	}
	m, err := e.factory.Summon(id, e.target)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LString(m.Name))
	return 1
}

// luaLog implements engine.log(message).
func (e *Engine) luaLog(L *lua.LState) int {
	e.logger.Info("script", zap.String("message", L.CheckString(1)))
	return 0
}
