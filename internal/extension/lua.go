package extension

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/keyconfig"
	"github.com/dshills/keylens/internal/scope"
)

// Host runs extension scripts and collects the binding groups they
// register into one addon layer.
//
// The underlying Lua state is not goroutine-safe; use a Host from a
// single goroutine.
type Host struct {
	L     *lua.LState
	layer *keyconfig.Layer
}

// NewHost creates a sandboxed script host contributing to a layer with
// the given name. Callers must Close it when done.
func NewHost(layerName string) *Host {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Open only the safe libraries. No io, os, debug, or package: the
	// registration API is the only side channel scripts need.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	h := &Host{
		L:     L,
		layer: keyconfig.NewLayer(layerName, keyconfig.SourceAddon),
	}

	api := L.NewTable()
	L.SetField(api, "group", L.NewFunction(h.registerGroup))
	L.SetGlobal("keylens", api)

	return h
}

// Layer returns the layer holding everything registered so far.
func (h *Host) Layer() *keyconfig.Layer {
	return h.layer
}

// LoadScript executes an extension script from source.
func (h *Host) LoadScript(name, src string) error {
	if err := h.L.DoString(src); err != nil {
		return fmt.Errorf("running extension %s: %w", name, err)
	}
	return nil
}

// LoadFile executes an extension script from a file.
func (h *Host) LoadFile(path string) error {
	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("running extension %s: %w", path, err)
	}
	return nil
}

// Close releases the interpreter.
func (h *Host) Close() {
	h.L.Close()
}

// registerGroup implements keylens.group{...}: one table describing a
// binding group with an entries list.
func (h *Host) registerGroup(L *lua.LState) int {
	tbl := L.CheckTable(1)

	name := stringField(L, tbl, "name", "")
	if name == "" {
		L.ArgError(1, "group requires a name")
		return 0
	}

	g := keyconfig.NewGroup(name).
		ForScope(scope.Context(stringField(L, tbl, "scope", "")))
	if boolField(L, tbl, "modal", false) {
		g.AsModal()
	}

	if entries, ok := L.GetField(tbl, "entries").(*lua.LTable); ok {
		entries.ForEach(func(_, v lua.LValue) {
			et, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			g.Add(entryFromTable(L, et))
		})
	}

	h.layer.Add(g)
	return 0
}

func entryFromTable(L *lua.LState, tbl *lua.LTable) keyconfig.Entry {
	return keyconfig.Entry{
		Type: key.Token(stringField(L, tbl, "key", "")),
		Mods: key.FromFlags(
			boolField(L, tbl, "ctrl", false),
			boolField(L, tbl, "shift", false),
			boolField(L, tbl, "alt", false),
			boolField(L, tbl, "os", false),
		),
		Any:         boolField(L, tbl, "any", false),
		Value:       keyconfig.TriggerValue(stringField(L, tbl, "value", "")),
		KeyModifier: key.Token(stringField(L, tbl, "key_modifier", "")),
		Command:     stringField(L, tbl, "command", ""),
		Name:        stringField(L, tbl, "label", ""),
		Active:      boolField(L, tbl, "active", true),
	}
}

func stringField(L *lua.LState, tbl *lua.LTable, field, fallback string) string {
	if v, ok := L.GetField(tbl, field).(lua.LString); ok {
		return string(v)
	}
	return fallback
}

func boolField(L *lua.LState, tbl *lua.LTable, field string, fallback bool) bool {
	if v, ok := L.GetField(tbl, field).(lua.LBool); ok {
		return bool(v)
	}
	return fallback
}
