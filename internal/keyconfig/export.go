package keyconfig

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// ExportJSON serializes a layer to the JSON layer-file shape. Default
// field values (press trigger, no key modifier, active) are omitted, so
// the output round-trips through ParseJSON. Used to persist user-layer
// state such as deactivated bindings.
func ExportJSON(l *Layer) ([]byte, error) {
	b := jsonBuilder{data: []byte(`{}`)}
	b.set("name", l.Name)

	for _, g := range l.Groups {
		gb := jsonBuilder{data: []byte(`{}`)}
		gb.set("name", g.Name)
		if g.Scope != "" {
			gb.set("scope", string(g.Scope))
		}
		if g.Modal {
			gb.set("modal", true)
		}
		gb.setRaw("entries", []byte(`[]`))

		for _, e := range g.Entries {
			eb := jsonBuilder{data: []byte(`{}`)}
			eb.set("key", string(e.Type))
			eb.set("command", e.Command)
			if e.Name != "" {
				eb.set("label", e.Name)
			}
			ctrl, shift, alt, os := e.Mods.Flags()
			if ctrl {
				eb.set("ctrl", true)
			}
			if shift {
				eb.set("shift", true)
			}
			if alt {
				eb.set("alt", true)
			}
			if os {
				eb.set("os", true)
			}
			if e.Any {
				eb.set("any", true)
			}
			if v := e.value(); v != ValuePress {
				eb.set("value", string(v))
			}
			if km := e.keyModifier(); km != NoKeyModifier {
				eb.set("key_modifier", string(km))
			}
			if !e.Active {
				eb.set("active", false)
			}
			if eb.err != nil {
				return nil, eb.err
			}
			gb.setRaw("entries.-1", eb.data)
		}

		if gb.err != nil {
			return nil, gb.err
		}
		b.setRaw("groups.-1", gb.data)
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.data, nil
}

// jsonBuilder accumulates sjson edits, keeping the first error.
type jsonBuilder struct {
	data []byte
	err  error
}

func (b *jsonBuilder) set(path string, value any) {
	if b.err != nil {
		return
	}
	data, err := sjson.SetBytes(b.data, path, value)
	if err != nil {
		b.err = fmt.Errorf("exporting layer JSON at %s: %w", path, err)
		return
	}
	b.data = data
}

func (b *jsonBuilder) setRaw(path string, raw []byte) {
	if b.err != nil {
		return
	}
	data, err := sjson.SetRawBytes(b.data, path, raw)
	if err != nil {
		b.err = fmt.Errorf("exporting layer JSON at %s: %w", path, err)
		return
	}
	b.data = data
}
