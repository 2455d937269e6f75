package keyconfig

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/scope"
)

// ParseJSON parses a layer from JSON. Field access goes through gjson so
// a malformed or missing field degrades to its default instead of
// rejecting the whole file; only invalid JSON itself is an error.
func ParseJSON(fallbackName string, source Source, data []byte) (*Layer, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid layer JSON (%s)", fallbackName)
	}
	doc := gjson.ParseBytes(data)

	name := doc.Get("name").String()
	if name == "" {
		name = fallbackName
	}

	layer := NewLayer(name, source)
	doc.Get("groups").ForEach(func(_, gv gjson.Result) bool {
		g := NewGroup(gv.Get("name").String()).
			ForScope(scope.Context(gv.Get("scope").String()))
		if gv.Get("modal").Bool() {
			g.AsModal()
		}

		gv.Get("entries").ForEach(func(_, ev gjson.Result) bool {
			active := true
			if v := ev.Get("active"); v.Exists() {
				active = v.Bool()
			}
			g.Add(Entry{
				Type: key.Token(ev.Get("key").String()),
				Mods: key.FromFlags(
					ev.Get("ctrl").Bool(),
					ev.Get("shift").Bool(),
					ev.Get("alt").Bool(),
					ev.Get("os").Bool(),
				),
				Any:         ev.Get("any").Bool(),
				Value:       TriggerValue(ev.Get("value").String()),
				KeyModifier: key.Token(ev.Get("key_modifier").String()),
				Command:     ev.Get("command").String(),
				Name:        ev.Get("label").String(),
				Active:      active,
			})
			return true
		})

		layer.Add(g)
		return true
	})

	return layer, nil
}
