package keyconfig

import (
	"io/fs"
	"testing"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/scope"
)

const jsonLayer = `{
  "name": "user",
  "groups": [
    {
      "name": "Object Mode",
      "scope": "VIEW_3D",
      "entries": [
        {"key": "RET", "command": "object.confirm", "ctrl": true},
        {"key": "X", "command": "object.delete", "value": "DOUBLE_CLICK", "active": false}
      ]
    },
    {
      "name": "Knife Tool Modal Map",
      "scope": "VIEW_3D",
      "modal": true,
      "entries": [
        {"key": "E", "command": "", "label": "Add Cut"}
      ]
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	layer, err := ParseJSON("fallback", SourceUser, []byte(jsonLayer))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	if layer.Name != "user" {
		t.Errorf("Name = %q, want %q", layer.Name, "user")
	}
	if len(layer.Groups) != 2 {
		t.Fatalf("len(Groups) = %d, want 2", len(layer.Groups))
	}

	g := layer.Groups[0]
	if g.Scope != scope.View3D {
		t.Errorf("Scope = %q, want VIEW_3D", g.Scope)
	}
	if len(g.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(g.Entries))
	}

	first := g.Entries[0]
	if first.Type != "RET" || first.Command != "object.confirm" {
		t.Errorf("first entry = %+v", first)
	}
	if first.Mods != key.ModCtrl {
		t.Errorf("first.Mods = %v, want ModCtrl", first.Mods)
	}
	if !first.Active {
		t.Error("active should default to true when omitted")
	}

	second := g.Entries[1]
	if second.Value != ValueDoubleClick {
		t.Errorf("second.Value = %q, want DOUBLE_CLICK", second.Value)
	}
	if second.Active {
		t.Error("explicit active=false should be honored")
	}

	if !layer.Groups[1].Modal {
		t.Error("modal flag lost")
	}
}

func TestParseJSONMalformedEntryDefaults(t *testing.T) {
	// Entries with missing or mistyped fields degrade to defaults, they
	// never fail the file.
	data := []byte(`{"groups":[{"name":"G","entries":[{"command":"op.x","ctrl":"notabool"}]}]}`)
	layer, err := ParseJSON("user", SourceUser, data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	e := layer.Groups[0].Entries[0]
	if e.Type != key.NoToken {
		t.Errorf("missing key should yield NoToken, got %q", e.Type)
	}
	if sig := e.FullSignature("G"); sig.Value != ValuePress || sig.KeyModifier != NoKeyModifier {
		t.Errorf("signature defaults not applied: %+v", sig)
	}
	if layer.Name != "user" {
		t.Errorf("fallback name not applied, got %q", layer.Name)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON("user", SourceUser, []byte("{nope")); err == nil {
		t.Error("invalid JSON should be an error")
	}
}

const tomlLayer = `
name = "defaults"

[[groups]]
name = "Object Mode"
scope = "VIEW_3D"

[[groups.entries]]
key = "RET"
command = "object.confirm"
shift = true
key_modifier = "K"
`

func TestParseTOML(t *testing.T) {
	layer, err := ParseTOML("fallback", SourceDefaults, []byte(tomlLayer))
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}
	if layer.Name != "defaults" {
		t.Errorf("Name = %q, want %q", layer.Name, "defaults")
	}

	e := layer.Groups[0].Entries[0]
	if e.Mods != key.ModShift {
		t.Errorf("Mods = %v, want ModShift", e.Mods)
	}
	if e.KeyModifier != "K" {
		t.Errorf("KeyModifier = %q, want K", e.KeyModifier)
	}
	if !e.Active {
		t.Error("active should default to true")
	}
}

const yamlLayer = `
name: addon
groups:
  - name: UV Editor
    scope: IMAGE_EDITOR
    entries:
      - key: B
        command: uv.select_box
        any: true
`

func TestParseYAML(t *testing.T) {
	layer, err := ParseYAML("fallback", SourceAddon, []byte(yamlLayer))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if layer.Name != "addon" {
		t.Errorf("Name = %q, want %q", layer.Name, "addon")
	}

	e := layer.Groups[0].Entries[0]
	if !e.Any {
		t.Error("any flag lost")
	}
	if layer.Groups[0].Scope != scope.ImageEditor {
		t.Errorf("Scope = %q, want IMAGE_EDITOR", layer.Groups[0].Scope)
	}
}

type fakeFS map[string][]byte

func (f fakeFS) ReadFile(path string) ([]byte, error) {
	if data, ok := f[path]; ok {
		return data, nil
	}
	return nil, fs.ErrNotExist
}

func TestLoadFileFSMissingIsNil(t *testing.T) {
	layer, err := LoadFileFS(fakeFS{}, "missing.json", SourceUser)
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if layer != nil {
		t.Errorf("missing file should yield nil layer, got %v", layer)
	}
}

func TestLoadFileFSDispatch(t *testing.T) {
	fsys := fakeFS{
		"user.json": []byte(jsonLayer),
		"bad.ini":   []byte(""),
	}

	layer, err := LoadFileFS(fsys, "user.json", SourceUser)
	if err != nil {
		t.Fatalf("LoadFileFS() error = %v", err)
	}
	if layer.Name != "user" {
		t.Errorf("Name = %q, want user", layer.Name)
	}

	if _, err := LoadFileFS(fsys, "bad.ini", SourceUser); err == nil {
		t.Error("unsupported extension should be an error")
	}
}
