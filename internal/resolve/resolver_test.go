package resolve

import (
	"errors"
	"testing"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/keyconfig"
	"github.com/dshills/keylens/internal/scope"
)

func press(token, command string, mods key.Modifier) keyconfig.Entry {
	return keyconfig.Entry{
		Type:    key.Token(token),
		Mods:    mods,
		Command: command,
		Active:  true,
	}
}

func objectGroup(entries ...keyconfig.Entry) *keyconfig.Group {
	g := keyconfig.NewGroup("Object Mode").ForScope(scope.View3D)
	for _, e := range entries {
		g.Add(e)
	}
	return g
}

func TestMatchesAcrossLayers(t *testing.T) {
	s := keyconfig.NewStore()

	defaults := keyconfig.NewLayer("defaults", keyconfig.SourceDefaults)
	defaults.Add(objectGroup(press("RET", "object.confirm", key.ModNone)))
	s.SetDefaults(defaults)

	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	user.Add(objectGroup(press("RET", "object.run", key.ModNone)))
	s.SetUser(user)

	r := New(s)
	rows := r.Matches("RETURN", scope.View3D, key.ModNone, Options{})
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Signature.Command != "object.confirm" || rows[1].Signature.Command != "object.run" {
		t.Errorf("rows out of walk order: %v, %v", rows[0].Signature, rows[1].Signature)
	}

	c := r.Conflicts("RETURN", scope.View3D, key.ModNone, Options{})
	if len(c.Intra) != 2 {
		t.Errorf("len(Intra) = %d, want 2 for two distinct editor bindings", len(c.Intra))
	}
	if len(c.EditorOverlap) != 0 || len(c.GlobalOverlap) != 0 {
		t.Error("overlap sets should be empty without global bindings")
	}
}

func TestMatchesDedupesVerbatimRepeats(t *testing.T) {
	s := keyconfig.NewStore()

	defaults := keyconfig.NewLayer("defaults", keyconfig.SourceDefaults)
	defaults.Add(objectGroup(press("X", "object.delete", key.ModNone)))
	s.SetDefaults(defaults)

	active := keyconfig.NewLayer("active", keyconfig.SourceActive)
	active.Add(objectGroup(press("X", "object.delete", key.ModNone)))
	s.SetActive(active)

	rows := New(s).Matches("X", scope.View3D, key.ModNone, Options{})
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 merged row", len(rows))
	}
	want := []string{"active", "defaults"}
	if len(rows[0].Layers) != 2 || rows[0].Layers[0] != want[0] || rows[0].Layers[1] != want[1] {
		t.Errorf("Layers = %v, want %v", rows[0].Layers, want)
	}
}

func TestAnyModifierEntry(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	any := press("A", "object.select_all", key.ModNone)
	any.Any = true
	user.Add(objectGroup(any))
	s.SetUser(user)

	r := New(s)

	if rows := r.Matches("A", scope.View3D, key.ModCtrl, Options{}); len(rows) != 0 {
		t.Errorf("any-mod entry matched a modified query: %v", rows)
	}

	rows := r.Matches("A", scope.View3D, key.ModNone, Options{})
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 on the bare query", len(rows))
	}
	if want := "user: 3D Viewport > object.select_all [any-mod]"; rows[0].Label != want {
		t.Errorf("Label = %q, want %q", rows[0].Label, want)
	}
}

func TestExactModifierMatch(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	user.Add(objectGroup(press("S", "object.save", key.ModCtrl)))
	s.SetUser(user)

	r := New(s)
	if rows := r.Matches("S", scope.View3D, key.ModCtrl, Options{}); len(rows) != 1 {
		t.Errorf("exact modifiers should match, got %v", rows)
	}
	if rows := r.Matches("S", scope.View3D, key.ModCtrl|key.ModShift, Options{}); len(rows) != 0 {
		t.Errorf("superset modifiers should not match, got %v", rows)
	}
	if rows := r.Matches("S", scope.View3D, key.ModNone, Options{}); len(rows) != 0 {
		t.Errorf("missing modifiers should not match, got %v", rows)
	}
}

func TestDisabledSuppressionAcrossLayers(t *testing.T) {
	s := keyconfig.NewStore()

	// The defaults layer carries the binding; the user layer carries an
	// identical binding toggled off, which suppresses the defaults copy.
	defaults := keyconfig.NewLayer("defaults", keyconfig.SourceDefaults)
	defaults.Add(objectGroup(press("X", "object.delete", key.ModNone)))
	s.SetDefaults(defaults)

	off := press("X", "object.delete", key.ModNone)
	off.Active = false
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	user.Add(objectGroup(off))
	s.SetUser(user)

	if rows := New(s).Matches("X", scope.View3D, key.ModNone, Options{}); len(rows) != 0 {
		t.Errorf("disabled binding should suppress identical rows, got %v", rows)
	}
}

func TestGlobalOverlapConflict(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	user.Add(objectGroup(press("Z", "object.undo", key.ModNone)))

	win := keyconfig.NewGroup("Window").ForScope(scope.Window)
	win.Add(press("Z", "object.undo", key.ModNone))
	user.Add(win)
	s.SetUser(user)

	c := New(s).Conflicts("Z", scope.View3D, key.ModNone, Options{})
	if len(c.Editor) != 1 || len(c.Global) != 1 {
		t.Fatalf("Editor = %d rows, Global = %d rows, want 1 each", len(c.Editor), len(c.Global))
	}
	if len(c.Intra) != 0 {
		t.Errorf("single editor row should not be an intra conflict, got %v", c.Intra)
	}
	if len(c.EditorOverlap) != 1 || len(c.GlobalOverlap) != 1 {
		t.Errorf("overlap = %d/%d rows, want 1/1", len(c.EditorOverlap), len(c.GlobalOverlap))
	}
}

func TestResolveMergesFamilyFilteredGlobals(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	user.Add(objectGroup(press("G", "object.grab", key.ModNone)))

	win := keyconfig.NewGroup("Window").ForScope(scope.Window)
	win.Add(press("G", "mesh.dissolve", key.ModNone))
	win.Add(press("G", "node.group_make", key.ModNone))
	user.Add(win)
	s.SetUser(user)

	r := New(s)

	// Without the global merge, only the editor row shows.
	rows := r.Resolve("G", scope.View3D, key.ModNone, Options{Mode: "OBJECT"})
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 without global merge", len(rows))
	}

	// With it, family-relevant globals join; node commands are noise in
	// the 3D viewport and stay out.
	rows = r.Resolve("G", scope.View3D, key.ModNone, Options{IncludeGlobal: true, Mode: "OBJECT"})
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want editor row plus one family global", len(rows))
	}
	if rows[1].Signature.Command != "mesh.dissolve" {
		t.Errorf("merged global = %q, want mesh.dissolve", rows[1].Signature.Command)
	}

	// The raw global section is unfiltered.
	section := r.GlobalSection("G", key.ModNone, Options{IncludeGlobal: true})
	if len(section) != 2 {
		t.Errorf("len(GlobalSection) = %d, want 2 unfiltered rows", len(section))
	}
	if section = r.GlobalSection("G", key.ModNone, Options{}); section != nil {
		t.Errorf("GlobalSection without IncludeGlobal = %v, want nil", section)
	}
}

func TestResolveDropsNonPressTriggers(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	dbl := press("X", "object.delete_confirm", key.ModNone)
	dbl.Value = keyconfig.ValueDoubleClick
	user.Add(objectGroup(press("X", "object.delete", key.ModNone), dbl))
	s.SetUser(user)

	r := New(s)
	if rows := r.Matches("X", scope.View3D, key.ModNone, Options{}); len(rows) != 2 {
		t.Fatalf("Matches() = %d rows, want 2 raw rows", len(rows))
	}
	rows := r.Resolve("X", scope.View3D, key.ModNone, Options{})
	if len(rows) != 1 || rows[0].Signature.Command != "object.delete" {
		t.Errorf("Resolve() = %v, want only the press row", rows)
	}
}

func TestHideModal(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)

	modal := keyconfig.NewGroup("Knife Tool Modal Map").ForScope(scope.View3D).AsModal()
	modal.Add(keyconfig.Entry{Type: "E", Name: "ADD_CUT", Active: true})
	user.Add(modal)
	s.SetUser(user)

	r := New(s)
	rows := r.Matches("E", scope.View3D, key.ModNone, Options{})
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want the modal row", len(rows))
	}
	if want := "user: 3D Viewport > Add Cut"; rows[0].Label != want {
		t.Errorf("Label = %q, want %q", rows[0].Label, want)
	}

	if rows := r.Matches("E", scope.View3D, key.ModNone, Options{HideModal: true}); len(rows) != 0 {
		t.Errorf("HideModal should skip modal groups, got %v", rows)
	}
}

func TestUVContextStrictness(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)

	g := keyconfig.NewGroup("UV Editor").ForScope(scope.ImageEditor)
	g.Add(press("B", "uv.select_box", key.ModNone))
	g.Add(press("B", "image.view_zoom", key.ModNone))
	user.Add(g)
	s.SetUser(user)

	rows := New(s).Matches("B", scope.UV, key.ModNone, Options{})
	if len(rows) != 1 || rows[0].Signature.Command != "uv.select_box" {
		t.Errorf("UV context should accept only UV commands, got %v", rows)
	}
}

func TestIsHighlightedMatchesDirectComputation(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	user.Add(objectGroup(press("X", "object.delete", key.ModNone)))
	s.SetUser(user)

	r := New(s)
	opts := Options{}

	for _, label := range []string{"X", "Y"} {
		want := len(r.Resolve(label, scope.View3D, key.ModNone, opts)) > 0
		if got := r.IsHighlighted(label, scope.View3D, key.ModNone, opts); got != want {
			t.Errorf("IsHighlighted(%q) = %v, want %v", label, got, want)
		}
		// Second call hits the cache and must agree.
		if got := r.IsHighlighted(label, scope.View3D, key.ModNone, opts); got != want {
			t.Errorf("cached IsHighlighted(%q) = %v, want %v", label, got, want)
		}
	}

	if hits, _ := r.Cache().Stats(); hits < 2 {
		t.Errorf("hits = %d, want at least 2 from the repeated queries", hits)
	}
}

func TestIsHighlightedRefreshesOnConfigChange(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	g := objectGroup(press("X", "object.delete", key.ModNone))
	user.Add(g)
	s.SetUser(user)

	r := New(s)
	if !r.IsHighlighted("X", scope.View3D, key.ModNone, Options{}) {
		t.Fatal("X should be highlighted before the change")
	}

	// Mutate the store behind the resolver's back; the fingerprint
	// check must notice and drop the stale answer.
	g.Entries[0].Active = false
	if r.IsHighlighted("X", scope.View3D, key.ModNone, Options{}) {
		t.Error("X still highlighted after the binding was disabled")
	}
}

func TestDeactivateInvalidatesCache(t *testing.T) {
	s := keyconfig.NewStore()
	user := keyconfig.NewLayer("user", keyconfig.SourceUser)
	e := press("X", "object.delete", key.ModNone)
	user.Add(objectGroup(e))
	s.SetUser(user)

	r := New(s)
	if !r.IsHighlighted("X", scope.View3D, key.ModNone, Options{}) {
		t.Fatal("X should be highlighted before deactivation")
	}

	if err := r.Deactivate("user", e.RowSignature("Object Mode")); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if r.IsHighlighted("X", scope.View3D, key.ModNone, Options{}) {
		t.Error("X still highlighted after deactivation")
	}

	err := r.Deactivate("user", e.RowSignature("Object Mode"))
	if !errors.Is(err, keyconfig.ErrBindingNotFound) {
		t.Errorf("second Deactivate() error = %v, want ErrBindingNotFound", err)
	}
}
