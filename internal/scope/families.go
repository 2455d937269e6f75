package scope

import "strings"

// Command-prefix families decide which globally-bound commands are
// plausible inside an editor context. Global (Window/Screen) groups bind
// commands from every corner of the application; when a caller merges
// global rows into a context view, rows outside the context's family are
// noise and get filtered out.

// view3DFamilies maps the host's interaction mode to the command prefixes
// that make sense in the 3D viewport for that mode.
var view3DFamilies = map[string][]string{
	"OBJECT":        {"object.", "mesh.", "view3d.", "pose.", "armature."},
	"EDIT_MESH":     {"mesh.", "view3d.", "uv.", "curve.", "curves."},
	"EDIT_CURVE":    {"curve.", "curves.", "view3d."},
	"EDIT_SURFACE":  {"curve.", "view3d."},
	"SCULPT":        {"sculpt.", "view3d."},
	"PAINT_VERTEX":  {"paint.", "view3d."},
	"PAINT_WEIGHT":  {"paint.", "view3d."},
	"PAINT_TEXTURE": {"paint.", "view3d."},
	"SCULPT_CURVES": {"curves.", "view3d."},
	"PARTICLE_EDIT": {"particle.", "view3d."},
	"POSE":          {"pose.", "armature.", "object.", "view3d."},
	"EDIT_ARMATURE": {"armature.", "view3d."},
}

// view3DFallback is used when the interaction mode is unknown.
var view3DFallback = []string{"view3d.", "object.", "mesh."}

// contextFamilies maps non-View3D contexts to their command prefixes.
var contextFamilies = map[Context][]string{
	UV:             {"uv.", "image."},
	ImageEditor:    {"image.", "mask.", "uv."},
	GraphEditor:    {"graph.", "anim."},
	DopeSheet:      {"anim.", "action."},
	NLAEditor:      {"nla."},
	SequenceEditor: {"sequencer."},
	NodeEditor:     {"node."},
	ClipEditor:     {"clip."},
	Outliner:       {"outliner."},
	TextEditor:     {"text."},
	FileBrowser:    {"file."},
}

// pieMenuCommand is a user-configured pie menu trigger; it is meaningful
// in every context and always passes the family filter.
const pieMenuCommand = "wm.pme_user_pie_menu_call"

// GlobalCommandAllowed reports whether a globally-bound command is
// plausible for the given context and interaction mode.
func GlobalCommandAllowed(command string, ctx Context, mode string) bool {
	id := strings.ToLower(command)
	if id == pieMenuCommand {
		return true
	}

	var prefixes []string
	if ctx == View3D {
		var ok bool
		prefixes, ok = view3DFamilies[mode]
		if !ok {
			prefixes = view3DFallback
		}
	} else {
		prefixes = contextFamilies[ctx]
	}

	for _, p := range prefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
