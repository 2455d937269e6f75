package scope

// Context identifies the application area a query resolves bindings for.
// Values mirror the scope tags used by binding configurations, except UV,
// which is a synthetic context sharing the image editor's tag.
type Context string

const (
	// View3D is the primary 3D viewport context.
	View3D Context = "VIEW_3D"

	// UV is UV editing. It has no scope tag of its own: UV groups are
	// tagged ImageEditor and distinguished by name.
	UV Context = "UV"

	// ImageEditor is image editing (non-UV).
	ImageEditor Context = "IMAGE_EDITOR"

	GraphEditor    Context = "GRAPH_EDITOR"
	DopeSheet      Context = "DOPESHEET_EDITOR"
	NLAEditor      Context = "NLA_EDITOR"
	SequenceEditor Context = "SEQUENCE_EDITOR"
	NodeEditor     Context = "NODE_EDITOR"
	Outliner       Context = "OUTLINER"
	TextEditor     Context = "TEXT_EDITOR"
	Properties     Context = "PROPERTIES"
	Console        Context = "CONSOLE"
	Preferences    Context = "PREFERENCES"
	ClipEditor     Context = "CLIP_EDITOR"
	FileBrowser    Context = "FILE_BROWSER"

	// Window is the system-wide window scope. It doubles as the default
	// tag for groups with no scope tag at all.
	Window Context = "EMPTY"

	// Screen is the system-wide screen scope.
	Screen Context = "SCREEN"
)

// Globals are the designated system-wide contexts.
var Globals = []Context{Window, Screen}

// IsGlobal reports whether c is a system-wide context.
func (c Context) IsGlobal() bool {
	return c == Window || c == Screen
}

// displayNames maps contexts to human-facing names.
var displayNames = map[Context]string{
	View3D:         "3D Viewport",
	UV:             "UV Editor",
	ImageEditor:    "Image",
	GraphEditor:    "Graph Editor",
	DopeSheet:      "Dope Sheet",
	NLAEditor:      "NLA Editor",
	SequenceEditor: "Video Sequence",
	NodeEditor:     "Node Editor",
	Outliner:       "Outliner",
	TextEditor:     "Text Editor",
	Properties:     "Properties",
	Console:        "Console",
	Preferences:    "Preferences",
	ClipEditor:     "Movie Clip",
	FileBrowser:    "File Browser",
	Window:         "Window",
	Screen:         "Screen",
}

// DisplayName returns the human-facing name for the context, falling
// back to the raw tag for unknown contexts.
func (c Context) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Editors lists every non-global context, in display order.
func Editors() []Context {
	return []Context{
		View3D, UV, ImageEditor, GraphEditor, DopeSheet, NLAEditor,
		SequenceEditor, NodeEditor, Outliner, TextEditor, Properties,
		Console, Preferences, ClipEditor, FileBrowser,
	}
}
