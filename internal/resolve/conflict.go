package resolve

import "github.com/dshills/keylens/internal/keyconfig"

// Conflicts separates the matches for one key into the five views a
// conflict report shows. Scopes are never mixed: editor rows and global
// rows stay apart, with the overlap subsets cross-referencing them.
type Conflicts struct {
	// Editor holds every match in the queried context.
	Editor []Row

	// Global holds every match in the system-wide scopes, compacted.
	Global []Row

	// Intra repeats the editor rows when two or more distinct bindings
	// compete inside the context, and is empty otherwise.
	Intra []Row

	// EditorOverlap is the subset of editor rows whose command identity
	// also appears globally.
	EditorOverlap []Row

	// GlobalOverlap is the subset of global rows whose command identity
	// also appears in the editor.
	GlobalOverlap []Row
}

// analyze builds the five conflict views from raw editor rows and raw
// global rows.
func analyze(editorRows, globalRows []Row) Conflicts {
	c := Conflicts{
		Editor: editorRows,
		Global: Compact(globalRows),
	}

	if len(c.Editor) > 1 {
		c.Intra = c.Editor
	}

	editorSigs := make(map[keyconfig.OverlapSignature]struct{}, len(c.Editor))
	for _, r := range c.Editor {
		editorSigs[r.Signature.Overlap()] = struct{}{}
	}
	globalSigs := make(map[keyconfig.OverlapSignature]struct{}, len(c.Global))
	for _, r := range c.Global {
		globalSigs[r.Signature.Overlap()] = struct{}{}
	}

	for _, r := range c.Editor {
		if _, ok := globalSigs[r.Signature.Overlap()]; ok {
			c.EditorOverlap = append(c.EditorOverlap, r)
		}
	}
	for _, r := range c.Global {
		if _, ok := editorSigs[r.Signature.Overlap()]; ok {
			c.GlobalOverlap = append(c.GlobalOverlap, r)
		}
	}
	return c
}
