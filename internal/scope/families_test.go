package scope

import "testing"

func TestGlobalCommandAllowed(t *testing.T) {
	tests := []struct {
		name    string
		command string
		ctx     Context
		mode    string
		want    bool
	}{
		{"object in 3d object mode", "object.delete", View3D, "OBJECT", true},
		{"node denied in 3d", "node.add_node", View3D, "OBJECT", false},
		{"mesh in edit mode", "mesh.select_all", View3D, "EDIT_MESH", true},
		{"object denied in edit mode", "object.delete", View3D, "EDIT_MESH", false},
		{"sculpt in sculpt mode", "sculpt.brush_stroke", View3D, "SCULPT", true},
		{"fallback for unknown mode", "view3d.view_axis", View3D, "WEIRD", true},
		{"uv context", "uv.select_all", UV, "OBJECT", true},
		{"image in uv context", "image.view_zoom", UV, "OBJECT", true},
		{"node editor", "node.add_node", NodeEditor, "OBJECT", true},
		{"unlisted context denies", "text.run", Console, "OBJECT", false},
		{"pie menu always allowed", "wm.pme_user_pie_menu_call", Console, "OBJECT", true},
		{"case insensitive", "Object.Delete", View3D, "OBJECT", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GlobalCommandAllowed(tt.command, tt.ctx, tt.mode)
			if got != tt.want {
				t.Errorf("GlobalCommandAllowed(%q, %q, %q) = %v, want %v",
					tt.command, tt.ctx, tt.mode, got, tt.want)
			}
		})
	}
}
