// Package keyconfig models layered key binding configurations.
//
// A Store holds an ordered stack of configuration layers (defaults, user
// overrides, addon-contributed, active/effective, plus host extras). Each
// layer owns named binding groups; each group owns binding entries mapping
// a raw key token plus modifiers to a command.
//
// The package is read-mostly: the single permitted mutation is
// Store.Deactivate, which flips one entry's active flag.
//
// # Layer files
//
// Layers load from JSON, TOML or YAML files sharing one shape:
//
//	name = "user"
//
//	[[groups]]
//	name  = "Object Mode"
//	scope = "VIEW_3D"
//
//	[[groups.entries]]
//	key     = "RET"
//	command = "object.confirm"
//	ctrl    = true
//
// Missing entry fields fall back to defaults (value PRESS, key_modifier
// NONE, active true) rather than failing the file: one malformed entry
// must not make the whole configuration unusable.
package keyconfig
