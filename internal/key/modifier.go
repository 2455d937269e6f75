package key

import "strings"

// Modifier represents keyboard modifier keys as a bitmask.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModShift indicates the Shift key.
	ModShift

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModOS indicates the platform key (Cmd on macOS, Win on Windows).
	ModOS
)

// FromFlags builds a Modifier from four explicit flags.
func FromFlags(ctrl, shift, alt, os bool) Modifier {
	var m Modifier
	if ctrl {
		m |= ModCtrl
	}
	if shift {
		m |= ModShift
	}
	if alt {
		m |= ModAlt
	}
	if os {
		m |= ModOS
	}
	return m
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Flags returns the four explicit modifier flags.
func (m Modifier) Flags() (ctrl, shift, alt, os bool) {
	return m.Has(ModCtrl), m.Has(ModShift), m.Has(ModAlt), m.Has(ModOS)
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModOS) {
		parts = append(parts, "Cmd")
	}
	return strings.Join(parts, "+")
}

// modifierNames maps modifier names (lowercase) to Modifier values.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"os":      ModOS,
	"oskey":   ModOS,
	"cmd":     ModOS,
	"command": ModOS,
	"win":     ModOS,
	"super":   ModOS,
}

// ParseModifiers parses a modifier string like "Ctrl+Shift" or
// "ctrl-alt". Unrecognized names are ignored.
func ParseModifiers(s string) Modifier {
	s = strings.ToLower(s)

	var parts []string
	switch {
	case strings.Contains(s, "+"):
		parts = strings.Split(s, "+")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	default:
		parts = []string{s}
	}

	var result Modifier
	for _, part := range parts {
		if mod, ok := modifierNames[strings.TrimSpace(part)]; ok {
			result = result.With(mod)
		}
	}
	return result
}
