// Package key provides key tokens and modifier handling for keylens.
//
// Binding configurations store raw key-type tokens ("RET", "NUMPAD_5",
// "ACCENT_GRAVE") while callers speak in human-facing key labels
// ("RETURN", "`"). Normalize bridges the two: it maps a label to every
// token the configuration might store it under.
//
// Modifiers are a bitmask of Ctrl, Shift, Alt and the platform OS key
// (Cmd on macOS, Win elsewhere).
package key
