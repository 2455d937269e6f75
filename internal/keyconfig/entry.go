package keyconfig

import "github.com/dshills/keylens/internal/key"

// TriggerValue is the event kind that fires a binding.
type TriggerValue string

const (
	// ValuePress is the primary trigger and the default for entries that
	// omit a value.
	ValuePress TriggerValue = "PRESS"

	ValueRelease     TriggerValue = "RELEASE"
	ValueClick       TriggerValue = "CLICK"
	ValueDoubleClick TriggerValue = "DOUBLE_CLICK"
	ValueClickDrag   TriggerValue = "CLICK_DRAG"
	ValueAny         TriggerValue = "ANY"
)

// NoKeyModifier is the default key-modifier for entries without a
// secondary chord key.
const NoKeyModifier key.Token = "NONE"

// Entry is one key+modifier to command mapping.
type Entry struct {
	// Type is the raw key token the entry is bound to.
	Type key.Token

	// Mods are the exact modifier flags required to fire. Ignored when
	// Any is set.
	Mods key.Modifier

	// Any makes the entry match regardless of explicit modifier state.
	// Such entries are surfaced only on zero-modifier queries so they do
	// not shadow every specific combination.
	Any bool

	// Value is the trigger kind. Empty means ValuePress.
	Value TriggerValue

	// KeyModifier is an optional secondary chord key. Empty means
	// NoKeyModifier.
	KeyModifier key.Token

	// Command is the command identifier the entry invokes.
	Command string

	// Name is an optional human display name for the command.
	Name string

	// Active reports whether the entry is enabled.
	Active bool
}

// value returns the trigger value with the missing-field default applied.
func (e Entry) value() TriggerValue {
	if e.Value == "" {
		return ValuePress
	}
	return e.Value
}

// keyModifier returns the key-modifier with the missing-field default
// applied.
func (e Entry) keyModifier() key.Token {
	if e.KeyModifier == "" {
		return NoKeyModifier
	}
	return e.KeyModifier
}

// FullSignature identifies the exact binding, modifiers included. It keys
// the disabled-binding suppression set: suppressing by command id alone
// would knock out every variant of a command, not just the disabled one.
type FullSignature struct {
	Group       string
	Command     string
	Type        key.Token
	Mods        key.Modifier
	Any         bool
	Value       TriggerValue
	KeyModifier key.Token
}

// FullSignature returns the entry's exact binding identity within the
// named group.
func (e Entry) FullSignature(group string) FullSignature {
	return FullSignature{
		Group:       group,
		Command:     e.Command,
		Type:        e.Type,
		Mods:        e.Mods,
		Any:         e.Any,
		Value:       e.value(),
		KeyModifier: e.keyModifier(),
	}
}

// RowSignature is the deduplication identity: the same logical binding
// repeated across layers shares a RowSignature and merges into one row.
// It deliberately excludes the contributing layer.
type RowSignature struct {
	Group       string
	Command     string
	Name        string
	Value       TriggerValue
	KeyModifier key.Token
}

// RowSignature returns the entry's deduplication identity within the
// named group.
func (e Entry) RowSignature(group string) RowSignature {
	return RowSignature{
		Group:       group,
		Command:     e.Command,
		Name:        e.Name,
		Value:       e.value(),
		KeyModifier: e.keyModifier(),
	}
}

// OverlapSignature is the reduced identity used for cross-context overlap
// detection and presentation compaction.
type OverlapSignature struct {
	Command     string
	Value       TriggerValue
	KeyModifier key.Token
}

// Overlap reduces the row signature to its overlap identity.
func (s RowSignature) Overlap() OverlapSignature {
	return OverlapSignature{
		Command:     s.Command,
		Value:       s.Value,
		KeyModifier: s.KeyModifier,
	}
}
