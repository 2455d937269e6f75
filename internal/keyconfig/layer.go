package keyconfig

import "github.com/google/uuid"

// Source indicates where a configuration layer came from. Sources also
// define the preferred walk order: defaults first, active last.
type Source uint8

const (
	// SourceDefaults is the built-in default configuration.
	SourceDefaults Source = iota
	// SourceUser is the user override configuration.
	SourceUser
	// SourceAddon is extension-contributed configuration.
	SourceAddon
	// SourceActive is the effective/merged configuration.
	SourceActive
	// SourceExtra is any additional layer exposed by the host.
	SourceExtra
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefaults:
		return "defaults"
	case SourceUser:
		return "user"
	case SourceAddon:
		return "addon"
	case SourceActive:
		return "active"
	case SourceExtra:
		return "extra"
	default:
		return "unknown"
	}
}

// Layer is one ordered, named source of binding groups.
type Layer struct {
	// Name identifies the layer to users ("Blender", "Industry Standard").
	Name string

	// Source is the layer's slot in the stack.
	Source Source

	// Groups are the binding groups, in configuration order.
	Groups []*Group

	// id is the stable identity used by the layer walker. Two references
	// to the same Layer share an id even when the host exposes the layer
	// under several slots; two layers with identical content do not.
	id string
}

// NewLayer creates a new, empty configuration layer.
func NewLayer(name string, source Source) *Layer {
	return &Layer{
		Name:   name,
		Source: source,
		Groups: make([]*Group, 0),
		id:     uuid.NewString(),
	}
}

// ID returns the layer's stable identity.
func (l *Layer) ID() string {
	return l.id
}

// Add appends a group to the layer.
func (l *Layer) Add(g *Group) *Layer {
	l.Groups = append(l.Groups, g)
	return l
}

// Group returns the first group with the given name, or nil.
func (l *Layer) Group(name string) *Group {
	for _, g := range l.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// EntryCount returns the total number of entries across all groups.
func (l *Layer) EntryCount() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Entries)
	}
	return n
}
