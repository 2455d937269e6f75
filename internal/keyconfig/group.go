package keyconfig

import (
	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/scope"
)

// Group is a named, ordered collection of binding entries tagged with a
// scope and a modal flag. Modal groups represent in-progress interaction
// modes (knife tool, transform, ...) rather than direct command triggers.
type Group struct {
	// Name is the group identifier, e.g. "Object Mode".
	Name string

	// Scope is the context tag. Empty means the generic Window scope.
	Scope scope.Context

	// Modal marks transient-mode groups.
	Modal bool

	// Entries are the bindings, in configuration order.
	Entries []Entry
}

// NewGroup creates a new binding group with the given name.
func NewGroup(name string) *Group {
	return &Group{
		Name:    name,
		Entries: make([]Entry, 0),
	}
}

// ForScope sets the scope tag for this group.
func (g *Group) ForScope(s scope.Context) *Group {
	g.Scope = s
	return g
}

// AsModal marks this group as a transient-mode group.
func (g *Group) AsModal() *Group {
	g.Modal = true
	return g
}

// Add appends an entry to this group.
func (g *Group) Add(e Entry) *Group {
	g.Entries = append(g.Entries, e)
	return g
}

// Bind appends an active press binding for token and command. Shorthand
// for the common case.
func (g *Group) Bind(token string, mods string, command string) *Group {
	return g.Add(Entry{
		Type:    key.Token(token),
		Mods:    key.ParseModifiers(mods),
		Command: command,
		Active:  true,
	})
}

// deactivate flips the first active entry matching sig to inactive.
// Returns false if no active entry matches.
func (g *Group) deactivate(sig RowSignature) bool {
	for i := range g.Entries {
		if !g.Entries[i].Active {
			continue
		}
		if g.Entries[i].RowSignature(g.Name) == sig {
			g.Entries[i].Active = false
			return true
		}
	}
	return false
}
