package keyconfig

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for the deactivate mutation.
var (
	// ErrLayerNotFound is returned when no layer matches the given name.
	ErrLayerNotFound = errors.New("keyconfig: layer not found")

	// ErrGroupNotFound is returned when the layer has no matching group.
	ErrGroupNotFound = errors.New("keyconfig: group not found")

	// ErrBindingNotFound is returned when no live entry matches the
	// signature.
	ErrBindingNotFound = errors.New("keyconfig: binding not found")
)

// Store is the engine's view of the host's layered key configuration.
//
// The preferred slots (defaults, user, addon, active) may alias the same
// underlying layer; Layers deduplicates by layer identity so each real
// layer is walked exactly once. A slot may legitimately be nil depending
// on host state — that is not an error, the slot is simply skipped.
type Store struct {
	mu sync.RWMutex

	defaults *Layer
	user     *Layer
	addon    *Layer
	active   *Layer
	extras   []*Layer
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// SetDefaults installs the built-in defaults layer.
func (s *Store) SetDefaults(l *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = l
}

// SetUser installs the user overrides layer.
func (s *Store) SetUser(l *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = l
}

// SetAddon installs the extension-contributed layer.
func (s *Store) SetAddon(l *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addon = l
}

// SetActive installs the effective/merged layer.
func (s *Store) SetActive(l *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = l
}

// AddExtra appends an additional host-exposed layer. Extras are walked
// after the preferred slots, in discovery order.
func (s *Store) AddExtra(l *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extras = append(s.extras, l)
}

// Layers returns the layer stack in walk order: defaults, user, addon,
// active, then extras. Nil slots are skipped and aliased layers appear
// once, at their first position.
func (s *Store) Layers() []*Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layersLocked()
}

// DisabledSignatures collects the full signatures of every inactive entry
// in the user and active layers. Entries matching one of these signatures
// are suppressed everywhere: a binding disabled in the user layer must
// not leak back in via the addon layer. Keying by the full signature, not
// the command id, keeps the suppression exact.
func (s *Store) DisabledSignatures() map[FullSignature]struct{} {
	s.mu.RLock()
	layers := []*Layer{s.user, s.active}
	s.mu.RUnlock()

	disabled := make(map[FullSignature]struct{})
	for _, l := range layers {
		if l == nil {
			continue
		}
		for _, g := range l.Groups {
			for _, e := range g.Entries {
				if !e.Active {
					disabled[e.FullSignature(g.Name)] = struct{}{}
				}
			}
		}
	}
	return disabled
}

// Deactivate flips the active flag of the entry identified by sig inside
// the named layer and group. It is the store's only mutation. On failure
// nothing changes and the error reports what was missing.
func (s *Store) Deactivate(layerName string, sig RowSignature) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *Layer
	for _, l := range s.layersLocked() {
		if l.Name == layerName {
			target = l
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: %q", ErrLayerNotFound, layerName)
	}

	g := target.Group(sig.Group)
	if g == nil {
		return fmt.Errorf("%w: %q in layer %q", ErrGroupNotFound, sig.Group, layerName)
	}

	if !g.deactivate(sig) {
		return fmt.Errorf("%w: %s in group %q", ErrBindingNotFound, sig.Command, sig.Group)
	}
	return nil
}

// layersLocked is Layers without locking. Caller must hold the lock.
func (s *Store) layersLocked() []*Layer {
	ordered := []*Layer{s.defaults, s.user, s.addon, s.active}
	ordered = append(ordered, s.extras...)

	seen := make(map[string]bool, len(ordered))
	out := make([]*Layer, 0, len(ordered))
	for _, l := range ordered {
		if l == nil || seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		out = append(out, l)
	}
	return out
}
