package resolve

import (
	"strings"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/keyconfig"
	"github.com/dshills/keylens/internal/scope"
)

// defaultMode is assumed when the host does not report an interaction
// mode.
const defaultMode = "OBJECT"

// Options tune a resolution query.
type Options struct {
	// IncludeGlobal merges system-wide bindings into resolved views and
	// enables the global section.
	IncludeGlobal bool

	// HideModal skips transient-mode groups entirely.
	HideModal bool

	// Mode is the host interaction mode used for family filtering of
	// global rows. Empty means defaultMode.
	Mode string
}

func (o Options) mode() string {
	if o.Mode == "" {
		return defaultMode
	}
	return o.Mode
}

// Resolver answers binding queries against a layer store, memoizing
// per-key usage in a fingerprint-guarded cache.
type Resolver struct {
	store *keyconfig.Store
	cache *Cache
}

// New creates a resolver over the given store.
func New(store *keyconfig.Store) *Resolver {
	return &Resolver{store: store, cache: NewCache()}
}

// Cache exposes the resolver's usage cache, mainly for stats.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Matches returns the raw deduplicated rows for label in ctx, without
// trigger filtering or compaction.
func (r *Resolver) Matches(label string, ctx scope.Context, mods key.Modifier, opts Options) []Row {
	m := newMatcher(label, mods, r.store.DisabledSignatures())
	rs := newRowSet()

	for _, layer := range r.store.Layers() {
		for _, g := range layer.Groups {
			if opts.HideModal && g.Modal {
				continue
			}
			if !scope.Relevant(g.Name, g.Scope, ctx) {
				continue
			}
			for _, e := range g.Entries {
				if !m.matches(g.Name, e) {
					continue
				}
				if ctx == scope.UV && !uvEntry(e) {
					continue
				}
				rs.add(layer.Name, g, e)
			}
		}
	}
	return rs.finish()
}

// GlobalMatches returns the raw deduplicated rows for label across the
// system-wide scopes.
func (r *Resolver) GlobalMatches(label string, mods key.Modifier, opts Options) []Row {
	m := newMatcher(label, mods, r.store.DisabledSignatures())
	rs := newRowSet()

	for _, layer := range r.store.Layers() {
		for _, g := range layer.Groups {
			if opts.HideModal && g.Modal {
				continue
			}
			tag := g.Scope
			if tag == "" {
				tag = scope.Window
			}
			if !tag.IsGlobal() {
				continue
			}
			for _, e := range g.Entries {
				if m.matches(g.Name, e) {
					rs.add(layer.Name, g, e)
				}
			}
		}
	}
	return rs.finish()
}

// Resolve returns the press-trigger bindings assigned to label in ctx,
// compacted by command identity. With IncludeGlobal set, family-relevant
// global bindings are merged in.
func (r *Resolver) Resolve(label string, ctx scope.Context, mods key.Modifier, opts Options) []Row {
	rows := Compact(OnlyPress(r.Matches(label, ctx, mods, opts)))
	if !opts.IncludeGlobal {
		return rows
	}

	global := Compact(OnlyPress(r.GlobalMatches(label, mods, opts)))
	for _, row := range global {
		if scope.GlobalCommandAllowed(row.Signature.Command, ctx, opts.mode()) {
			rows = append(rows, row)
		}
	}
	return Compact(rows)
}

// GlobalSection returns the press-trigger global bindings for label,
// unfiltered by context family. Empty unless IncludeGlobal is set.
func (r *Resolver) GlobalSection(label string, mods key.Modifier, opts Options) []Row {
	if !opts.IncludeGlobal {
		return nil
	}
	return Compact(OnlyPress(r.GlobalMatches(label, mods, opts)))
}

// Conflicts builds the five-view conflict report for label in ctx.
func (r *Resolver) Conflicts(label string, ctx scope.Context, mods key.Modifier, opts Options) Conflicts {
	return analyze(
		r.Matches(label, ctx, mods, opts),
		r.GlobalMatches(label, mods, opts),
	)
}

// IsHighlighted reports whether label has any visible binding in ctx:
// either an assigned row or, with IncludeGlobal set, a global-section
// row. Answers come from the cache when the configuration fingerprint
// is unchanged.
func (r *Resolver) IsHighlighted(label string, ctx scope.Context, mods key.Modifier, opts Options) bool {
	r.cache.Validate(r.store.Fingerprint())

	k := QueryKey{
		Context:       ctx,
		Mods:          mods,
		IncludeGlobal: opts.IncludeGlobal,
		HideModal:     opts.HideModal,
		Mode:          opts.mode(),
	}
	if used, ok := r.cache.Lookup(k, label); ok {
		return used
	}

	used := len(r.Resolve(label, ctx, mods, opts)) > 0
	if !used && opts.IncludeGlobal {
		used = len(r.GlobalSection(label, mods, opts)) > 0
	}
	r.cache.Store(k, label, used)
	return used
}

// Invalidate drops every cached answer. Hook this to external
// configuration change notifications.
func (r *Resolver) Invalidate() {
	r.cache.Clear()
}

// Deactivate disables the binding identified by sig in the named layer
// and invalidates the cache. On error no state changes.
func (r *Resolver) Deactivate(layerName string, sig keyconfig.RowSignature) error {
	if err := r.store.Deactivate(layerName, sig); err != nil {
		return err
	}
	r.cache.Clear()
	return nil
}

// uvEntry reports whether an entry plausibly belongs to UV editing. The
// UV context shares the image editor's groups, so only UV commands
// count.
func uvEntry(e keyconfig.Entry) bool {
	id := strings.ToLower(e.Command)
	name := strings.ToLower(e.Name)
	return strings.Contains(id, "uv.") ||
		strings.HasPrefix(name, "uv ") ||
		strings.Contains(name, " uv ")
}
