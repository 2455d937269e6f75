package keyconfig

import (
	"hash/fnv"
	"io"
)

// LayerStamp is one layer's contribution to a Fingerprint.
type LayerStamp struct {
	Name    string
	Entries int
	Hash    uint64
}

// Fingerprint is a structural signature of the layer stack, used only to
// detect that something changed. Any difference triggers full cache
// invalidation; nothing inspects what changed.
//
// The hash covers every field that affects matching, so swapping one
// binding for another of equal count is still detected — an entry count
// alone would miss it.
type Fingerprint []LayerStamp

// Equal reports whether two fingerprints are identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// Fingerprint computes the current structural signature of the store.
// Cost is one pass over every entry, cheap next to a full resolution.
func (s *Store) Fingerprint() Fingerprint {
	layers := s.Layers()

	fp := make(Fingerprint, 0, len(layers))
	for _, l := range layers {
		h := fnv.New64a()
		for _, g := range l.Groups {
			writeString(h, g.Name)
			writeString(h, string(g.Scope))
			writeBool(h, g.Modal)
			for _, e := range g.Entries {
				writeString(h, string(e.Type))
				h.Write([]byte{byte(e.Mods)})
				writeBool(h, e.Any)
				writeString(h, string(e.value()))
				writeString(h, string(e.keyModifier()))
				writeString(h, e.Command)
				writeString(h, e.Name)
				writeBool(h, e.Active)
			}
		}
		fp = append(fp, LayerStamp{
			Name:    l.Name,
			Entries: l.EntryCount(),
			Hash:    h.Sum64(),
		})
	}
	return fp
}

// writeString writes a length-prefixed string to the hash so adjacent
// fields cannot alias.
func writeString(h io.Writer, s string) {
	n := len(s)
	h.Write([]byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)})
	io.WriteString(h, s)
}

func writeBool(h io.Writer, b bool) {
	if b {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}
