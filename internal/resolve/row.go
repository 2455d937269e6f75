package resolve

import (
	"sort"
	"strings"

	"github.com/dshills/keylens/internal/keyconfig"
	"github.com/dshills/keylens/internal/scope"
)

// Row is one resolved binding: a display label, the deduplication
// signature it was merged under, and the names of every layer that
// contributes it.
type Row struct {
	Label     string
	Signature keyconfig.RowSignature
	Layers    []string
}

// rowSet accumulates matches during a layer walk, merging entries that
// share a row signature and preserving first-seen order.
type rowSet struct {
	order []keyconfig.RowSignature
	rows  map[keyconfig.RowSignature]*Row
	src   map[keyconfig.RowSignature]srcEntry
}

// srcEntry remembers the first group/entry seen for a signature so the
// label can be formatted once the layer list is final.
type srcEntry struct {
	group *keyconfig.Group
	entry keyconfig.Entry
}

func newRowSet() *rowSet {
	return &rowSet{
		rows: make(map[keyconfig.RowSignature]*Row),
		src:  make(map[keyconfig.RowSignature]srcEntry),
	}
}

// add records a match from the named layer.
func (rs *rowSet) add(layer string, g *keyconfig.Group, e keyconfig.Entry) {
	sig := e.RowSignature(g.Name)
	row, ok := rs.rows[sig]
	if !ok {
		rs.order = append(rs.order, sig)
		rs.rows[sig] = &Row{Signature: sig, Layers: []string{layer}}
		rs.src[sig] = srcEntry{group: g, entry: e}
		return
	}
	for _, name := range row.Layers {
		if name == layer {
			return
		}
	}
	row.Layers = append(row.Layers, layer)
}

// finish sorts layer provenance, formats labels, and returns the rows
// in first-seen order.
func (rs *rowSet) finish() []Row {
	out := make([]Row, 0, len(rs.order))
	for _, sig := range rs.order {
		row := rs.rows[sig]
		sort.Strings(row.Layers)
		s := rs.src[sig]
		row.Label = formatLabel(row.Layers, s.group, s.entry)
		out = append(out, *row)
	}
	return out
}

// Compact merges rows that share an overlap signature (command, trigger,
// key modifier), keeping the first row's label and signature and taking
// the union of layer provenance. Order follows the first occurrence.
func Compact(rows []Row) []Row {
	merged := make(map[keyconfig.OverlapSignature]int)
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		k := r.Signature.Overlap()
		i, ok := merged[k]
		if !ok {
			merged[k] = len(out)
			r.Layers = append([]string(nil), r.Layers...)
			out = append(out, r)
			continue
		}
		out[i].Layers = unionSorted(out[i].Layers, r.Layers)
	}
	return out
}

// OnlyPress filters rows to press-trigger bindings.
func OnlyPress(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Signature.Value == keyconfig.ValuePress {
			out = append(out, r)
		}
	}
	return out
}

func unionSorted(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	for _, s := range b {
		seen[s] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// formatLabel renders a row as "layers: Scope > command (Name)" with a
// bracketed suffix for any-modifier, non-press trigger, and key-modifier
// details. Modal entries without a command render their event name.
func formatLabel(layers []string, g *keyconfig.Group, e keyconfig.Entry) string {
	var b strings.Builder
	b.WriteString(strings.Join(layers, ", "))
	b.WriteString(": ")
	b.WriteString(groupDisplay(g))
	b.WriteString(" > ")

	command := strings.TrimSpace(e.Command)
	display := strings.TrimSpace(e.Name)

	if g.Modal && command == "" {
		event := display
		if event == "" {
			event = string(e.Type)
		}
		if event == "" {
			event = "Modal Event"
		}
		b.WriteString(titleWords(event))
	} else {
		switch {
		case command != "":
			b.WriteString(command)
		case display != "":
			b.WriteString(display)
		default:
			b.WriteString("(Unknown)")
		}
		if display != "" && display != command {
			b.WriteString(" (")
			b.WriteString(display)
			b.WriteString(")")
		}
	}

	var extras []string
	if e.Any {
		extras = append(extras, "any-mod")
	}
	if e.Value != "" && e.Value != keyconfig.ValuePress {
		extras = append(extras, "value:"+string(e.Value))
	}
	if km := e.KeyModifier; km != "" && km != keyconfig.NoKeyModifier && km != "UNKNOWN" {
		extras = append(extras, "key_mod:"+string(km))
	}
	if len(extras) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(extras, ", "))
		b.WriteString("]")
	}
	return b.String()
}

// groupDisplay picks the scope's display name when the tag is known,
// otherwise the group name, otherwise the raw tag.
func groupDisplay(g *keyconfig.Group) string {
	tag := g.Scope
	if tag == "" {
		tag = scope.Window
	}
	if name := tag.DisplayName(); name != string(tag) {
		return name
	}
	if g.Name != "" {
		return g.Name
	}
	return string(tag)
}

// titleWords converts an event identifier like "ADD_CUT" to "Add Cut".
func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
