package resolve

import (
	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/keyconfig"
)

// matcher holds the per-query state shared by every entry test: the
// normalized token set for the queried label, the queried modifier
// state, and the disabled-binding suppression set.
type matcher struct {
	tokens   map[key.Token]struct{}
	mods     key.Modifier
	disabled map[keyconfig.FullSignature]struct{}
}

func newMatcher(label string, mods key.Modifier, disabled map[keyconfig.FullSignature]struct{}) matcher {
	tokens := make(map[key.Token]struct{})
	for _, t := range key.Normalize(label) {
		tokens[t] = struct{}{}
	}
	return matcher{tokens: tokens, mods: mods, disabled: disabled}
}

// matches reports whether an entry in the named group fires for the
// query. Inactive entries never match. Any-modifier entries match only
// the zero-modifier query so they do not shadow every combination;
// otherwise the modifier state must be exactly equal.
func (m matcher) matches(group string, e keyconfig.Entry) bool {
	if !e.Active {
		return false
	}
	if _, ok := m.tokens[e.Type]; !ok {
		return false
	}
	if e.Any {
		if !m.mods.IsEmpty() {
			return false
		}
	} else if e.Mods != m.mods {
		return false
	}
	if _, ok := m.disabled[e.FullSignature(group)]; ok {
		return false
	}
	return true
}
