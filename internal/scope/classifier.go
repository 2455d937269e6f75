package scope

import "strings"

// Relevant reports whether a binding group with the given name and scope
// tag belongs to the requested context.
//
// Rules, first match wins:
//  1. Contexts with a RequireToken rule (UV) accept only groups carrying
//     the rule's tag whose name contains the token.
//  2. UV-named groups never leak into any other context.
//  3. Exact scope-tag equality.
//  4. System-wide contexts additionally accept groups whose name contains
//     a global keyword, since their groups span several literal tags.
//
// An empty tag is treated as the Window tag, matching how configurations
// omit the tag on generic groups.
func Relevant(name string, tag Context, requested Context) bool {
	if tag == "" {
		tag = Window
	}
	rule := ruleFor(requested)
	lower := strings.ToLower(name)

	if rule.RequireToken != "" {
		return tag == rule.Tag && strings.Contains(lower, rule.RequireToken)
	}

	if strings.Contains(lower, "uv") {
		return false
	}

	if tag == rule.Tag {
		return true
	}

	for _, kw := range rule.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
