package scope

// Rule declares how one context decides whether a binding group is
// relevant to it. Evaluation order in Relevant: RequireToken (tag AND
// name token), deny tokens, tag equality, then Keywords.
type Rule struct {
	// Tag is the scope tag that counts as a direct match.
	Tag Context

	// RequireToken, when set, makes relevance require both the Tag match
	// and this token appearing in the group name. Used by contexts that
	// share a tag with a more general context.
	RequireToken string

	// Keywords match by group name regardless of tag. Used by the
	// system-wide contexts, whose groups are scattered across several
	// literal tags.
	Keywords []string
}

// globalKeywords are name fragments marking system-wide binding groups.
var globalKeywords = []string{"window", "screen", "global", "user interface", "view2d"}

// rules is the per-context classification table. Contexts not listed
// fall back to plain tag equality.
var rules = map[Context]Rule{
	UV:     {Tag: ImageEditor, RequireToken: "uv"},
	Window: {Tag: Window, Keywords: globalKeywords},
	Screen: {Tag: Screen, Keywords: globalKeywords},
}

// ruleFor returns the classification rule for a context.
func ruleFor(c Context) Rule {
	if r, ok := rules[c]; ok {
		return r
	}
	return Rule{Tag: c}
}
