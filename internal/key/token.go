package key

// Token is a raw key-type token as stored in binding configurations.
type Token string

// NoToken is the zero token; an entry with no key token never matches.
const NoToken Token = ""

// arrowLabels are labels that map to directional arrow tokens.
var arrowLabels = map[string]Token{
	"UP":    "UP_ARROW",
	"DOWN":  "DOWN_ARROW",
	"LEFT":  "LEFT_ARROW",
	"RIGHT": "RIGHT_ARROW",
}

// specialLabels covers navigation and whitespace keys whose token differs
// from (or simply equals) the label. RETURN and ENTER both store as RET.
var specialLabels = map[string]Token{
	"TAB":        "TAB",
	"ESC":        "ESC",
	"SPACE":      "SPACE",
	"BACK_SPACE": "BACK_SPACE",
	"RETURN":     "RET",
	"ENTER":      "RET",
	"DELETE":     "DEL",
	"INSERT":     "INSERT",
	"HOME":       "HOME",
	"END":        "END",
	"PAGE_UP":    "PAGE_UP",
	"PAGE_DOWN":  "PAGE_DOWN",
}

// digitLabels maps main-row digits to spelled-out tokens so they never
// collide with NUMPAD_0..NUMPAD_9.
var digitLabels = map[string]Token{
	"0": "ZERO", "1": "ONE", "2": "TWO", "3": "THREE", "4": "FOUR",
	"5": "FIVE", "6": "SIX", "7": "SEVEN", "8": "EIGHT", "9": "NINE",
}

// punctLabels maps punctuation labels to their tokens. The grave key maps
// to two tokens because configurations are inconsistent about which one
// they store; matching accepts either.
var punctLabels = map[string][]Token{
	"`":  {"ACCENT_GRAVE", "GRAVE"},
	"-":  {"MINUS"},
	"=":  {"EQUAL"},
	"[":  {"LEFT_BRACKET"},
	"]":  {"RIGHT_BRACKET"},
	"\\": {"BACK_SLASH"},
	";":  {"SEMI_COLON"},
	"'":  {"QUOTE"},
	",":  {"COMMA"},
	".":  {"PERIOD"},
	"/":  {"SLASH"},
	"+":  {"PLUS"},
}

// Normalize maps a human-facing key label to the set of raw key-type
// tokens a binding configuration may store it under. The result is never
// empty: unknown labels pass through unchanged, which simply means they
// will not match anything.
func Normalize(label string) []Token {
	if isFunctionKey(label) {
		return []Token{Token(label)}
	}
	if tok, ok := arrowLabels[label]; ok {
		return []Token{tok}
	}
	if tok, ok := specialLabels[label]; ok {
		return []Token{tok}
	}
	if tok, ok := digitLabels[label]; ok {
		return []Token{tok}
	}
	if toks, ok := punctLabels[label]; ok {
		out := make([]Token, len(toks))
		copy(out, toks)
		return out
	}
	// Numpad labels arrive pre-qualified (NUMPAD_5, NUMPAD_ENTER, ...)
	// and pass through, as does anything unrecognized.
	return []Token{Token(label)}
}

// isFunctionKey reports whether label is an F-key label (F1..F19, etc.).
func isFunctionKey(label string) bool {
	if len(label) < 2 || label[0] != 'F' {
		return false
	}
	for i := 1; i < len(label); i++ {
		if label[i] < '0' || label[i] > '9' {
			return false
		}
	}
	return true
}
