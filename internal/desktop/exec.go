package desktop

import (
	"strings"

	"github.com/google/shlex"
)

// NormalizeExec removes field codes (%f, %U, ...) from an Exec line.
// Tokens are split with shell quoting rules and joined with single spaces;
// a token that needs quoting to survive another split is re-quoted.
// If the line cannot be tokenized, everything before the first '%' is kept.
func NormalizeExec(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	tokens, err := shlex.Split(raw)
	if err != nil {
		before, _, _ := strings.Cut(raw, "%")
		return strings.TrimSpace(before)
	}

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "%") {
			continue
		}
		kept = append(kept, quote(tok))
	}
	return strings.Join(kept, " ")
}

// quote wraps tok so that shlex.Split returns it unchanged.
func quote(tok string) string {
	if tok == "" {
		return `''`
	}
	// '#' only starts a comment at the beginning of a word
	if !strings.ContainsAny(tok, " \t\n'\"\\") && !strings.HasPrefix(tok, "#") {
		return tok
	}
	if !strings.Contains(tok, "'") {
		return "'" + tok + "'"
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(tok) + `"`
}
