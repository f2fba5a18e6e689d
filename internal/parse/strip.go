package parse

import (
	"regexp"
	"strings"
)

// stopPhrases are removed from the residue in addition to the extractor
// spans; they cover trigger words whose full phrase was not always captured.
var stopPhrases = []string{
	"להזכיר לי", "תזכורת", "כל שבוע", "כל שבועיים", "כל חודש", "כל יום", "כל שנה",
}

var punctOnlyToken = regexp.MustCompile(`^[,.;:!?-]+$`)

// stripContent removes every fragment (each treated as a literal string,
// removed globally) plus the fixed stop-phrase list from text, then collapses
// whitespace, drops separator tokens left dangling by the removals and trims.
// The result is idempotent: running it again over its own output with no
// fragments returns the same string.
func stripContent(text string, fragments []string) string {
	t := text
	for _, f := range fragments {
		if f == "" {
			continue
		}
		t = strings.ReplaceAll(t, f, "")
	}
	for _, p := range stopPhrases {
		t = strings.ReplaceAll(t, p, "")
	}

	kept := make([]string, 0, 8)
	for _, tok := range strings.Fields(t) {
		if punctOnlyToken.MatchString(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
