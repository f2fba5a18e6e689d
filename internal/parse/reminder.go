package parse

import (
	"regexp"
	"strings"

	"voicecal/internal/lexicon"
)

// reminderPat matches one "remind me <count> <unit> before" phrase. The
// trigger words cover "remind me", "reminder", "and again" and "and also" so
// several lead times can be chained in one utterance.
var reminderPat = regexp.MustCompile(
	`(להזכיר\s?לי|תזכורת|ושוב|ועוד)\s*(\d+|` + strings.Join(lexicon.CountWords, "|") + `)\s*(דקות|דקה|שעות|שעה|יום|ימים)\s*לפני`)

// extractReminders finds every non-overlapping reminder phrase and returns
// the lead times normalized to minutes, in input order, together with all
// matched spans. Counts that fail to resolve are dropped from the result
// list but their spans are still collected for stripping.
func extractReminders(text string) ([]int, []string) {
	var minutes []int
	var raws []string

	for _, m := range reminderPat.FindAllStringSubmatch(text, -1) {
		raws = append(raws, m[0])
		n, ok := lexicon.Number(m[2])
		if !ok {
			continue
		}
		minutes = append(minutes, n*unitMinutes(m[3]))
	}
	return minutes, raws
}

// unitMinutes maps a Hebrew time-unit word to its minute multiplier.
func unitMinutes(unit string) int {
	switch {
	case strings.HasPrefix(unit, "שע"):
		return 60
	case unit == "יום" || unit == "ימים":
		return 24 * 60
	default:
		return 1
	}
}
