package parse

import (
	"regexp"
	"strconv"
	"strings"

	"voicecal/internal/lexicon"
)

// recurMatch is a constructed recurrence rule plus the spans of every
// contributing phrase.
type recurMatch struct {
	rule string
	raws []string
}

// The fortnight/bimonthly compounds resolve directly to interval 2 with
// their frequency, overriding a weekday-derived one.
const (
	compoundFortnight = "שבועיים"
	compoundBimonthly = "חודשיים"
)

var (
	recurDayPat = regexp.MustCompile(
		`(בכל|כל)\s*יום\s*(` + strings.Join(lexicon.WeekdayNames(), "|") + `)`)
	recurEveryPat = regexp.MustCompile(
		`כל\s*(\d+|` + strings.Join(lexicon.CountWords, "|") + `|` + compoundFortnight + `|` + compoundBimonthly + `)?\s*(ימים|יום|שבועות|שבוע|חודשים|חודש|שנים|שנה)?`)
)

// extractRecurrence builds a recurrence rule from two independent sub-rules,
// both of which may contribute:
//
//  1. "every <weekday>" fixes FREQ=WEEKLY plus an explicit BYDAY code
//  2. a generic "every <count?> <unit?>" phrase resolves an interval and,
//     unless already fixed by rule 1, a frequency from the unit
//
// The rule string is FREQ=<freq>[;INTERVAL=<n>][;BYDAY=<code>], with
// INTERVAL omitted when it equals 1.
func extractRecurrence(text string) (recurMatch, bool) {
	interval := 1
	var freq, byday string
	var raws []string

	if m := recurDayPat.FindStringSubmatch(text); m != nil {
		freq = "WEEKLY"
		if d, ok := lexicon.WeekdayByName(m[2]); ok {
			byday = d.Code.String()
		}
		raws = append(raws, m[0])
	}

	if m := recurEveryPat.FindStringSubmatch(text); m != nil {
		rawNum, unit := m[1], m[2]
		switch rawNum {
		case compoundFortnight:
			interval, freq = 2, "WEEKLY"
		case compoundBimonthly:
			interval, freq = 2, "MONTHLY"
		case "":
		default:
			if n, ok := lexicon.Number(rawNum); ok {
				interval = n
			}
		}
		if freq == "" && unit != "" {
			freq = freqForUnit(unit)
		}
		// A bare "every" with neither count nor unit contributes nothing;
		// don't collect its span.
		if rawNum != "" || unit != "" {
			raws = append(raws, m[0])
		}
	}

	if freq == "" && byday == "" {
		return recurMatch{}, false
	}
	if freq == "" {
		freq = "WEEKLY"
	}

	rule := "FREQ=" + freq
	if interval != 1 {
		rule += ";INTERVAL=" + strconv.Itoa(interval)
	}
	if byday != "" {
		rule += ";BYDAY=" + byday
	}
	return recurMatch{rule: rule, raws: raws}, true
}

// freqForUnit maps a Hebrew repetition unit to an iCalendar frequency.
func freqForUnit(unit string) string {
	switch {
	case unit == "יום" || unit == "ימים":
		return "DAILY"
	case strings.HasPrefix(unit, "שבוע"):
		return "WEEKLY"
	case strings.HasPrefix(unit, "חודש"):
		return "MONTHLY"
	case strings.HasPrefix(unit, "שנ"):
		return "YEARLY"
	default:
		return ""
	}
}
