package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"voicecal/internal/lexicon"
)

// dateMatch is a resolved date expression plus the span it was matched from.
type dateMatch struct {
	date time.Time
	raw  string
}

var (
	todayPat    = regexp.MustCompile(`היום`)
	tomorrowPat = regexp.MustCompile(`מחרתיים|מחר בבוקר|מחר בערב|מחר`)
	weekdayPat  = regexp.MustCompile(`(ביום\s+)?(` + strings.Join(lexicon.WeekdayNames(), "|") + `)(\s+הבא)?`)
	// Unit alternations are ordered longest-first so plural forms are not
	// shadowed by their singular prefix.
	inPat = regexp.MustCompile(`בעוד\s+(\d+|` + strings.Join(lexicon.CountWords, "|") + `)\s*(ימים|יום|שבועות|שבוע|חודשים|חודש|שנים|שנה)`)
	slashPat    = regexp.MustCompile(`(\d{1,2})[/.](\d{1,2})(?:[/.](\d{2,4}))?`)
	monthPat    = regexp.MustCompile(`(\d{1,2})?\s*(` + strings.Join(lexicon.MonthNames(), "|") + `)(?:\s*(\d{4}))?`)
)

// extractDate finds an absolute or relative date expression. Rules are tried
// in a fixed priority order, first match wins:
//
//  1. "today"
//  2. "tomorrow" variants / "day after tomorrow"
//  3. weekday name, optionally "next" qualified
//  4. "in N <days|weeks|months|years>"
//  5. D/M[/Y] (slash or dot separated)
//  6. month name with optional day and year
func extractDate(text string, now time.Time) (dateMatch, bool) {
	if raw := todayPat.FindString(text); raw != "" {
		return dateMatch{date: now, raw: raw}, true
	}

	if raw := tomorrowPat.FindString(text); raw != "" {
		days := 1
		if strings.Contains(raw, "מחרתיים") {
			days = 2
		}
		return dateMatch{date: now.AddDate(0, 0, days), raw: raw}, true
	}

	if m := weekdayPat.FindStringSubmatch(text); m != nil {
		if d, ok := lexicon.WeekdayByName(m[2]); ok {
			base := now
			if m[3] != "" {
				// "next" skips the immediately upcoming occurrence.
				base = base.AddDate(0, 0, 7)
			}
			return dateMatch{date: nextWeekday(d.Day, base), raw: m[0]}, true
		}
	}

	if m := inPat.FindStringSubmatch(text); m != nil {
		if n, ok := lexicon.Number(m[1]); ok {
			return dateMatch{date: shiftByUnit(now, n, m[2]), raw: m[0]}, true
		}
	}

	if m := slashPat.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			y, _ := strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				y += 2000
			}
			year = y
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		return dateMatch{date: d, raw: m[0]}, true
	}

	if m := monthPat.FindStringSubmatch(text); m != nil {
		if month, ok := lexicon.MonthByName(m[2]); ok {
			day := now.Day()
			if m[1] != "" {
				day, _ = strconv.Atoi(m[1])
			}
			year := now.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
			d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
			return dateMatch{date: d, raw: m[0]}, true
		}
	}

	return dateMatch{}, false
}

// nextWeekday returns the next future occurrence of target strictly after
// from: when from already falls on target, it advances a full week.
func nextWeekday(target time.Weekday, from time.Time) time.Time {
	diff := int(target) - int(from.Weekday())
	if diff <= 0 {
		diff += 7
	}
	return from.AddDate(0, 0, diff)
}

// shiftByUnit moves t forward n units, where unit is a Hebrew day/week/
// month/year word.
func shiftByUnit(t time.Time, n int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "שבוע"):
		return t.AddDate(0, 0, 7*n)
	case strings.HasPrefix(unit, "חודש"):
		return t.AddDate(0, n, 0)
	case strings.HasPrefix(unit, "שנ"):
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}
