// Package lexicon holds the static Hebrew tables shared by the extractors:
// weekday names, month names and number words. Keeping them here avoids
// repeating the same word lists inside every pattern.
package lexicon

import (
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Weekday couples a Hebrew weekday name with its Go weekday index and its
// iCalendar BYDAY code.
type Weekday struct {
	Name string
	Day  time.Weekday
	Code rrule.Weekday
}

// Weekdays is ordered Sunday..Saturday. The slice order is also the
// alternation order used when day names are compiled into patterns.
var Weekdays = []Weekday{
	{Name: "ראשון", Day: time.Sunday, Code: rrule.SU},
	{Name: "שני", Day: time.Monday, Code: rrule.MO},
	{Name: "שלישי", Day: time.Tuesday, Code: rrule.TU},
	{Name: "רביעי", Day: time.Wednesday, Code: rrule.WE},
	{Name: "חמישי", Day: time.Thursday, Code: rrule.TH},
	{Name: "שישי", Day: time.Friday, Code: rrule.FR},
	{Name: "שבת", Day: time.Saturday, Code: rrule.SA},
}

// WeekdayByName looks up a weekday by its Hebrew name.
func WeekdayByName(name string) (Weekday, bool) {
	for _, d := range Weekdays {
		if d.Name == name {
			return d, true
		}
	}
	return Weekday{}, false
}

// WeekdayNames returns the day names in alternation order.
func WeekdayNames() []string {
	names := make([]string, len(Weekdays))
	for i, d := range Weekdays {
		names[i] = d.Name
	}
	return names
}

// monthNames is ordered January..December.
var monthNames = []string{
	"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
	"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
}

// MonthByName looks up a Gregorian month by its Hebrew name.
func MonthByName(name string) (time.Month, bool) {
	for i, n := range monthNames {
		if n == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// MonthNames returns the month names in calendar order.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames)
	return out
}

// numberWords maps Hebrew number words (cardinal and the spoken ordinal
// variants) to their values. Multi-word eleven/twelve forms are included
// because dictated text frequently contains them.
var numberWords = map[string]int{
	"אחת": 1, "אחד": 1,
	"שתיים": 2, "שניים": 2, "שני": 2,
	"שלוש": 3, "שלושה": 3, "שלישי": 3,
	"ארבע": 4, "ארבעה": 4, "רביעי": 4,
	"חמש": 5, "חמישה": 5, "חמישי": 5,
	"שש": 6, "שישה": 6, "שישי": 6,
	"שבע": 7, "שבעה": 7, "שביעי": 7,
	"שמונה": 8, "שמיני": 8,
	"תשע": 9, "תשעה": 9, "תשיעי": 9,
	"עשר": 10, "עשרה": 10,
	"אחת-עשרה": 11, "אחת עשרה": 11,
	"שתים-עשרה": 12, "שתים עשרה": 12, "שתים-עשר": 12, "שתים עשר": 12,
}

// Number resolves a Hebrew number word, falling back to a plain numeric
// parse. The second return value is false when neither form applies.
func Number(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, ok := numberWords[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CountWords is the canonical count-word alternation used by the reminder
// and recurrence patterns. Ordered longest-first: the regexp engine takes
// the first alternative that matches, so a suffixed form like "שלושה" must
// precede its prefix "שלוש" or it can never win.
var CountWords = []string{
	"שלושה", "ארבעה", "חמישה", "שתיים", "שניים", "שמונה",
	"שישה", "שבעה", "תשעה", "עשרה", "שלוש", "ארבע",
	"אחת", "אחד", "שני", "חמש", "שבע", "תשע", "עשר",
	"שש",
}
