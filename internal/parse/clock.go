package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// clockMatch is an hour/minute expression plus the span it was matched from.
type clockMatch struct {
	hour   int
	minute int
	raw    string
}

// clockPat matches an optional time-introducing particle, an hour, an
// optional colon/dot separated minute and an optional meridiem marker.
var clockPat = regexp.MustCompile(`(?:בשעה|שעה|ב-|ב )?\s*(\d{1,2})(?:[:.](\d{2}))?\s*((?i:בבוקר|בערב|בלילה|AM|PM))?`)

// extractClock finds the first hour[:minute] expression. Minute defaults to
// zero. Evening/night/PM markers push an hour below 12 into the afternoon;
// AM forces hour 12 to 0.
func extractClock(text string) (clockMatch, bool) {
	m := clockPat.FindStringSubmatch(text)
	if m == nil {
		return clockMatch{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	mer := strings.ToLower(m[3])
	if (strings.Contains(mer, "pm") || strings.Contains(mer, "בערב") || strings.Contains(mer, "בלילה")) && hour < 12 {
		hour += 12
	}
	if strings.Contains(mer, "am") && hour == 12 {
		hour = 0
	}

	return clockMatch{hour: hour, minute: minute, raw: m[0]}, true
}
