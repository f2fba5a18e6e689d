package ics

import "time"

// floatingLayout is the timezone-naive iCalendar date-time form. Values are
// interpreted in whatever zone the consumer considers local.
const floatingLayout = "20060102T150405"

// FormatFloating renders t in the floating local format YYYYMMDDThhmmss.
func FormatFloating(t time.Time) string {
	return t.Format(floatingLayout)
}

// ParseFloating parses a floating date-time in loc.
func ParseFloating(v string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(floatingLayout, v, loc)
}
