package ics

import (
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// ReadEvent is the normalized form of the first VEVENT in an ICS payload.
type ReadEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string
	RRule       string

	Start time.Time
	End   time.Time

	// AlarmMinutes are VALARM trigger lead times, in minutes before start.
	AlarmMinutes []int
}

var triggerPat = regexp.MustCompile(`-?PT(\d+)M`)

// Read parses an ICS payload and returns its first VEVENT. Floating
// date-times are interpreted in loc (time.Local when nil).
func Read(body []byte, loc *time.Location) (ReadEvent, error) {
	var out ReadEvent
	if len(body) == 0 {
		return out, errors.New("empty ICS body")
	}
	if loc == nil {
		loc = time.Local
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	events := cal.Events()
	if len(events) == 0 {
		return out, errors.New("no VEVENT in calendar")
	}
	ve := events[0]

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RRule = p.Value
	}

	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		t, perr := parseICSTime(p.Value, loc)
		if perr != nil {
			return out, perr
		}
		out.Start = t
	}
	if p := ve.GetProperty(ical.ComponentPropertyDtEnd); p != nil {
		t, perr := parseICSTime(p.Value, loc)
		if perr != nil {
			return out, perr
		}
		out.End = t
	}

	for _, alarm := range ve.Alarms() {
		p := alarm.GetProperty(ical.ComponentProperty("TRIGGER"))
		if p == nil {
			continue
		}
		m := triggerPat.FindStringSubmatch(p.Value)
		if m == nil {
			continue
		}
		if n, aerr := strconv.Atoi(m[1]); aerr == nil {
			out.AlarmMinutes = append(out.AlarmMinutes, n)
		}
	}

	return out, nil
}

// parseICSTime parses UTC, floating and date-only iCalendar time values.
func parseICSTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return ParseFloating(v, loc)
	}
	return time.ParseInLocation("20060102", v, loc)
}
