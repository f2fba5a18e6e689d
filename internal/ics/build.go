// Package ics renders an event.Draft into a single VCALENDAR/VEVENT text
// block and reads such blocks back.
//
// The writer is deliberately hand-assembled: the output format is fixed byte
// for byte (floating date-times, LF line endings, a small escape set) and no
// folding at 75 octets is performed. That is a documented limitation of the
// format this tool emits, not something to fix here.
package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"voicecal/internal/event"
)

// uidDomain suffixes generated UIDs when a draft carries no id.
const uidDomain = "@voicecal.local"

// Build renders d as a complete VCALENDAR document. stamp becomes DTSTAMP
// and seeds the fallback UID.
func Build(d *event.Draft, stamp time.Time) string {
	uid := d.ID
	if uid == "" {
		uid = strconv.FormatInt(stamp.UnixMilli(), 10) + uidDomain
	}
	description := d.SourceText
	if description == "" {
		description = d.Content
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\nVERSION:2.0\nCALSCALE:GREGORIAN\nMETHOD:PUBLISH\nBEGIN:VEVENT\n")
	fmt.Fprintf(&b, "UID:%s\n", uid)
	fmt.Fprintf(&b, "DTSTAMP:%s\n", FormatFloating(stamp))
	fmt.Fprintf(&b, "DTSTART:%s\n", FormatFloating(d.Start))
	fmt.Fprintf(&b, "DTEND:%s\n", FormatFloating(d.End))
	fmt.Fprintf(&b, "SUMMARY:%s\n", Escape(d.Content))
	fmt.Fprintf(&b, "DESCRIPTION:%s\n", Escape(description))
	if d.Location != "" {
		fmt.Fprintf(&b, "LOCATION:%s\n", Escape(d.Location))
	}
	if d.RRule != "" {
		fmt.Fprintf(&b, "RRULE:%s\n", d.RRule)
	}
	for _, mins := range d.Reminders {
		if mins < 0 {
			mins = 0
		}
		fmt.Fprintf(&b, "BEGIN:VALARM\nACTION:DISPLAY\nDESCRIPTION:Reminder\nTRIGGER:-PT%dM\nEND:VALARM\n", mins)
	}
	b.WriteString("END:VEVENT\nEND:VCALENDAR")
	return b.String()
}

// Escape applies the writer's escape set: backslashes, newlines and
// semicolons are escaped, and ", " collapses to ",". Control characters
// outside this set pass through unvalidated.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ", ", ",")
	s = strings.ReplaceAll(s, ";", `\;`)
	return s
}
