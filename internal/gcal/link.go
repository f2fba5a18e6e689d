// Package gcal builds Google Calendar artifacts from drafts: prefilled
// event-creation links and API insertions.
package gcal

import (
	"net/url"
	"strings"

	"voicecal/internal/event"
	"voicecal/internal/ics"
)

const renderBase = "https://calendar.google.com/calendar/render?action=TEMPLATE"

// EventURL returns a calendar.google.com link that opens the event creation
// form prefilled from d. Parameter order is fixed: text, dates, location,
// details. Location is omitted when empty.
func EventURL(d *event.Draft) string {
	details := d.SourceText
	if details == "" {
		details = d.Content
	}
	dates := ics.FormatFloating(d.Start) + "/" + ics.FormatFloating(d.End)

	params := []string{
		"text=" + url.QueryEscape(d.Content),
		"dates=" + url.QueryEscape(dates),
	}
	if d.Location != "" {
		params = append(params, "location="+url.QueryEscape(d.Location))
	}
	params = append(params, "details="+url.QueryEscape(details))

	return renderBase + "&" + strings.Join(params, "&")
}
