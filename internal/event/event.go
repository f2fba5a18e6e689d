// Package event defines the Draft produced by the parsing pipeline and its
// conversion into the remote-insertion payload.
package event

import "time"

// Draft is the structured result of parsing one utterance. It is complete by
// construction (every field has a deterministic default) and treated as
// immutable: edits produce a new value, never mutate a stored one.
//
// Start and End are timezone-naive wall-clock values carried in the reference
// location of the parse call; consumers decide which zone they mean.
type Draft struct {
	ID      string `json:"id"`
	Content string `json:"content"`

	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`

	Location  string `json:"location,omitempty"`
	Reminders []int  `json:"reminders"`
	RRule     string `json:"rrule,omitempty"`

	// SourceText is the original utterance, kept verbatim for audit/display.
	SourceText string `json:"source_text"`
}

// InsertPayload is the JSON body accepted by the calendar-insertion wrapper.
// Start and End are offset-aware RFC3339 timestamps.
type InsertPayload struct {
	Summary    string `json:"summary"`
	Location   string `json:"location,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Timezone   string `json:"timezone"`
	CalendarID string `json:"calendarId,omitempty"`
}

// InsertPayload converts the draft for remote insertion, reinterpreting the
// naive wall-clock times in tz.
func (d *Draft) InsertPayload(tz *time.Location, calendarID string) InsertPayload {
	return InsertPayload{
		Summary:    d.Content,
		Location:   d.Location,
		Start:      inZone(d.Start, tz).Format(time.RFC3339),
		End:        inZone(d.End, tz).Format(time.RFC3339),
		Timezone:   tz.String(),
		CalendarID: calendarID,
	}
}

// inZone rebuilds t's wall-clock fields in loc without converting the instant.
func inZone(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}
