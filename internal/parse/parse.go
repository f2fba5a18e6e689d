// Package parse turns a free-form Hebrew utterance into an event.Draft.
//
// The pipeline is a fixed set of independent extractors, each a pure function
// matching against the *original* text (never the residue of another
// extractor), run in this order:
//
//	date, clock, duration, location, reminders, recurrence
//
// The order does not affect extraction correctness, but every matched raw
// span is collected and the content stripper removes them all at the end to
// produce the residual title. Extraction has no failure path: every field
// has a deterministic default, so Parse always returns a complete draft.
//
// Known ambiguity, kept on purpose: the address pattern and the hour pattern
// can both claim trailing digits ("at Herzl St 12" vs "at 12 o'clock")
// because both scan the original text with first-match-wins priority. No
// additional disambiguation is applied.
package parse

import (
	"time"

	"github.com/google/uuid"

	"voicecal/internal/event"
)

const (
	// DefaultDurationMinutes is used when no duration phrase is present.
	DefaultDurationMinutes = 60
	// DefaultHour is the start hour used when no time phrase is present.
	DefaultHour = 9

	// fallbackTitle is used when both the residue and the utterance are empty.
	fallbackTitle = "תזכורת חדשה"
)

// Options tunes pipeline defaults. The zero value means the documented
// defaults.
type Options struct {
	// DefaultDuration, in minutes, replaces DefaultDurationMinutes when > 0.
	DefaultDuration int
}

// Parse runs the full pipeline over text using now as the reference moment
// for every relative date and time rule.
func Parse(text string, now time.Time) *event.Draft {
	return ParseWith(text, now, Options{})
}

// ParseWith is Parse with explicit Options.
func ParseWith(text string, now time.Time, opts Options) *event.Draft {
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = DefaultDurationMinutes
	}

	date, dateOK := extractDate(text, now)
	day := now
	if dateOK {
		day = date.date
	}

	hour, minute := DefaultHour, 0
	clock, clockOK := extractClock(text)
	if clockOK {
		hour, minute = clock.hour, clock.minute
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())

	durMin := opts.DefaultDuration
	dur, durOK := extractDuration(text)
	if durOK {
		durMin = dur.minutes
	}
	end := start.Add(time.Duration(durMin) * time.Minute)

	loc, locOK := extractLocation(text)
	reminders, reminderRaws := extractReminders(text)
	rec, recOK := extractRecurrence(text)

	// Span order mirrors the extractor order documented above.
	fragments := make([]string, 0, len(reminderRaws)+5)
	if clockOK {
		fragments = append(fragments, clock.raw)
	}
	if durOK {
		fragments = append(fragments, dur.raw)
	}
	if recOK {
		fragments = append(fragments, rec.raws...)
	}
	fragments = append(fragments, reminderRaws...)
	if dateOK {
		fragments = append(fragments, date.raw)
	}
	if locOK {
		fragments = append(fragments, loc.raw)
	}

	content := stripContent(text, fragments)
	if content == "" {
		content = text
	}
	if content == "" {
		content = fallbackTitle
	}

	d := &event.Draft{
		ID:              uuid.NewString(),
		Content:         content,
		Start:           start,
		End:             end,
		DurationMinutes: durMin,
		Reminders:       reminders,
		SourceText:      text,
	}
	if locOK {
		d.Location = loc.value
	}
	if recOK {
		d.RRule = rec.rule
	}
	if d.Reminders == nil {
		d.Reminders = []int{}
	}
	return d
}
