package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	d := Parse("פגישה עם דוד", refNow)

	// Absent a date phrase the date is the reference day; absent a time
	// phrase the start is 09:00; absent a duration phrase it is one hour.
	assert.Equal(t, refNow.Year(), d.Start.Year())
	assert.Equal(t, refNow.Month(), d.Start.Month())
	assert.Equal(t, refNow.Day(), d.Start.Day())
	assert.Equal(t, 9, d.Start.Hour())
	assert.Equal(t, 0, d.Start.Minute())
	assert.Equal(t, 60, d.DurationMinutes)
	assert.Equal(t, d.Start.Add(time.Hour), d.End)

	assert.Equal(t, "פגישה עם דוד", d.Content)
	assert.Equal(t, "פגישה עם דוד", d.SourceText)
	assert.Empty(t, d.Location)
	assert.Empty(t, d.RRule)
	assert.NotNil(t, d.Reminders)
	assert.Empty(t, d.Reminders)
	assert.NotEmpty(t, d.ID)
}

func TestParseEmptyInput(t *testing.T) {
	d := Parse("", refNow)
	assert.Equal(t, "תזכורת חדשה", d.Content)
	assert.True(t, d.End.After(d.Start))
	assert.Equal(t, 60, d.DurationMinutes)
}

func TestParseEndAlwaysAfterStart(t *testing.T) {
	inputs := []string{
		"",
		"פגישה מחר",
		"מחרתיים בשעה 23:30 למשך 5 דקות",
		"כל יום שלישי בזום",
		"5/10 בשעה 8 בבוקר למשך 3 שעות",
	}
	for _, in := range inputs {
		d := Parse(in, refNow)
		assert.True(t, d.End.After(d.Start), in)
		assert.Equal(t, d.End.Sub(d.Start), time.Duration(d.DurationMinutes)*time.Minute, in)
	}
}

func TestParseTomorrowShifts(t *testing.T) {
	d := Parse("פגישה מחר", refNow)
	assert.Equal(t, refNow.AddDate(0, 0, 1).Day(), d.Start.Day())

	d = Parse("פגישה מחרתיים", refNow)
	assert.Equal(t, refNow.AddDate(0, 0, 2).Day(), d.Start.Day())
}

func TestParseEachCallIsIndependent(t *testing.T) {
	a := Parse("פגישה מחר", refNow)
	b := Parse("פגישה מחר", refNow)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.Content, b.Content)
}

func TestParseWithDefaultDuration(t *testing.T) {
	d := ParseWith("פגישה מחר", refNow, Options{DefaultDuration: 30})
	assert.Equal(t, 30, d.DurationMinutes)

	// An explicit phrase still wins over the configured default.
	d = ParseWith("פגישה מחר למשך 45 דקות", refNow, Options{DefaultDuration: 30})
	assert.Equal(t, 45, d.DurationMinutes)
}

func TestParseRecurrenceAndReminders(t *testing.T) {
	d := Parse("חוג כל שבועיים, להזכיר לי 30 דקות לפני ועוד 10 דקות לפני", refNow)
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=2", d.RRule)
	assert.Equal(t, []int{30, 10}, d.Reminders)
}

// TestParseFullUtterance walks one dictated sentence through the whole
// pipeline: "on Tuesday next at 10, meeting with David at Herzl St 5,
// remind me one hour before, every two weeks".
func TestParseFullUtterance(t *testing.T) {
	text := "ביום שלישי הבא בשעה 10 פגישה עם דוד ברחוב הרצל 5, להזכיר לי אחת שעה לפני, כל שבועיים"
	d := Parse(text, refNow)

	// refNow is Wednesday 2025-09-03; the nearest future Tuesday is the
	// 9th, and "next" moves one week past it.
	want := time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC)
	require.Equal(t, want, d.Start)
	assert.Equal(t, time.Tuesday, d.Start.Weekday())

	assert.Equal(t, 60, d.DurationMinutes)
	assert.Equal(t, want.Add(time.Hour), d.End)
	assert.Equal(t, "רחוב הרצל 5", d.Location)
	assert.Equal(t, []int{60}, d.Reminders)
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=2", d.RRule)
	assert.Equal(t, "פגישה עם דוד", d.Content)
	assert.Equal(t, text, d.SourceText)
}
