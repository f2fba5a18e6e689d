package remind

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicecal/internal/event"
)

type fakeStore struct {
	events []*event.Draft
	err    error
}

func (f *fakeStore) List() ([]*event.Draft, error) {
	return f.events, f.err
}

func TestSweepAtWindow(t *testing.T) {
	start := time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC)
	fs := &fakeStore{events: []*event.Draft{
		{ID: "a1", Content: "פגישה עם דוד", Start: start, Reminders: []int{60, 10}},
	}}
	s := New(fs, nil)

	// 09:00 trigger falls in (08:59, 09:00], the 09:50 one does not.
	due, err := s.sweepAt(start.Add(-61*time.Minute), start.Add(-60*time.Minute))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "a1", due[0].EventID)
	assert.Equal(t, 60, due[0].LeadMinutes)
	assert.True(t, due[0].At.Equal(start.Add(-60*time.Minute)))
}

func TestSweepAtExclusiveLowerBound(t *testing.T) {
	start := time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC)
	fs := &fakeStore{events: []*event.Draft{
		{ID: "a1", Content: "x", Start: start, Reminders: []int{60}},
	}}
	s := New(fs, nil)

	// Trigger exactly at the window's open end is not re-delivered.
	due, err := s.sweepAt(start.Add(-60*time.Minute), start.Add(-59*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestSweepAtMultipleEvents(t *testing.T) {
	now := time.Date(2025, 9, 16, 9, 0, 0, 0, time.UTC)
	fs := &fakeStore{events: []*event.Draft{
		{ID: "a1", Content: "x", Start: now.Add(10 * time.Minute), Reminders: []int{10}},
		{ID: "a2", Content: "y", Start: now.Add(30 * time.Minute), Reminders: []int{30, 5}},
		{ID: "a3", Content: "z", Start: now.Add(2 * time.Hour), Reminders: []int{60}},
	}}
	s := New(fs, nil)

	due, err := s.sweepAt(now.Add(-time.Minute), now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "a1", due[0].EventID)
	assert.Equal(t, "a2", due[1].EventID)
}

func TestSweepAtStoreError(t *testing.T) {
	s := New(&fakeStore{err: errors.New("boom")}, nil)
	_, err := s.sweepAt(time.Now().Add(-time.Minute), time.Now())
	assert.Error(t, err)
}

func TestSweepAdvancesWindowAndNotifies(t *testing.T) {
	start := time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC)
	fs := &fakeStore{events: []*event.Draft{
		{ID: "a1", Content: "x", Start: start, Reminders: []int{60}},
	}}

	var got []Notice
	s := New(fs, func(n Notice) { got = append(got, n) })
	s.last = start.Add(-61 * time.Minute)

	s.sweep(start.Add(-60 * time.Minute))
	require.Len(t, got, 1)

	// The same trigger is not delivered twice.
	s.sweep(start.Add(-59 * time.Minute))
	assert.Len(t, got, 1)
}
