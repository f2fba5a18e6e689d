package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"voicecal/internal/event"
	"voicecal/internal/log"
)

const (
	// DefaultTimezone is applied when an insert payload names no zone.
	DefaultTimezone = "Asia/Jerusalem"
	// DefaultCalendarID targets the authenticated user's main calendar.
	DefaultCalendarID = "primary"
)

// Inserter creates events through the Google Calendar API.
type Inserter struct {
	svc *calendar.Service
}

// NewInserter wraps an already-authenticated HTTP client.
func NewInserter(ctx context.Context, client *http.Client) (*Inserter, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}
	return &Inserter{svc: svc}, nil
}

// NewInserterFromCredentials builds a service from a Google credentials JSON
// file (service account or authorized user).
func NewInserterFromCredentials(ctx context.Context, path string) (*Inserter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}
	return &Inserter{svc: svc}, nil
}

// Insert creates the event described by p and returns its HTML link. Empty
// timezone and calendar id fall back to the package defaults.
func (i *Inserter) Insert(ctx context.Context, p event.InsertPayload) (string, error) {
	if p.Summary == "" {
		return "", errors.New("insert: empty summary")
	}
	if p.Start == "" || p.End == "" {
		return "", errors.New("insert: missing start or end")
	}
	tz := p.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	calendarID := p.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	ev := &calendar.Event{
		Summary:  p.Summary,
		Location: p.Location,
		Start:    &calendar.EventDateTime{DateTime: p.Start, TimeZone: tz},
		End:      &calendar.EventDateTime{DateTime: p.End, TimeZone: tz},
	}

	created, err := i.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	log.Info("event inserted", "calendar", calendarID, "summary", p.Summary)
	return created.HtmlLink, nil
}
