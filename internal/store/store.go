// Package store persists event drafts in a local sqlite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"voicecal/internal/event"
	"voicecal/internal/ics"
)

// ErrNotFound is returned when no event exists under the requested id.
var ErrNotFound = errors.New("event not found")

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id               TEXT PRIMARY KEY,
	content          TEXT NOT NULL,
	start_at         TEXT NOT NULL,
	end_at           TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	location         TEXT NOT NULL DEFAULT '',
	reminders        TEXT NOT NULL DEFAULT '[]',
	rrule            TEXT NOT NULL DEFAULT '',
	source_text      TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL
);
`

// Store wraps the sqlite handle. Times are written in the floating local
// format and read back in the zone the store was opened with.
type Store struct {
	db  *sql.DB
	loc *time.Location
}

// Open opens (or creates) the database at path and ensures the schema.
// Times read back are interpreted in loc (time.Local when nil).
func Open(path string, loc *time.Location) (*Store, error) {
	if loc == nil {
		loc = time.Local
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db, loc: loc}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts d, replacing any existing row with the same id.
func (s *Store) Save(d *event.Draft) error {
	if d.ID == "" {
		return errors.New("save: empty event id")
	}
	reminders, err := json.Marshal(d.Reminders)
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO events
		 (id, content, start_at, end_at, duration_minutes, location, reminders, rrule, source_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID,
		d.Content,
		ics.FormatFloating(d.Start),
		ics.FormatFloating(d.End),
		d.DurationMinutes,
		d.Location,
		string(reminders),
		d.RRule,
		d.SourceText,
		ics.FormatFloating(time.Now().In(s.loc)),
	)
	if err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

// Get returns the event stored under id, or ErrNotFound.
func (s *Store) Get(id string) (*event.Draft, error) {
	row := s.db.QueryRow(
		`SELECT id, content, start_at, end_at, duration_minutes, location, reminders, rrule, source_text
		 FROM events WHERE id = ?`, id)
	d, err := s.scan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return d, nil
}

// List returns all stored events ordered by start time.
func (s *Store) List() ([]*event.Draft, error) {
	rows, err := s.db.Query(
		`SELECT id, content, start_at, end_at, duration_minutes, location, reminders, rrule, source_text
		 FROM events ORDER BY start_at`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []*event.Draft
	for rows.Next() {
		d, err := s.scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

// Delete removes the event stored under id. Missing ids report ErrNotFound.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) scan(scan func(dest ...any) error) (*event.Draft, error) {
	var (
		d         event.Draft
		startAt   string
		endAt     string
		reminders string
	)
	if err := scan(&d.ID, &d.Content, &startAt, &endAt, &d.DurationMinutes,
		&d.Location, &reminders, &d.RRule, &d.SourceText); err != nil {
		return nil, err
	}
	start, err := ics.ParseFloating(startAt, s.loc)
	if err != nil {
		return nil, fmt.Errorf("parse start_at: %w", err)
	}
	end, err := ics.ParseFloating(endAt, s.loc)
	if err != nil {
		return nil, fmt.Errorf("parse end_at: %w", err)
	}
	d.Start = start
	d.End = end
	if err := json.Unmarshal([]byte(reminders), &d.Reminders); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}
	if d.Reminders == nil {
		d.Reminders = []int{}
	}
	return &d, nil
}
