// Package remind periodically scans stored events and surfaces reminder
// notices whose trigger time has arrived.
package remind

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"voicecal/internal/event"
	"voicecal/internal/log"
)

// Store is the event source the sweeper scans.
type Store interface {
	List() ([]*event.Draft, error)
}

// Notice describes a single reminder that has come due.
type Notice struct {
	EventID     string    `json:"event_id"`
	Content     string    `json:"content"`
	LeadMinutes int       `json:"lead_minutes"`
	At          time.Time `json:"at"`
}

// Notify receives due notices. Calls happen on the cron goroutine.
type Notify func(Notice)

// Sweeper runs a cron schedule and emits notices for reminders whose
// trigger time falls inside the swept window.
type Sweeper struct {
	store  Store
	notify Notify
	cron   *cron.Cron

	mu   sync.Mutex
	last time.Time
}

// New builds a sweeper over store. notify may be nil, in which case due
// notices are only logged.
func New(store Store, notify Notify) *Sweeper {
	return &Sweeper{
		store:  store,
		notify: notify,
		cron:   cron.New(),
		last:   time.Now(),
	}
}

// Start registers spec (standard 5-field cron syntax) and starts the
// scheduler.
func (s *Sweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.sweep(time.Now()) }); err != nil {
		return err
	}
	s.cron.Start()
	log.Info("reminder sweeper started", "cron", spec)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep(now time.Time) {
	s.mu.Lock()
	last := s.last
	s.last = now
	s.mu.Unlock()

	notices, err := s.sweepAt(last, now)
	if err != nil {
		log.Error("reminder sweep failed", err)
		return
	}
	for _, n := range notices {
		log.Info("reminder due", "event", n.EventID, "content", n.Content, "lead_minutes", n.LeadMinutes)
		if s.notify != nil {
			s.notify(n)
		}
	}
}

// sweepAt returns notices whose trigger time falls in (last, now].
func (s *Sweeper) sweepAt(last, now time.Time) ([]Notice, error) {
	events, err := s.store.List()
	if err != nil {
		return nil, err
	}

	var due []Notice
	for _, d := range events {
		for _, mins := range d.Reminders {
			trigger := d.Start.Add(-time.Duration(mins) * time.Minute)
			if trigger.After(last) && !trigger.After(now) {
				due = append(due, Notice{
					EventID:     d.ID,
					Content:     d.Content,
					LeadMinutes: mins,
					At:          trigger,
				})
			}
		}
	}
	return due, nil
}
