// Package web exposes the parser, the event store and the Google Calendar
// integrations over a small JSON HTTP API.
package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"voicecal/internal/config"
	"voicecal/internal/event"
	"voicecal/internal/gcal"
	"voicecal/internal/ics"
	appLog "voicecal/internal/log"
	"voicecal/internal/parse"
	"voicecal/internal/store"
)

// Store is the persistence surface the server needs.
type Store interface {
	Save(d *event.Draft) error
	Get(id string) (*event.Draft, error)
	List() ([]*event.Draft, error)
	Delete(id string) error
}

// Inserter creates events in Google Calendar.
type Inserter interface {
	Insert(ctx context.Context, p event.InsertPayload) (string, error)
}

// Server provides the HTTP API.
type Server struct {
	cfg      *config.Config
	store    Store
	inserter Inserter
	loc      *time.Location
	mux      *http.ServeMux

	// now is injectable for tests.
	now func() time.Time
}

// NewServer constructs a Server. inserter may be nil when no Google
// credentials are configured. loc falls back to time.Local when nil.
func NewServer(cfg *config.Config, st Store, inserter Inserter, loc *time.Location) *Server {
	if loc == nil {
		loc = time.Local
	}
	s := &Server{
		cfg:      cfg,
		store:    st,
		inserter: inserter,
		loc:      loc,
		mux:      http.NewServeMux(),
		now:      time.Now,
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	if s.cfg.BasicAuth.Username == "" || s.cfg.BasicAuth.Password == "" {
		return false
	}
	return true
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="VoiceCal", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/parse", s.handleParse)
	s.mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	s.mux.HandleFunc("GET /api/events", s.handleListEvents)
	s.mux.HandleFunc("GET /api/events/{id}", s.handleGetEvent)
	s.mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)
	s.mux.HandleFunc("GET /api/events/{id}/ics", s.handleEventICS)
	s.mux.HandleFunc("GET /api/events/{id}/link", s.handleEventLink)
	s.mux.HandleFunc("POST /api/events/{id}/insert", s.handleInsertEvent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type parseRequest struct {
	Text string `json:"text"`
}

// handleParse parses an utterance and returns the draft without storing it.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeParseRequest(w, r)
	if !ok {
		return
	}
	d := s.parseText(req.Text)
	writeJSON(w, http.StatusOK, d)
}

// handleCreateEvent parses an utterance, stores the draft and returns it.
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeParseRequest(w, r)
	if !ok {
		return
	}
	d := s.parseText(req.Text)
	if err := s.store.Save(d); err != nil {
		appLog.Error("failed to save event", err)
		writeError(w, http.StatusInternalServerError, "failed to save event")
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) decodeParseRequest(w http.ResponseWriter, r *http.Request) (parseRequest, bool) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return req, false
	}
	return req, true
}

func (s *Server) parseText(text string) *event.Draft {
	opts := parse.Options{}
	if s.cfg != nil {
		opts.DefaultDuration = s.cfg.DefaultDurationMinutes
	}
	return parse.ParseWith(text, s.now().In(s.loc), opts)
}

func (s *Server) handleListEvents(w http.ResponseWriter, _ *http.Request) {
	events, err := s.store.List()
	if err != nil {
		appLog.Error("failed to list events", err)
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	if events == nil {
		events = []*event.Draft{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	err := s.store.Delete(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		appLog.Error("failed to delete event", err)
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleEventICS(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	body := ics.Build(d, s.now().In(s.loc))
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (s *Server) handleEventLink(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": gcal.EventURL(d)})
}

func (s *Server) handleInsertEvent(w http.ResponseWriter, r *http.Request) {
	if s.inserter == nil {
		writeError(w, http.StatusServiceUnavailable, "calendar insertion not configured")
		return
	}
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}

	calendarID := ""
	if s.cfg != nil {
		calendarID = s.cfg.CalendarID
	}

	link, err := s.inserter.Insert(r.Context(), d.InsertPayload(s.loc, calendarID))
	if err != nil {
		appLog.Error("failed to insert event", err, "id", d.ID)
		writeError(w, http.StatusBadGateway, "failed to insert event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "htmlLink": link})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*event.Draft, bool) {
	d, err := s.store.Get(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return nil, false
	}
	if err != nil {
		appLog.Error("failed to load event", err)
		writeError(w, http.StatusInternalServerError, "failed to load event")
		return nil, false
	}
	return d, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
