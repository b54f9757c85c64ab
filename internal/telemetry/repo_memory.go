package telemetry

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is the no-database fallback. Events and sessions live in process
// memory; the daily metrics mirror the Postgres aggregation.
type MemoryRepo struct {
	mu       sync.Mutex
	events   map[string]Event
	sessions map[string]Session
	daily    map[string]DailyMetrics
}

// DailyMetrics is one per-day usage counter row.
type DailyMetrics struct {
	Day         string
	DAU         int
	NewSessions int
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		events:   make(map[string]Event),
		sessions: make(map[string]Session),
		daily:    make(map[string]DailyMetrics),
	}
}

// UpsertEvent writes or merges the event row for its analysis id.
func (r *MemoryRepo) UpsertEvent(ctx context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ev.TS.IsZero() {
		ev.TS = time.Now().UTC()
	}
	if prev, ok := r.events[ev.AnalysisID]; ok {
		// feedback fields survive event re-writes, matching the merge
		// semantics of the SQL upsert
		ev.Helpful = prev.Helpful
		ev.Reason = prev.Reason
		ev.FeedbackAt = prev.FeedbackAt
	}
	r.events[ev.AnalysisID] = ev
	return nil
}

// SetFeedback attaches helpful/reason to an existing event.
func (r *MemoryRepo) SetFeedback(ctx context.Context, analysisID, helpful, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, ok := r.events[analysisID]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	ev.Helpful = helpful
	ev.Reason = reason
	ev.FeedbackAt = &now
	r.events[analysisID] = ev
	return nil
}

// TouchSession records session activity and bumps daily metrics.
func (r *MemoryRepo) TouchSession(ctx context.Context, sessionID, lang string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := DayKey(now)

	sess, ok := r.sessions[sessionID]
	if !ok {
		r.sessions[sessionID] = Session{
			SessionID:    sessionID,
			Lang:         lang,
			FirstSeenAt:  now,
			LastSeenAt:   now,
			LastSeenDate: day,
		}
		r.bumpDaily(day, true)
		return nil
	}

	newDay := sess.LastSeenDate != day
	sess.Lang = lang
	sess.LastSeenAt = now
	sess.LastSeenDate = day
	r.sessions[sessionID] = sess
	if newDay {
		r.bumpDaily(day, false)
	}
	return nil
}

func (r *MemoryRepo) bumpDaily(day string, newSession bool) {
	m := r.daily[day]
	m.Day = day
	m.DAU++
	if newSession {
		m.NewSessions++
	}
	r.daily[day] = m
}

// Event returns the stored event for an analysis id, for tests and debugging.
func (r *MemoryRepo) Event(analysisID string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[analysisID]
	return ev, ok
}

// Daily returns the metrics row for a day, for tests and debugging.
func (r *MemoryRepo) Daily(day string) (DailyMetrics, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.daily[day]
	return m, ok
}
