package telemetry

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an event does not exist.
var ErrNotFound = errors.New("telemetry: not found")

// Repo defines persistence operations for telemetry.
type Repo interface {
	// UpsertEvent writes or merges the event row for its analysis id.
	UpsertEvent(ctx context.Context, ev Event) error
	// SetFeedback attaches helpful/reason to an existing event.
	SetFeedback(ctx context.Context, analysisID, helpful, reason string) error
	// TouchSession records session activity at the given instant and bumps
	// the daily metrics (dau on the first touch of a UTC day, newSessions on
	// the first touch ever).
	TouchSession(ctx context.Context, sessionID, lang string, now time.Time) error
}
