package telemetry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB      *sql.DB
	TTLDays int
}

func (r *PGRepo) ttl() time.Duration {
	days := r.TTLDays
	if days <= 0 {
		days = 90
	}
	return time.Duration(days) * 24 * time.Hour
}

// UpsertEvent writes or merges the event row for its analysis id.
func (r *PGRepo) UpsertEvent(ctx context.Context, ev Event) error {
	const query = `
INSERT INTO telemetry_events (
    analysis_id,
    session_id,
    lang,
    target,
    purpose,
    task_type,
    engine_version,
    score,
    confidence,
    words,
    approx_tokens,
    finding_ids,
    reco_ids,
    output_format_kind,
    output_format_strict,
    ts,
    created_at,
    expires_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), $17)
ON CONFLICT (analysis_id) DO UPDATE SET
    session_id = EXCLUDED.session_id,
    lang = EXCLUDED.lang,
    target = EXCLUDED.target,
    purpose = EXCLUDED.purpose,
    task_type = EXCLUDED.task_type,
    engine_version = EXCLUDED.engine_version,
    score = EXCLUDED.score,
    confidence = EXCLUDED.confidence,
    words = EXCLUDED.words,
    approx_tokens = EXCLUDED.approx_tokens,
    finding_ids = EXCLUDED.finding_ids,
    reco_ids = EXCLUDED.reco_ids,
    output_format_kind = EXCLUDED.output_format_kind,
    output_format_strict = EXCLUDED.output_format_strict,
    ts = EXCLUDED.ts,
    expires_at = EXCLUDED.expires_at`

	ts := ev.TS
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	expires := ev.ExpiresAt
	if expires.IsZero() {
		expires = ts.Add(r.ttl())
	}

	findingIDs, err := json.Marshal(nonNil(ev.FindingIDs))
	if err != nil {
		return fmt.Errorf("marshal finding ids: %w", err)
	}
	recoIDs, err := json.Marshal(nonNil(ev.RecoIDs))
	if err != nil {
		return fmt.Errorf("marshal reco ids: %w", err)
	}

	var formatKind sql.NullString
	if ev.OutputFormatKind != "" {
		formatKind = sql.NullString{String: ev.OutputFormatKind, Valid: true}
	}
	var formatStrict sql.NullBool
	if ev.OutputFormatStrict != nil {
		formatStrict = sql.NullBool{Bool: *ev.OutputFormatStrict, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		ev.AnalysisID,
		ev.SessionID,
		ev.Lang,
		ev.Target,
		nullIfEmpty(ev.Purpose),
		nullIfEmpty(ev.TaskType),
		ev.EngineVersion,
		ev.Score,
		ev.Confidence,
		ev.Words,
		ev.ApproxTokens,
		findingIDs,
		recoIDs,
		formatKind,
		formatStrict,
		ts,
		expires,
	)
	return err
}

// SetFeedback attaches helpful/reason to an existing event.
func (r *PGRepo) SetFeedback(ctx context.Context, analysisID, helpful, reason string) error {
	const query = `
UPDATE telemetry_events
SET helpful = $2, reason = $3, feedback_at = now()
WHERE analysis_id = $1`

	res, err := r.DB.ExecContext(ctx, query, analysisID, helpful, nullIfEmpty(reason))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchSession records session activity and bumps daily metrics.
func (r *PGRepo) TouchSession(ctx context.Context, sessionID, lang string, now time.Time) error {
	day := DayKey(now)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lastSeenDate sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT last_seen_date FROM telemetry_sessions WHERE session_id = $1 FOR UPDATE`,
		sessionID,
	).Scan(&lastSeenDate)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO telemetry_sessions (session_id, lang, first_seen_at, last_seen_at, last_seen_date)
VALUES ($1, $2, $3, $3, $4)`,
			sessionID, lang, now, day,
		); err != nil {
			return err
		}
		if err := bumpDailyMetrics(ctx, tx, day, true); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE telemetry_sessions SET lang = $2, last_seen_at = $3, last_seen_date = $4 WHERE session_id = $1`,
			sessionID, lang, now, day,
		); err != nil {
			return err
		}
		if lastSeenDate.String != day {
			if err := bumpDailyMetrics(ctx, tx, day, false); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func bumpDailyMetrics(ctx context.Context, tx *sql.Tx, day string, newSession bool) error {
	newSessions := 0
	if newSession {
		newSessions = 1
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO telemetry_metrics_daily (day, dau, new_sessions, updated_at)
VALUES ($1, 1, $2, now())
ON CONFLICT (day) DO UPDATE SET
    dau = telemetry_metrics_daily.dau + 1,
    new_sessions = telemetry_metrics_daily.new_sessions + $2,
    updated_at = now()`,
		day, newSessions,
	)
	return err
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
