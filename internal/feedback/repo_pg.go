package feedback

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// SaveMessage inserts one feedback message row.
func (r *PGRepo) SaveMessage(ctx context.Context, msg Message) error {
	const query = `
INSERT INTO feedback_messages (
    id, message, email, analysis_id, session_id, lang, purpose, target, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		msg.ID,
		msg.Message,
		nullIfEmpty(msg.Email),
		nullIfEmpty(msg.AnalysisID),
		nullIfEmpty(msg.SessionID),
		nullIfEmpty(msg.Lang),
		nullIfEmpty(msg.Purpose),
		nullIfEmpty(msg.Target),
		createdAt,
	)
	return err
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
