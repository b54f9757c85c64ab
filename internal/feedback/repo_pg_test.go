package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSaveMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	msg := Message{
		ID:        "9c5e1f7a-4a47-4dd0-9f6e-0d27b7f9f001",
		Message:   "the optimized prompt worked on the first try",
		SessionID: "session-0001",
		Lang:      "en",
		Target:    "claude",
		CreatedAt: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO feedback_messages").
		WithArgs(
			msg.ID,
			msg.Message,
			sqlmock.AnyArg(), // email
			sqlmock.AnyArg(), // analysis_id
			sqlmock.AnyArg(), // session_id
			sqlmock.AnyArg(), // lang
			sqlmock.AnyArg(), // purpose
			sqlmock.AnyArg(), // target
			msg.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveMessage(context.Background(), msg); err != nil {
		t.Fatalf("SaveMessage: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
