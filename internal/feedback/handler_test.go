package feedback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"promptea-backend/internal/telemetry"
)

func newTestRouter(tel telemetry.Repo, messages Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(tel, messages).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFeedbackRecordsVote(t *testing.T) {
	tel := telemetry.NewMemoryRepo()
	if err := tel.UpsertEvent(context.Background(), telemetry.Event{AnalysisID: "analysis-0001", SessionID: "session-0001"}); err != nil {
		t.Fatalf("UpsertEvent: %v", err)
	}
	r := newTestRouter(tel, NewMemoryRepo())

	w := postJSON(t, r, "/api/feedback", `{"analysisId":"analysis-0001","helpful":"yes","reason":"clear rewrite"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	ev, _ := tel.Event("analysis-0001")
	if ev.Helpful != "yes" || ev.Reason != "clear rewrite" {
		t.Fatalf("feedback not recorded: %+v", ev)
	}
}

func TestFeedbackUnknownAnalysisIs404(t *testing.T) {
	r := newTestRouter(telemetry.NewMemoryRepo(), NewMemoryRepo())

	w := postJSON(t, r, "/api/feedback", `{"analysisId":"analysis-9999","helpful":"no"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestFeedbackValidation(t *testing.T) {
	r := newTestRouter(telemetry.NewMemoryRepo(), NewMemoryRepo())

	cases := []struct {
		name string
		body string
	}{
		{"short analysisId", `{"analysisId":"short","helpful":"yes"}`},
		{"bad helpful", `{"analysisId":"analysis-0001","helpful":"maybe"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/feedback", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestShareFeedbackStoresMessage(t *testing.T) {
	messages := NewMemoryRepo()
	r := newTestRouter(telemetry.NewMemoryRepo(), messages)

	body := `{"message":"la reescritura me sirvió mucho","email":"ana@example.com","sessionId":"session-0001","lang":"es","purpose":"text","target":"gpt"}`
	w := postJSON(t, r, "/api/share-feedback", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	stored := messages.Messages()
	if len(stored) != 1 {
		t.Fatalf("stored %d messages, want 1", len(stored))
	}
	msg := stored[0]
	if msg.ID == "" {
		t.Fatal("message id not assigned")
	}
	if msg.Message != "la reescritura me sirvió mucho" || msg.Email != "ana@example.com" {
		t.Fatalf("stored message mismatch: %+v", msg)
	}
	if msg.CreatedAt.IsZero() {
		t.Fatal("createdAt not set")
	}
}

func TestShareFeedbackMessageBounds(t *testing.T) {
	r := newTestRouter(telemetry.NewMemoryRepo(), NewMemoryRepo())

	cases := []struct {
		name string
		body string
	}{
		{"too short", `{"message":"hey"}`},
		{"too long", `{"message":"` + strings.Repeat("a", 4001) + `"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/share-feedback", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}
