package feedback

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promptea-backend/internal/shared/server/respond"
	"promptea-backend/internal/telemetry"
)

const (
	minMessageChars = 5
	maxMessageChars = 4000
)

// Handler wires feedback routes to the telemetry and message repos.
type Handler struct {
	Telemetry telemetry.Repo
	Messages  Repo
}

// NewHandler constructs a Handler.
func NewHandler(tel telemetry.Repo, messages Repo) *Handler {
	return &Handler{Telemetry: tel, Messages: messages}
}

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.feedback)
	rg.POST("/share-feedback", h.shareFeedback)
}

type feedbackRequest struct {
	AnalysisID string `json:"analysisId"`
	Helpful    string `json:"helpful"`
	Reason     string `json:"reason"`
}

// feedback attaches a helpful yes/no vote to an existing analysis event.
func (h *Handler) feedback(c *gin.Context) {
	if !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json", nil)
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "Invalid JSON", nil)
		return
	}

	analysisID := strings.TrimSpace(req.AnalysisID)
	if len(analysisID) < 10 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid analysisId", nil)
		return
	}
	if req.Helpful != "yes" && req.Helpful != "no" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "helpful must be yes or no", nil)
		return
	}

	c.Set("analysisId", analysisID)

	err := h.Telemetry.SetFeedback(c.Request.Context(), analysisID, req.Helpful, strings.TrimSpace(req.Reason))
	switch {
	case errors.Is(err, telemetry.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		return
	case err != nil:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record feedback", nil)
		return
	}

	respond.OK(c, gin.H{"ok": true})
}

type shareFeedbackRequest struct {
	Message    string `json:"message"`
	Email      string `json:"email"`
	AnalysisID string `json:"analysisId"`
	SessionID  string `json:"sessionId"`
	Lang       string `json:"lang"`
	Purpose    string `json:"purpose"`
	Target     string `json:"target"`
}

// shareFeedback stores a free-form feedback message.
func (h *Handler) shareFeedback(c *gin.Context) {
	if !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json", nil)
		return
	}

	var req shareFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "Invalid JSON", nil)
		return
	}

	message := strings.TrimSpace(req.Message)
	if n := utf8.RuneCountInString(message); n < minMessageChars || n > maxMessageChars {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid message", []map[string]string{
			{"field": "message", "issue": "length"},
		})
		return
	}

	msg := Message{
		ID:         uuid.NewString(),
		Message:    message,
		Email:      strings.TrimSpace(req.Email),
		AnalysisID: strings.TrimSpace(req.AnalysisID),
		SessionID:  strings.TrimSpace(req.SessionID),
		Lang:       req.Lang,
		Purpose:    req.Purpose,
		Target:     req.Target,
	}
	if msg.SessionID != "" {
		c.Set("sessionId", msg.SessionID)
	}

	if err := h.Messages.SaveMessage(c.Request.Context(), msg); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store feedback", nil)
		return
	}

	respond.OK(c, gin.H{"ok": true, "id": msg.ID})
}
