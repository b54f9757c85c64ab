package telemetry

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"promptea-backend/internal/shared/server/respond"
)

const maxIDList = 50

// blockedKeys are payload keys that could carry prompt text. Any event
// containing one is rejected outright.
var blockedKeys = []string{"prompt", "optimizedPrompt", "input", "text", "content"}

// Handler wires HTTP handlers to the telemetry repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches telemetry routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/telemetry", h.event)
	rg.POST("/telemetry/session", h.session)
}

type eventRequest struct {
	Name          string `json:"name"`
	TS            string `json:"ts"`
	AnalysisID    string `json:"analysisId"`
	SessionID     string `json:"sessionId"`
	EngineVersion string `json:"engineVersion"`

	Lang     string `json:"lang"`
	Target   string `json:"target"`
	Purpose  string `json:"purpose"`
	TaskType string `json:"taskType"`

	Score        int `json:"score"`
	Confidence   int `json:"confidence"`
	Words        int `json:"words"`
	ApproxTokens int `json:"approxTokens"`

	FindingIDs []string `json:"findingIds"`
	RecoIDs    []string `json:"recoIds"`

	OutputFormatKind   string `json:"outputFormatKind"`
	OutputFormatStrict *bool  `json:"outputFormatStrict"`
}

// event is the legacy write path: it persists the same event row the analyze
// endpoint writes. An analysis id is required so retries cannot spawn rows.
func (h *Handler) event(c *gin.Context) {
	if !isJSONRequest(c) {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json", nil)
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "Invalid JSON", nil)
		return
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "Invalid JSON", nil)
		return
	}
	for _, k := range blockedKeys {
		if _, ok := probe[k]; ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid telemetry payload", nil)
			return
		}
	}

	var req eventRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid telemetry payload", nil)
		return
	}

	if req.Name == "" || req.TS == "" || strings.TrimSpace(req.SessionID) == "" || req.EngineVersion == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid telemetry payload", nil)
		return
	}

	analysisID := strings.TrimSpace(req.AnalysisID)
	if len(analysisID) < 10 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysisId is required for telemetry", nil)
		return
	}
	if len(req.FindingIDs) > maxIDList || len(req.RecoIDs) > maxIDList {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "Payload too large", nil)
		return
	}

	c.Set("analysisId", analysisID)
	c.Set("sessionId", req.SessionID)

	ev := Event{
		AnalysisID:         analysisID,
		SessionID:          strings.TrimSpace(req.SessionID),
		Lang:               normalizeLang(req.Lang),
		Target:             defaultString(req.Target, "gpt"),
		Purpose:            strings.TrimSpace(req.Purpose),
		TaskType:           req.TaskType,
		EngineVersion:      defaultString(req.EngineVersion, "unknown"),
		Score:              req.Score,
		Confidence:         req.Confidence,
		Words:              req.Words,
		ApproxTokens:       req.ApproxTokens,
		FindingIDs:         req.FindingIDs,
		RecoIDs:            req.RecoIDs,
		OutputFormatKind:   req.OutputFormatKind,
		OutputFormatStrict: req.OutputFormatStrict,
	}

	if err := h.Repo.UpsertEvent(c.Request.Context(), ev); err != nil {
		respond.Error(c, http.StatusInternalServerError, "telemetry_write_failed", "Telemetry write failed", nil)
		return
	}

	respond.OK(c, gin.H{"ok": true})
}

type sessionRequest struct {
	SessionID string `json:"sessionId"`
	Lang      string `json:"lang"`
}

func (h *Handler) session(c *gin.Context) {
	if !isJSONRequest(c) {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json", nil)
		return
	}

	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "Invalid JSON", nil)
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if len(sessionID) < 10 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid sessionId", nil)
		return
	}

	c.Set("sessionId", sessionID)

	if err := h.Repo.TouchSession(c.Request.Context(), sessionID, normalizeLang(req.Lang), time.Now().UTC()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "telemetry_write_failed", "Telemetry write failed", nil)
		return
	}

	respond.OK(c, gin.H{"ok": true})
}

func isJSONRequest(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Content-Type"), "application/json")
}

func normalizeLang(lang string) string {
	if lang == "en" {
		return "en"
	}
	return "es"
}

func defaultString(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
