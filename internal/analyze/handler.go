package analyze

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promptea-backend/internal/engine"
	"promptea-backend/internal/engine/lint"
	"promptea-backend/internal/shared/metrics"
	"promptea-backend/internal/shared/server/respond"
	logger "promptea-backend/internal/shared/telemetry"
	"promptea-backend/internal/telemetry"
)

const (
	maxPromptChars   = 20000
	telemetryTimeout = 3 * time.Second
)

var validTargets = map[string]bool{
	"gpt": true, "gemini": true, "grok": true,
	"claude": true, "kimi": true, "deepseek": true,
}

var validPurposes = map[string]bool{
	"text": true, "study": true, "code": true,
	"data": true, "image": true, "marketing": true,
	"data_json": true,
}

// Handler wires the analyze endpoint to the engine and the telemetry repo.
type Handler struct {
	Engine    *engine.Engine
	Telemetry telemetry.Repo
	Debug     bool
}

// NewHandler constructs a Handler.
func NewHandler(eng *engine.Engine, repo telemetry.Repo, debug bool) *Handler {
	return &Handler{Engine: eng, Telemetry: repo, Debug: debug}
}

// RegisterRoutes attaches the analyze route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

type analyzeRequest struct {
	Prompt    string `json:"prompt"`
	Target    string `json:"target"`
	Lang      string `json:"lang"`
	SessionID string `json:"sessionId"`
	Purpose   string `json:"purpose"`
}

type analyzeMeta struct {
	engine.Meta
	AnalysisID string `json:"analysisId"`
}

type analyzeResponse struct {
	Score           int                   `json:"score"`
	Findings        []lint.Finding        `json:"findings"`
	Recommendations []lint.Recommendation `json:"recommendations"`
	OptimizedPrompt string                `json:"optimizedPrompt"`
	Stats           engine.Stats          `json:"stats"`
	Meta            analyzeMeta           `json:"meta"`
}

func (h *Handler) analyze(c *gin.Context) {
	if !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json", nil)
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncAnalyzeRejected()
		respond.Error(c, http.StatusBadRequest, "invalid_json", "Invalid JSON", nil)
		return
	}

	if details := validateRequest(&req); len(details) > 0 {
		metrics.IncAnalyzeRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid analyze request", details)
		return
	}

	// the UI language header wins over the body field when both are sent
	lang := req.Lang
	if ui := strings.TrimSpace(c.GetHeader("X-UI-Lang")); ui == "es" || ui == "en" {
		lang = ui
	}

	analysisID := uuid.NewString()
	sessionID := strings.TrimSpace(req.SessionID)
	c.Set("analysisId", analysisID)
	c.Set("sessionId", sessionID)

	start := time.Now()
	result := h.Engine.Analyze(req.Prompt, engine.Target(req.Target), engine.Lang(lang), req.Purpose)
	metrics.IncAnalyzeRequest()
	metrics.ObserveAnalyzeDurationMs(float64(time.Since(start)) / float64(time.Millisecond))

	if h.Debug {
		logger.Info("analyze", map[string]any{
			"analysisId": analysisID,
			"sessionId":  sessionID,
			"lang":       lang,
			"target":     req.Target,
			"purpose":    string(result.Meta.Purpose),
			"score":      result.Score,
			"confidence": result.Meta.Confidence,
			"words":      result.Stats.Words,
			"findings":   len(result.Findings),
		})
	}

	go h.recordEvent(analysisID, sessionID, result)

	c.Header("X-Engine-Version", h.Engine.Version())
	respond.OK(c, analyzeResponse{
		Score:           result.Score,
		Findings:        result.Findings,
		Recommendations: result.Recommendations,
		OptimizedPrompt: result.OptimizedPrompt,
		Stats:           result.Stats,
		Meta:            analyzeMeta{Meta: result.Meta, AnalysisID: analysisID},
	})
}

// recordEvent writes the analysis event off the request path. The response
// does not wait on it and a write failure is only logged.
func (h *Handler) recordEvent(analysisID, sessionID string, result engine.AnalyzeResult) {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryTimeout)
	defer cancel()

	findingIDs := make([]string, 0, len(result.Findings))
	for _, f := range result.Findings {
		findingIDs = append(findingIDs, f.ID)
	}
	recoIDs := make([]string, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		if rec.ID != "" {
			recoIDs = append(recoIDs, rec.ID)
		}
	}

	ev := telemetry.Event{
		AnalysisID:    analysisID,
		SessionID:     sessionID,
		Lang:          string(result.Meta.Lang),
		Target:        string(result.Meta.Target),
		Purpose:       string(result.Meta.Purpose),
		TaskType:      string(result.Meta.TaskType),
		EngineVersion: result.Meta.EngineVersion,
		Score:         result.Score,
		Confidence:    result.Meta.Confidence,
		Words:         result.Stats.Words,
		ApproxTokens:  result.Stats.ApproxTokens,
		FindingIDs:    findingIDs,
		RecoIDs:       recoIDs,
		TS:            time.Now().UTC(),
	}
	if f := result.Meta.OutputFormat; f != nil {
		ev.OutputFormatKind = string(f.Kind)
		strict := f.Strict
		ev.OutputFormatStrict = &strict
	}

	if err := h.Telemetry.UpsertEvent(ctx, ev); err != nil {
		metrics.IncTelemetryFailed()
		logger.Error("telemetry write failed", map[string]any{
			"analysisId": analysisID,
			"err":        err.Error(),
		})
		return
	}
	metrics.IncTelemetryWrite()
}

func validateRequest(req *analyzeRequest) []map[string]string {
	var details []map[string]string

	promptLen := utf8.RuneCountInString(req.Prompt)
	if promptLen < 1 {
		details = append(details, map[string]string{"field": "prompt", "issue": "required"})
	} else if promptLen > maxPromptChars {
		details = append(details, map[string]string{"field": "prompt", "issue": "too_long"})
	}

	if !validTargets[req.Target] {
		details = append(details, map[string]string{"field": "target", "issue": "invalid"})
	}
	if req.Lang != "es" && req.Lang != "en" {
		details = append(details, map[string]string{"field": "lang", "issue": "invalid"})
	}
	if len(strings.TrimSpace(req.SessionID)) < 10 {
		details = append(details, map[string]string{"field": "sessionId", "issue": "too_short"})
	}
	if !validPurposes[req.Purpose] {
		details = append(details, map[string]string{"field": "purpose", "issue": "invalid"})
	}

	return details
}
