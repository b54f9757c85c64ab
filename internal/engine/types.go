package engine

import "promptea-backend/internal/engine/lint"

// Lang is the UI language the analysis is localized for.
type Lang string

const (
	LangES Lang = "es"
	LangEN Lang = "en"
)

// Target identifies the model the optimized prompt is tuned for.
type Target string

const (
	TargetGPT      Target = "gpt"
	TargetGemini   Target = "gemini"
	TargetGrok     Target = "grok"
	TargetClaude   Target = "claude"
	TargetKimi     Target = "kimi"
	TargetDeepseek Target = "deepseek"
)

// Purpose is the caller-declared intent category. It drives the rewrite
// template; the internally classified task category does not.
type Purpose string

const (
	PurposeText      Purpose = "text"
	PurposeStudy     Purpose = "study"
	PurposeCode      Purpose = "code"
	PurposeData      Purpose = "data"
	PurposeImage     Purpose = "image"
	PurposeMarketing Purpose = "marketing"
)

// TaskType is the purpose-derived task label stamped into the optimized
// prompt and used by the scorer.
type TaskType string

const (
	TaskText      TaskType = "text"
	TaskStudy     TaskType = "study"
	TaskCoding    TaskType = "coding"
	TaskData      TaskType = "data"
	TaskImage     TaskType = "image"
	TaskMarketing TaskType = "marketing"
)

var taskFromPurpose = map[Purpose]TaskType{
	PurposeText:      TaskText,
	PurposeStudy:     TaskStudy,
	PurposeCode:      TaskCoding,
	PurposeData:      TaskData,
	PurposeImage:     TaskImage,
	PurposeMarketing: TaskMarketing,
}

// NormalizePurpose maps arbitrary input to a valid Purpose. The legacy UI
// sometimes sends "data_json" for the data purpose.
func NormalizePurpose(raw string) Purpose {
	if raw == "data_json" {
		return PurposeData
	}
	switch p := Purpose(raw); p {
	case PurposeText, PurposeStudy, PurposeCode, PurposeData, PurposeImage, PurposeMarketing:
		return p
	}
	return PurposeText
}

// Features is the fixed signal vector computed over the text under analysis.
// Every field derives solely from the text; there is no hidden state.
type Features struct {
	Words              int
	HasGoal            bool
	HasInputs          bool
	HasAudience        bool
	HasExamples        bool
	HasConstraints     bool
	HasOutputFormat    bool
	HasSuccessCriteria bool
	HasTone            bool
	HasLengthHint      bool
	HasTimeframe       bool
	HasRegion          bool
	HasErrorDetails    bool
	HasReproSteps      bool
	InjectionLike      bool
	Contradictions     bool
	LanguageMismatch   bool
}

// ScoreBreakdown holds the six weighted components, each clamped to [0,100].
type ScoreBreakdown struct {
	Clarity       int `json:"clarity"`
	Context       int `json:"context"`
	Constraints   int `json:"constraints"`
	Output        int `json:"output"`
	Verifiability int `json:"verifiability"`
	Safety        int `json:"safety"`
}

// Stats are word and approximate token counts over the full input.
type Stats struct {
	Words        int `json:"words"`
	ApproxTokens int `json:"approxTokens"`
}

// Meta carries result metadata alongside the score.
type Meta struct {
	EngineVersion string `json:"engineVersion"`

	Lang     Lang     `json:"lang"`
	Target   Target   `json:"target"`
	Purpose  Purpose  `json:"purpose"`
	TaskType TaskType `json:"taskType"`

	AlreadyStructured bool `json:"alreadyStructured"`
	CoreExtracted     bool `json:"coreExtracted"`

	Confidence     int            `json:"confidence"`
	ScoreExplain   []string       `json:"scoreExplain"`
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`

	OutputFormat *lint.OutputFormat `json:"outputFormat"`
}

// AnalyzeResult is the aggregate returned by Engine.Analyze. Every entity is
// constructed fresh per call; nothing persists inside the engine.
type AnalyzeResult struct {
	Score           int                   `json:"score"`
	Findings        []lint.Finding        `json:"findings"`
	Recommendations []lint.Recommendation `json:"recommendations"`
	OptimizedPrompt string                `json:"optimizedPrompt"`
	Stats           Stats                 `json:"stats"`
	Meta            Meta                  `json:"meta"`
}
