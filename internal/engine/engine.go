package engine

import (
	"strings"

	"promptea-backend/internal/engine/lint"
)

// DefaultVersion is stamped into results and signatures unless the caller
// injects another one.
const DefaultVersion = "1.0.2"

// Engine is the deterministic analysis pipeline. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	version string
	cal     Calibration
}

// New returns an Engine stamping the given version. An empty version falls
// back to DefaultVersion.
func New(version string) *Engine {
	if version == "" {
		version = DefaultVersion
	}
	return &Engine{version: version, cal: DefaultCalibration()}
}

// NewWithCalibration is New with scoring constants overridden.
func NewWithCalibration(version string, cal Calibration) *Engine {
	e := New(version)
	e.cal = cal
	return e
}

// Version reports the stamped engine version.
func (e *Engine) Version() string { return e.version }

// Analyze runs the full pipeline: normalize, detect structure, lint, extract
// features, score, and build the optimized rewrite. It is total: every input,
// including empty or hostile text, yields a complete result.
func (e *Engine) Analyze(prompt string, target Target, lang Lang, purposeInput string) AnalyzeResult {
	raw := canonicalize(NormalizeText(prompt))
	purpose := NormalizePurpose(purposeInput)
	taskType := taskFromPurpose[purpose]

	kind, sig := ClassifyStructure(raw)
	category := ClassifyTask(raw)

	// Lint and features run over the full input, signature scaffolding
	// included, so re-analyzing an optimized prompt scores the document the
	// user actually has.
	linted := lint.Lint(raw, string(lang), string(category))
	features := ExtractFeatures(raw, taskType, lang)

	if kind == StructureSelf {
		// the rewrite template always carries these sections, even when the
		// generic cues miss them
		features.HasOutputFormat = true
		features.HasConstraints = true
		features.HasGoal = true
	}

	scored := e.cal.Score(taskType, target, features, lang)

	coreForBuild := raw
	coreExtracted := false
	switch kind {
	case StructureSelf:
		if sig.Core != "" {
			coreForBuild = sig.Core
			coreExtracted = true
		}
	case StructureForeign:
		coreForBuild, coreExtracted = ExtractCore(raw)
	}
	coreClean := canonicalize(NormalizeText(coreForBuild))

	var optimized string
	if kind == StructureSelf &&
		sig.Model == strings.ToLower(string(target)) &&
		sig.Purpose == string(purpose) {
		// same model and purpose: the input already is the answer
		optimized = raw
	} else {
		optimized = canonicalize(BuildOptimizedPrompt(e.version, coreClean, taskType, target, lang, purpose))
	}

	words := WordCount(raw)

	return AnalyzeResult{
		Score:           scored.Score,
		Findings:        linted.Findings,
		Recommendations: linted.Recommendations,
		OptimizedPrompt: optimized,
		Stats:           Stats{Words: words, ApproxTokens: ApproxTokensFromWords(words)},
		Meta: Meta{
			EngineVersion:     e.version,
			Lang:              lang,
			Target:            target,
			Purpose:           purpose,
			TaskType:          taskType,
			AlreadyStructured: kind != StructureRaw,
			CoreExtracted:     coreExtracted,
			Confidence:        scored.Confidence,
			ScoreExplain:      scored.Explain,
			ScoreBreakdown:    scored.Breakdown,
			OutputFormat:      linted.OutputFormat,
		},
	}
}
