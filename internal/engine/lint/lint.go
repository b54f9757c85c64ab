// Package lint turns a prompt into deduplicated findings and ranked
// recommendations using a fixed rule table with a localized text catalog.
package lint

import (
	"regexp"
	"strings"
)

// linter accumulates findings and recommendations for one pass. The first
// occurrence of an id wins; later pushes with the same id are dropped.
type linter struct {
	prompt string
	lang   string

	outputFormat *OutputFormat

	findings     []Finding
	recos        []Recommendation
	seenFindings map[string]bool
	seenRecos    map[string]bool
}

func (l *linter) addFinding(id string, severity Severity) {
	if l.seenFindings[id] {
		return
	}
	l.seenFindings[id] = true
	t := findingText(id, l.lang)
	l.findings = append(l.findings, Finding{
		ID:          id,
		Severity:    severity,
		Title:       t.Title,
		Description: t.Description,
		Fix:         t.Fix,
	})
}

func (l *linter) addReco(id string, impact Impact) {
	if l.seenRecos[id] {
		return
	}
	l.seenRecos[id] = true
	t := recoText(id, l.lang)
	l.recos = append(l.recos, Recommendation{
		ID:     id,
		Impact: impact,
		Title:  t.Title,
		Detail: t.Detail,
	})
}

var (
	goalCueRes = []*regexp.Regexp{
		regexp.MustCompile(`objetivo\s*:`),
		regexp.MustCompile(`goal\s*:`),
		regexp.MustCompile(`\bquiero\b`),
		regexp.MustCompile(`\bi want\b`),
		regexp.MustCompile(`\bnecesito\b`),
		regexp.MustCompile(`\bi need\b`),
	}

	constraintCueRes = []*regexp.Regexp{
		regexp.MustCompile(`restric`),
		regexp.MustCompile(`constraints?`),
	}

	constraintCueWords = []string{"máx", "max ", "sin ", "avoid", "no ", "tono", "tone", "largo", "length"}

	successCueRes = []*regexp.Regexp{
		regexp.MustCompile(`criterio(s)? de éxito`),
		regexp.MustCompile(`success criteria`),
		regexp.MustCompile(`que incluya`),
		regexp.MustCompile(`must include`),
	}

	contextCuesES = []string{"contexto", "escenario", "audiencia", "para quién", "para quien", "para qué", "para que", "uso", "datos disponibles", "entrada", "inputs"}
	contextCuesEN = []string{"context", "scenario", "audience", "for who", "intended use", "available info", "input", "inputs"}

	workMaterialWords = []string{
		"texto:", "text:", "logs", "log", "stacktrace", "traceback", "error:",
		"archivo", "file", "dataset", "csv", "código", "code",
	}

	wordSplitRe = regexp.MustCompile(`\s+`)
)

func wordsCount(s string) int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	return len(wordSplitRe.Split(trimmed, -1))
}

// Lint applies the base rules, the task-aware sub-rules selected by the
// classifier hint (or by direct keyword match), and the contradiction and
// injection passes, in that order. Results are deduplicated by id.
func Lint(prompt, lang, taskHint string) Result {
	p := strings.TrimSpace(prompt)
	low := strings.ToLower(p)

	l := &linter{
		prompt:       p,
		lang:         lang,
		seenFindings: make(map[string]bool),
		seenRecos:    make(map[string]bool),
	}

	w := wordsCount(p)

	// -------- base rules --------
	if w < 10 {
		severity := SeverityMedium
		if w < 5 {
			severity = SeverityHigh
		}
		l.addFinding(FindingTooShort, severity)
	}

	if !matchAny(goalCueRes, low) {
		l.addFinding(FindingMissingGoal, SeverityHigh)
		l.addReco(RecoAddGoal, ImpactHigh)
	}

	l.outputFormat = DetectOutputFormat(p)
	if l.outputFormat == nil {
		l.addFinding(FindingMissingOutputFormat, SeverityHigh)
		l.addReco(RecoDefineOutputFormat, ImpactHigh)
	}

	hasConstraints := matchAny(constraintCueRes, low) || includesAny(low, constraintCueWords)
	if !hasConstraints {
		l.addFinding(FindingMissingConstraints, SeverityMedium)
		l.addReco(RecoAddConstraints, ImpactMedium)
	}

	if !matchAny(successCueRes, low) {
		l.addReco(RecoAddSuccessCriteria, ImpactMedium)
	}

	// Missing context: only when no contextual cue and no work material is
	// present, and the word count sits in the plausible prose band. The band
	// bounds are calibration constants; keep them as-is.
	contextCues := contextCuesEN
	if lang == "es" {
		contextCues = contextCuesES
	}
	hasContextCues := includesAny(low, contextCues)
	hasWorkMaterial := strings.Contains(p, "```") || includesAny(low, workMaterialWords)

	if !hasContextCues && !hasWorkMaterial && w >= 4 && w <= 120 {
		l.addFinding(FindingMissingContext, SeverityHigh)
		l.addReco(RecoAddContext, ImpactHigh)
	}

	// -------- task-aware rules --------
	applyDataExtractionRules(l, taskHint)
	applyDebuggingRules(l, taskHint)

	// -------- cross-cutting passes, always last --------
	applyContradictions(l)
	applyInjectionRules(l)

	return Result{
		OutputFormat:    l.outputFormat,
		Findings:        l.findings,
		Recommendations: l.recos,
	}
}
