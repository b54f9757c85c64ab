package engine

import "strings"

// TaskCategory is the internally classified task family. It is informational:
// it selects lint sub-rules and default output-shape hints, never the rewrite
// template (the caller-declared Purpose does that).
type TaskCategory string

const (
	CategoryCoding          TaskCategory = "coding"
	CategoryDebugging       TaskCategory = "debugging"
	CategoryRefactor        TaskCategory = "refactor"
	CategoryResearch        TaskCategory = "research"
	CategoryMarketing       TaskCategory = "marketing"
	CategoryWriting         TaskCategory = "writing"
	CategorySummarization   TaskCategory = "summarization"
	CategoryTranslation     TaskCategory = "translation"
	CategoryDataExtraction  TaskCategory = "data_extraction"
	CategoryPlanning        TaskCategory = "planning"
	CategoryCustomerSupport TaskCategory = "customer_support"
	CategoryGeneral         TaskCategory = "general"
)

// categoryFamilies lists one keyword family per category, in declaration
// order. Ties between equal scores resolve to the earliest entry.
var categoryFamilies = []struct {
	cat TaskCategory
	pat patternSet
}{
	{CategoryCoding, newPatternSet(
		nil,
		[]string{`typescript|javascript|python|go|rust|java|c\+\+|c#|sql|api|endpoint|nextjs|react|node`},
	)},
	{CategoryDebugging, newPatternSet(
		[]string{`falla|rompe|no anda`},
		[]string{`bug|error|exception|stack|trace|fails|crash`},
	)},
	{CategoryRefactor, newPatternSet(
		[]string{`limpi(ar|á)|optimizar código|mejorar código`},
		[]string{`refactor|restructure|clean up`},
	)},
	{CategoryResearch, newPatternSet(
		[]string{`investig(a|á)|fuentes|estudios|evidencia`},
		[]string{`research|sources|papers|evidence`},
	)},
	{CategoryMarketing, newPatternSet(
		[]string{`anuncio|conversión|marca`},
		[]string{`marketing|ads|copy|seo|cta|conversion|landing|brand`},
	)},
	{CategoryWriting, newPatternSet(
		[]string{`escrib(i|í|e)|redact(a|á)|cuento|guion|artículo`},
		[]string{`write|story|post`},
	)},
	{CategorySummarization, newPatternSet(
		[]string{`resum(i|í|e)|puntos clave`},
		[]string{`summary|summarize|tl;dr`},
	)},
	{CategoryTranslation, newPatternSet(
		[]string{`tradu(c|z)í|traduce|traducir`},
		[]string{`translate|translation`},
	)},
	{CategoryDataExtraction, newPatternSet(
		[]string{`extracción|extraer|campos`},
		[]string{`extract|json|schema|required fields|parse|parser`},
	)},
	{CategoryPlanning, newPatternSet(
		[]string{`cronograma|pasos`},
		[]string{`plan|roadmap|timeline|milestones|checklist|step-by-step`},
	)},
	{CategoryCustomerSupport, newPatternSet(
		[]string{`soporte|cliente|reclamo|queja|disculpa`},
		[]string{`support|ticket|apology`},
	)},
}

// ClassifyTask assigns a task category to free text. Each matched keyword
// family adds one point; debugging gets a one point boost whenever both
// debugging and coding signals are present, so debugging dominates generic
// code words. A strictly highest score wins; an all-zero vector is "general".
func ClassifyTask(core string) TaskCategory {
	lowered := strings.ToLower(core)

	scores := make(map[TaskCategory]int, len(categoryFamilies))
	for _, fam := range categoryFamilies {
		if fam.pat.anyMatch(lowered) {
			scores[fam.cat]++
		}
	}

	if scores[CategoryDebugging] > 0 && scores[CategoryCoding] > 0 {
		scores[CategoryDebugging]++
	}

	best := CategoryGeneral
	bestScore := 0
	for _, fam := range categoryFamilies {
		if scores[fam.cat] > bestScore {
			best = fam.cat
			bestScore = scores[fam.cat]
		}
	}
	if bestScore == 0 {
		return CategoryGeneral
	}
	return best
}
