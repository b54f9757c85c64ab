package engine

import (
	"regexp"
	"strings"
)

// StructureKind classifies the input before any rewriting happens.
type StructureKind int

const (
	// StructureRaw is free-form text with no recognizable scaffold.
	StructureRaw StructureKind = iota
	// StructureForeign is a generic multi-section template not produced by
	// this engine.
	StructureForeign
	// StructureSelf is the engine's own optimized output, carrying a
	// parseable signature.
	StructureSelf
)

// Signature is the engine's self-identifying header parsed out of an
// already-optimized prompt. Fields the header does not carry stay empty;
// a malformed near-signature degrades to empty fields rather than an error.
type Signature struct {
	Version  string
	Model    string
	Purpose  string
	TaskType string
	Core     string
}

var (
	signatureLineRe = regexp.MustCompile(`(?im)^PROMPTEA:\s*v?([0-9.]+)\s*$`)
	signatureHeadRe = regexp.MustCompile(`(?i)^PROMPTEA:\s*v`)
	modelLineRe     = regexp.MustCompile(`(?im)^MODEL:\s*(.+)$`)
	purposeLineRe   = regexp.MustCompile(`(?im)^PURPOSE:\s*(.+)$`)
	taskTypeLineRe  = regexp.MustCompile(`(?im)^TASK_TYPE:\s*(.+)$`)
	signatureCoreRe = regexp.MustCompile(`(?is)\nTASK:\s*\n(.*?)(?:\n\n(?:OUTPUT FORMAT:|CONSTRAINTS:|RESTRICCIONES:)\s*\n|\z)`)

	xmlWrapperRe = regexp.MustCompile(`(?i)<promptea\b`)
	cdataTaskRe  = regexp.MustCompile(`(?is)<task><!\[cdata\[\s*(.*?)\s*\]\]></task>`)
)

// sectionHeaderRes is the closed set of known section header lines shared by
// structure detection and core extraction.
var sectionHeaderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^promptea\s*:`),
	regexp.MustCompile(`(?i)^<promptea\b`),

	regexp.MustCompile(`(?i)^model\s*:`),
	regexp.MustCompile(`(?i)^purpose\s*:`),
	regexp.MustCompile(`(?i)^task_type\s*:`),
	regexp.MustCompile(`(?i)^instruc(tions|ciones)\s*:`),
	regexp.MustCompile(`(?i)^(task|tarea)\s*:`),
	regexp.MustCompile(`(?i)^(output format|formato de salida)\s*:`),
	regexp.MustCompile(`(?i)^(recommended format|formato recomendado)\s*:`),
	regexp.MustCompile(`(?i)^(constraints|restricciones|límites|limites)\s*:`),
	regexp.MustCompile(`(?i)^(success criteria|criterios de (éxito|exito))\s*:`),
	regexp.MustCompile(`(?i)^(questions|preguntas)\s*:`),
	regexp.MustCompile(`(?i)^if you lack information`),
	regexp.MustCompile(`(?i)^si te falta información`),
}

func isSectionHeader(line string) bool {
	t := strings.TrimSpace(line)
	for _, re := range sectionHeaderRes {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

// IsSelfSignature reports whether the text opens with the engine's own
// signature line. The version number is intentionally unconstrained so a
// prompt built under an older engine version is still recognized.
func IsSelfSignature(text string) bool {
	return signatureHeadRe.MatchString(strings.TrimSpace(text))
}

// ParseSignature extracts the signature header fields from an optimized
// prompt, or returns nil when no signature line is present.
func ParseSignature(raw string) *Signature {
	m := signatureLineRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	sig := &Signature{Version: m[1]}
	if mm := modelLineRe.FindStringSubmatch(raw); mm != nil {
		sig.Model = strings.ToLower(strings.TrimSpace(mm[1]))
	}
	if mm := purposeLineRe.FindStringSubmatch(raw); mm != nil {
		sig.Purpose = strings.ToLower(strings.TrimSpace(mm[1]))
	}
	if mm := taskTypeLineRe.FindStringSubmatch(raw); mm != nil {
		sig.TaskType = strings.ToLower(strings.TrimSpace(mm[1]))
	}
	if mm := signatureCoreRe.FindStringSubmatch(raw); mm != nil {
		sig.Core = strings.TrimSpace(mm[1])
	}
	return sig
}

// DetectStructured reports whether the input already is a multi-section
// scaffold: either an XML-like wrapper with a CDATA task block, or at least
// two distinct lines matching known section headers. The two-header
// threshold avoids false positives from a single colon-terminated line.
func DetectStructured(input string) bool {
	s := NormalizeText(input)

	if xmlWrapperRe.MatchString(s) || cdataTaskRe.MatchString(s) {
		return true
	}

	hits := 0
	for _, line := range strings.Split(s, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if isSectionHeader(t) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

// ClassifyStructure runs structure detection once and returns the kind plus
// the parsed signature when the input is the engine's own output.
func ClassifyStructure(input string) (StructureKind, *Signature) {
	if sig := ParseSignature(input); sig != nil {
		return StructureSelf, sig
	}
	if DetectStructured(input) {
		return StructureForeign, nil
	}
	return StructureRaw, nil
}

// taskSectionRe captures a TASK:/TAREA: section up to the next known header
// or end of text.
var taskSectionRe = regexp.MustCompile(
	`(?is)(?:^|\n)\s*(?:task|tarea)\s*:\s*\n?(.*?)` +
		`(?:\n\s*(?:promptea|model|purpose|task_type|instructions|instrucciones|output format|formato de salida|recommended format|formato recomendado|constraints|restricciones|límites|limites|success criteria|criterios de (?:éxito|exito)|questions|preguntas)\s*:|\n\s*if you lack information|\n\s*si te falta información|\z)`)

// blacklistRes marks boilerplate lines stripped by the last-resort
// extraction strategy: scaffold headers and role declarations.
var blacklistRes = append([]*regexp.Regexp{
	regexp.MustCompile(`(?i)^</promptea>`),
	regexp.MustCompile(`(?i)^</?output_format\b`),
	regexp.MustCompile(`(?i)^act as\b`),
	regexp.MustCompile(`(?i)^actuá como\b`),
	regexp.MustCompile(`(?i)^actua como\b`),
	regexp.MustCompile(`(?i)^answer exclusively\b`),
	regexp.MustCompile(`(?i)^respond(e|é) exclusivamente\b`),
}, sectionHeaderRes...)

// ExtractCore isolates the user's task payload from a detected scaffold.
// Strategies are ordered from the most structurally confident signal to the
// least; the first that produces non-empty text wins. When nothing matches,
// the original text comes back unchanged with extracted=false.
func ExtractCore(input string) (string, bool) {
	raw := NormalizeText(input)

	// 1) CDATA-wrapped task block.
	if m := cdataTaskRe.FindStringSubmatch(raw); m != nil {
		if core := NormalizeText(m[1]); core != "" {
			return core, true
		}
	}

	// 2) TASK: section up to the next known header.
	if m := taskSectionRe.FindStringSubmatch(raw); m != nil {
		if core := NormalizeText(m[1]); core != "" {
			return core, true
		}
	}

	// 3) Line state machine: accumulate lines after a TASK header until the
	// next known header.
	lines := strings.Split(raw, "\n")
	inTask := false
	var taskLines []string
	for _, line := range lines {
		t := strings.TrimSpace(line)

		if taskHeaderLineRe.MatchString(t) {
			inTask = true
			continue
		}
		if t == "" {
			if inTask {
				taskLines = append(taskLines, line)
			}
			continue
		}
		if inTask && isSectionHeader(t) {
			break
		}
		if inTask {
			taskLines = append(taskLines, line)
		}
	}
	if core := NormalizeText(strings.Join(taskLines, "\n")); core != "" {
		return core, true
	}

	// 4) Strip every known boilerplate line and keep the remainder, but only
	// when that actually removed something.
	var kept []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if matchesAny(blacklistRes, t) {
			continue
		}
		kept = append(kept, line)
	}
	if candidate := NormalizeText(strings.Join(kept, "\n")); candidate != "" && len(candidate) < len(raw) {
		return candidate, true
	}

	return raw, false
}

var taskHeaderLineRe = regexp.MustCompile(`(?i)^(task|tarea)\s*:`)

func matchesAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
