package lint

import (
	"regexp"
	"strings"
)

func includesAny(low string, list []string) bool {
	for _, x := range list {
		if strings.Contains(low, x) {
			return true
		}
	}
	return false
}

var (
	numberedStepRe = regexp.MustCompile(`(?m)^\s*\d+\s*[).:\-]\s+`)
	codeFenceRe    = regexp.MustCompile("(?s)```.*?```")
	errorTypeRe    = regexp.MustCompile(`(?i)\b(typeerror|referenceerror|syntaxerror)\b`)
	versionNumRe   = regexp.MustCompile(`\b\d+\.\d+(\.\d+)?\b`)
	quotedInputRe  = regexp.MustCompile(`"[^"]{10,}"`)

	jsonCodeBlockRe  = regexp.MustCompile("(?is)```json.*?\\{.*?[\"'][^\"']+[\"']\\s*:\\s*.*?\\}.*?```")
	jsonObjectRe     = regexp.MustCompile(`(?s)\{.*?["'][A-Za-z0-9_.-]+["']\s*:\s*.*?\}`)
	jsonPropertiesRe = regexp.MustCompile(`(?i)("properties"|\bproperties)\s*:`)
	jsonTypeRe       = regexp.MustCompile(`(?i)"type"\s*:\s*"(object|array|string|number|boolean)"`)
	interfaceDeclRe  = regexp.MustCompile(`(?is)\binterface\s+\w+\s*\{.*?\}`)
	zodObjectRe      = regexp.MustCompile(`(?i)\bz\.object\s*\(`)
	baseModelRe      = regexp.MustCompile(`(?i)\bBaseModel\b`)
)

func hasNumberedSteps(p string) bool {
	return len(numberedStepRe.FindAllString(p, -1)) >= 2
}

func hasErrorSnippet(p string) bool {
	low := strings.ToLower(p)
	return strings.Contains(low, "error") ||
		strings.Contains(low, "exception") ||
		strings.Contains(low, "traceback") ||
		strings.Contains(low, "stacktrace") ||
		errorTypeRe.MatchString(p) ||
		codeFenceRe.MatchString(p)
}

func hasEnvironmentHints(p string) bool {
	low := strings.ToLower(p)
	return includesAny(low, []string{
		"node", "npm", "pnpm", "yarn", "python", "java", "go", "rust",
		"next", "react", "typescript", "ts", "os",
		"windows", "mac", "linux", "docker",
		"version", "v0.", "v1.", "v2.", "v3.",
	}) || versionNumRe.MatchString(p)
}

func hasInputDataForExtraction(p string) bool {
	low := strings.ToLower(p)
	return strings.Contains(low, "text:") ||
		strings.Contains(low, "texto:") ||
		strings.Contains(low, "input:") ||
		strings.Contains(low, "entrada:") ||
		codeFenceRe.MatchString(p) ||
		quotedInputRe.MatchString(p)
}

// hasStrongSchema checks for a real dataset definition: a JSON object or
// array example, JSON-Schema markers, or a formal type declaration. A bare
// "Fields:" bullet list does not count.
func hasStrongSchema(p string) bool {
	if jsonCodeBlockRe.MatchString(p) {
		return true
	}
	if jsonObjectRe.MatchString(p) {
		return true
	}
	if jsonPropertiesRe.MatchString(p) || jsonTypeRe.MatchString(p) {
		return true
	}
	if interfaceDeclRe.MatchString(p) || zodObjectRe.MatchString(p) || baseModelRe.MatchString(p) {
		return true
	}
	return false
}

func wantsJSON(format *OutputFormat, prompt string) bool {
	low := strings.ToLower(prompt)
	return (format != nil && format.Kind == FormatJSON) ||
		strings.Contains(low, "only json") ||
		strings.Contains(low, "solo json") ||
		strings.Contains(low, "return only valid json") ||
		strings.Contains(low, "json")
}

// isExtractionLike fires on the classifier hint or on direct keywords, so
// the rule still applies when the classifier disagrees.
func isExtractionLike(taskHint, prompt, lang string) bool {
	if taskHint == "data_extraction" {
		return true
	}
	low := strings.ToLower(prompt)
	if lang == "es" {
		return includesAny(low, []string{"extrae", "extraer", "extracción", "parsea", "parseá", "campos:", "claves:", "fields:"})
	}
	return includesAny(low, []string{"extract", "extraction", "parse", "fields:", "keys:"})
}

func isDebugLike(taskHint, prompt, lang string) bool {
	if taskHint == "debugging" {
		return true
	}
	low := strings.ToLower(prompt)
	if lang == "es" {
		return includesAny(low, []string{"bug", "error", "crash", "no funciona", "rompe", "stacktrace", "traceback"})
	}
	return includesAny(low, []string{"bug", "error", "crash", "doesn't work", "stacktrace", "traceback"})
}

func applyDataExtractionRules(l *linter, taskHint string) {
	if !isExtractionLike(taskHint, l.prompt, l.lang) {
		return
	}

	if !hasInputDataForExtraction(l.prompt) {
		l.addFinding(FindingMissingInputData, SeverityHigh)
		l.addReco(RecoAddInputData, ImpactHigh)
	}

	if wantsJSON(l.outputFormat, l.prompt) && !hasStrongSchema(l.prompt) {
		l.addFinding(FindingMissingSchema, SeverityHigh)
		l.addReco(RecoAddSchema, ImpactHigh)
	}
}

func applyDebuggingRules(l *linter, taskHint string) {
	if !isDebugLike(taskHint, l.prompt, l.lang) {
		return
	}

	if !hasErrorSnippet(l.prompt) {
		l.addFinding(FindingMissingErrorMessage, SeverityHigh)
		l.addReco(RecoAddErrorMessage, ImpactHigh)
	}

	if !hasNumberedSteps(l.prompt) && !strings.Contains(strings.ToLower(l.prompt), "steps") {
		l.addFinding(FindingMissingReproSteps, SeverityMedium)
		l.addReco(RecoAddReproSteps, ImpactMedium)
	}

	if !hasEnvironmentHints(l.prompt) {
		l.addFinding(FindingMissingEnvironment, SeverityMedium)
		l.addReco(RecoAddEnvironment, ImpactLow)
	}
}

var (
	maxLinesESRe   = regexp.MustCompile(`máx\s*\d+\s*l[ií]neas`)
	maxLinesENRe   = regexp.MustCompile(`max\s*\d+\s*lines`)
	oneSentenceRes = []*regexp.Regexp{
		regexp.MustCompile(`una\s*frase`),
		regexp.MustCompile(`one\s*sentence`),
	}
)

func applyContradictions(l *linter) {
	low := strings.ToLower(l.prompt)

	wantsOnlyJSON := includesAny(low, []string{"only json", "solo json", "return only valid json", "json only"})

	var wantsExplanation bool
	if l.lang == "es" {
		wantsExplanation = includesAny(low, []string{"explic", "razon", "coment", "paso a paso"})
	} else {
		wantsExplanation = includesAny(low, []string{"explain", "reason", "comment", "step by step"})
	}

	// JSON-only output and an explanation cannot both be honored.
	if wantsOnlyJSON && wantsExplanation {
		l.addFinding(FindingContradiction, SeverityHigh)
	}

	var wantsDetailed bool
	if l.lang == "es" {
		wantsDetailed = includesAny(low, []string{"muy detall", "bien detall"})
	} else {
		wantsDetailed = includesAny(low, []string{"very detailed", "in detail"})
	}

	wantsSuperShort := maxLinesESRe.MatchString(low) ||
		maxLinesENRe.MatchString(low) ||
		matchAny(oneSentenceRes, low)

	if wantsDetailed && wantsSuperShort {
		l.addFinding(FindingContradiction, SeverityMedium)
	}
}

// injectionPhrases is a closed list of jailbreak and exfiltration phrases,
// bilingual. Matching is plain substring except the DAN alias, which needs a
// word boundary.
var injectionPhrases = []string{
	// classic jailbreaks
	"ignore all previous instructions",
	"ignore previous instructions",
	"disregard the above",
	"developer mode",
	"jailbreak",
	"do anything now",

	// system prompt / hidden messages
	"system prompt",
	"reveal the system prompt",
	"show me your system prompt",
	"developer message",
	"hidden instructions",
	"confidential instructions",

	// ES variants
	"ignorá todas las instrucciones anteriores",
	"ignora todas las instrucciones anteriores",
	"modo desarrollador",
	"revelá el prompt del sistema",
	"revela el prompt del sistema",
	"mostrame el prompt del sistema",
	"instrucciones ocultas",

	// exfil-like
	"api key",
	"secret key",
	"password",
	"token",
	"private key",
	"keys and secrets",
	"credenciales",
	"contraseña",
	"clave privada",
}

var danAliasRe = regexp.MustCompile(`\bdan\b`)

func applyInjectionRules(l *linter) {
	low := strings.ToLower(l.prompt)
	if includesAny(low, injectionPhrases) || danAliasRe.MatchString(low) {
		l.addFinding(FindingPromptInjection, SeverityHigh)
	}
}
