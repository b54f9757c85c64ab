package engine

import "regexp"

// patternSet holds one signal's keyword family, keyed by language. Matching
// is always the union of both languages; the split exists so the ES and EN
// sides of a signal evolve together instead of drifting across components.
type patternSet struct {
	ES []*regexp.Regexp
	EN []*regexp.Regexp
}

func newPatternSet(es, en []string) patternSet {
	return patternSet{ES: compilePatterns(es), EN: compilePatterns(en)}
}

func compilePatterns(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}

// anyMatch reports whether any pattern of either language matches the
// lowercased text.
func (p patternSet) anyMatch(lowered string) bool {
	for _, re := range p.ES {
		if re.MatchString(lowered) {
			return true
		}
	}
	for _, re := range p.EN {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}

// matchLang reports whether any pattern of the given language matches.
func (p patternSet) matchLang(lang Lang, lowered string) bool {
	pats := p.EN
	if lang == LangES {
		pats = p.ES
	}
	for _, re := range pats {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}

// Feature signal names. One entry per Features field derived from keywords.
const (
	sigGoal            = "goal"
	sigInputs          = "inputs"
	sigAudience        = "audience"
	sigExamples        = "examples"
	sigConstraints     = "constraints"
	sigOutputFormat    = "output_format"
	sigSuccessCriteria = "success_criteria"
	sigTone            = "tone"
	sigLengthHint      = "length_hint"
	sigTimeframe       = "timeframe"
	sigRegion          = "region"
	sigErrorDetails    = "error_details"
	sigReproSteps      = "repro_steps"
	sigInjection       = "injection"
	sigBrief           = "brief"
	sigVeryDetailed    = "very_detailed"
	sigNoAssume        = "no_assume"
	sigInvent          = "invent"
)

// signalTable is the single localized pattern table for feature extraction.
var signalTable = map[string]patternSet{
	sigGoal: newPatternSet(
		[]string{`objetivo|meta|quiero|necesito|busco|mi objetivo`},
		[]string{`goal|objective`},
	),
	sigInputs: newPatternSet(
		[]string{`datos de entrada|texto:|contexto:|código:`},
		[]string{`input|dataset|csv|json|logs:|code:`},
	),
	sigAudience: newPatternSet(
		[]string{`audiencia|para (quién|quien)|cliente|usuario final`},
		[]string{`audience|stakeholders`},
	),
	sigExamples: newPatternSet(
		[]string{`ejemplo|por ejemplo`},
		[]string{`example|e\.g\.`},
	),
	sigConstraints: newPatternSet(
		[]string{`restricciones|límites|limites|no (incluyas|uses)|debe`},
		[]string{`constraints|avoid|no use|must`},
	),
	sigOutputFormat: newPatternSet(
		[]string{`formato de salida|tabla|viñetas|pasos`},
		[]string{`output format|json|table|bullets|steps`},
	),
	sigSuccessCriteria: newPatternSet(
		[]string{`criterios de (éxito|exito)|validar|verificar|aceptación`},
		[]string{`success criteria|verify|acceptance`},
	),
	sigTone: newPatternSet(
		[]string{`tono|amigable|serio|directo`},
		[]string{`tone|formal|casual`},
	),
	sigLengthHint: newPatternSet(
		[]string{`breve|corto|extenso|largo|detallado`},
		[]string{`short|brief|long|detailed`},
	),
	sigTimeframe: newPatternSet(
		[]string{`reciente|últim|periodo|período`},
		[]string{`20\d\d|last|recent|timeframe`},
	),
	sigRegion: newPatternSet(
		[]string{`argentina|latam|europa|españa|región|zona horaria`},
		[]string{`usa|europe|spain|region|timezone`},
	),
	sigErrorDetails: newPatternSet(
		[]string{`mensaje de error|falla`},
		[]string{`error|exception|stack|trace|log|stack trace|fails`},
	),
	sigReproSteps: newPatternSet(
		[]string{`pasos para reproducir|reproducir`},
		[]string{`steps to reproduce|repro|reproduce`},
	),
	sigInjection: newPatternSet(
		[]string{`olvid(a|á) las instrucciones`, `ignor(a|á) todas las instrucciones`},
		[]string{`ignore (all )?previous( instructions)?`, `bypass|jailbreak|\bdan\b|system prompt|developer message`},
	),
	sigBrief: newPatternSet(
		[]string{`breve`},
		[]string{`short|brief`},
	),
	sigVeryDetailed: newPatternSet(
		[]string{`muy detallado|extenso|largo`},
		[]string{`very detailed|exhaustive`},
	),
	sigNoAssume: newPatternSet(
		[]string{`no supongas`},
		[]string{`don'?t assume|no assume`},
	),
	sigInvent: newPatternSet(
		[]string{`ficción|inventá|inventa`},
		[]string{`invent|make up`},
	),
}

func hasSignal(sig, lowered string) bool {
	return signalTable[sig].anyMatch(lowered)
}

// Function-word families used by the dominant-language mismatch check.
var (
	esFunctionWordsRe = regexp.MustCompile(`\b(el|la|los|las|un|una|para|que|con|sin|como|quiero|necesito|por)\b`)
	enFunctionWordsRe = regexp.MustCompile(`\b(the|a|an|to|for|with|without|like|i want|i need|please)\b`)
)
