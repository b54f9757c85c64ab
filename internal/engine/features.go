package engine

import "strings"

// ExtractFeatures computes the signal vector over the text under analysis.
// Every boolean is the disjunction of a bilingual keyword family from the
// signal table; nothing here consults external state.
func ExtractFeatures(core string, task TaskType, lang Lang) Features {
	clean := NormalizeText(core)
	lowered := strings.ToLower(clean)
	words := WordCount(clean)

	f := Features{
		Words:              words,
		HasGoal:            hasSignal(sigGoal, lowered),
		HasInputs:          hasSignal(sigInputs, lowered) || words > 80,
		HasAudience:        hasSignal(sigAudience, lowered),
		HasExamples:        hasSignal(sigExamples, lowered) || strings.Contains(clean, "```"),
		HasConstraints:     hasSignal(sigConstraints, lowered),
		HasOutputFormat:    hasSignal(sigOutputFormat, lowered),
		HasSuccessCriteria: hasSignal(sigSuccessCriteria, lowered),
		HasTone:            hasSignal(sigTone, lowered),
		HasLengthHint:      hasSignal(sigLengthHint, lowered),
		HasTimeframe:       hasSignal(sigTimeframe, lowered),
		HasRegion:          hasSignal(sigRegion, lowered),
	}

	// Error evidence and repro steps only count as signals for code work;
	// for prose tasks the same words are usually part of the content.
	if task == TaskCoding {
		f.HasErrorDetails = hasSignal(sigErrorDetails, lowered)
		f.HasReproSteps = hasSignal(sigReproSteps, lowered)
	}

	f.InjectionLike = hasSignal(sigInjection, lowered)

	f.Contradictions = (hasSignal(sigBrief, lowered) && hasSignal(sigVeryDetailed, lowered)) ||
		(hasSignal(sigNoAssume, lowered) && hasSignal(sigInvent, lowered))

	f.LanguageMismatch = detectLanguageMismatch(lowered, lang)

	return f
}

// detectLanguageMismatch compares common function-word hits of each language
// and flags the text when the opposite language dominates the declared UI
// language by two or more hits.
func detectLanguageMismatch(lowered string, lang Lang) bool {
	esHits := len(esFunctionWordsRe.FindAllString(lowered, -1))
	enHits := len(enFunctionWordsRe.FindAllString(lowered, -1))

	if lang == LangES {
		return enHits >= esHits+2
	}
	return esHits >= enHits+2
}
