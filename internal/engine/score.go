package engine

import "math"

// Calibration holds the empirically chosen scoring constants. The values are
// load-bearing: changing them changes externally observed scores, so they are
// overridable but never re-derived.
type Calibration struct {
	WeightClarity       float64
	WeightContext       float64
	WeightConstraints   float64
	WeightOutput        float64
	WeightVerifiability float64
	WeightSafety        float64

	PenaltyInjection        int
	PenaltyContradiction    int
	PenaltyLanguageMismatch int

	ConfidenceBase          int
	ConfidenceLongInput     int
	ConfidenceGoal          int
	ConfidenceOutputFormat  int
	ConfidenceConstraints   int
	ConfidenceInjection     int
	ConfidenceContradiction int
}

// DefaultCalibration returns the production constants.
func DefaultCalibration() Calibration {
	return Calibration{
		WeightClarity:       0.22,
		WeightContext:       0.22,
		WeightConstraints:   0.20,
		WeightOutput:        0.20,
		WeightVerifiability: 0.08,
		WeightSafety:        0.08,

		PenaltyInjection:        40,
		PenaltyContradiction:    25,
		PenaltyLanguageMismatch: 15,

		ConfidenceBase:          55,
		ConfidenceLongInput:     15,
		ConfidenceGoal:          10,
		ConfidenceOutputFormat:  8,
		ConfidenceConstraints:   8,
		ConfidenceInjection:     20,
		ConfidenceContradiction: 15,
	}
}

// Scored is the output of one scoring pass.
type Scored struct {
	Score      int
	Breakdown  ScoreBreakdown
	Confidence int
	Explain    []string
}

func clamp100(n float64) int {
	r := int(math.Round(n))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func pctFromFlags(hits, total int) int {
	if total <= 0 {
		return 0
	}
	return clamp100(float64(hits) / float64(total) * 100)
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Score combines the feature vector into the six-component breakdown, the
// weighted composite score, a confidence estimate, and localized explanation
// lines.
func (cal Calibration) Score(task TaskType, target Target, f Features, lang Lang) Scored {
	clarity := func() int {
		var lenScore int
		switch {
		case f.Words >= 40:
			lenScore = 100
		case f.Words >= 25:
			lenScore = 85
		case f.Words >= 15:
			lenScore = 65
		case f.Words >= 8:
			lenScore = 45
		default:
			lenScore = 20
		}
		add := 0
		if f.HasGoal {
			add += 10
		}
		if f.HasTone {
			add += 5
		}
		return clamp100(float64(lenScore + add))
	}()

	context := func() int {
		hits := boolFlag(f.HasInputs) + boolFlag(f.HasAudience) + boolFlag(f.HasExamples)
		base := pctFromFlags(hits, 3)
		// examples weigh extra for study and code work
		boost := 0
		if (task == TaskStudy || task == TaskCoding) && f.HasExamples {
			boost = 8
		}
		return clamp100(float64(base + boost))
	}()

	constraints := pctFromFlags(
		boolFlag(f.HasConstraints)+boolFlag(f.HasTone)+boolFlag(f.HasLengthHint)+
			boolFlag(f.HasTimeframe)+boolFlag(f.HasRegion), 5)

	output := pctFromFlags(boolFlag(f.HasOutputFormat)+boolFlag(f.HasSuccessCriteria), 2)

	verifiability := pctFromFlags(
		boolFlag(f.HasSuccessCriteria)+boolFlag(f.HasErrorDetails)+boolFlag(f.HasReproSteps), 3)

	safety := func() int {
		s := 100
		if f.InjectionLike {
			s -= cal.PenaltyInjection
		}
		if f.Contradictions {
			s -= cal.PenaltyContradiction
		}
		if f.LanguageMismatch {
			s -= cal.PenaltyLanguageMismatch
		}
		return clamp100(float64(s))
	}()

	score := cal.WeightClarity*float64(clarity) +
		cal.WeightContext*float64(context) +
		cal.WeightConstraints*float64(constraints) +
		cal.WeightOutput*float64(output) +
		cal.WeightVerifiability*float64(verifiability) +
		cal.WeightSafety*float64(safety)

	confidence := func() int {
		c := cal.ConfidenceBase
		if f.Words >= 30 {
			c += cal.ConfidenceLongInput
		}
		if f.HasGoal {
			c += cal.ConfidenceGoal
		}
		if f.HasOutputFormat {
			c += cal.ConfidenceOutputFormat
		}
		if f.HasConstraints {
			c += cal.ConfidenceConstraints
		}
		if f.InjectionLike {
			c -= cal.ConfidenceInjection
		}
		if f.Contradictions {
			c -= cal.ConfidenceContradiction
		}
		return clamp100(float64(c))
	}()

	explain := explainLines(clamp100(score), task, f, lang)

	return Scored{
		Score: clamp100(score),
		Breakdown: ScoreBreakdown{
			Clarity:       clarity,
			Context:       context,
			Constraints:   constraints,
			Output:        output,
			Verifiability: verifiability,
			Safety:        safety,
		},
		Confidence: confidence,
		Explain:    explain,
	}
}

func pick(lang Lang, es, en string) string {
	if lang == LangES {
		return es
	}
	return en
}

// explainLines builds a localized headline plus up to 3 bullets for the most
// impactful missing signals, in fixed priority order.
func explainLines(score int, task TaskType, f Features, lang Lang) []string {
	explain := make([]string, 0, 4)

	switch {
	case score >= 85:
		explain = append(explain, pick(lang,
			"¡Muy bien! Está claro y debería responder de forma consistente.",
			"Nice! It’s clear and should respond consistently."))
	case score >= 70:
		explain = append(explain, pick(lang,
			"Buen punto de partida: con pequeños ajustes puede mejorar mucho.",
			"Good starting point: small tweaks can make it much better."))
	case score >= 50:
		explain = append(explain, pick(lang,
			"Buen comienzo, pero falta estructura para que responda con precisión.",
			"Good start, but it needs structure to be precise."))
	default:
		explain = append(explain, pick(lang,
			"Prompt débil: el motor limita el score porque falta información clave.",
			"Weak prompt: the engine caps the score because key info is missing."))
	}

	var bullets []string

	if !f.HasGoal {
		bullets = append(bullets, pick(lang,
			"Falta objetivo: sin “qué querés lograr”, no se puede ser preciso.",
			"Missing goal: without “what you want to achieve”, it can’t be precise."))
	}
	if !f.HasOutputFormat {
		bullets = append(bullets, pick(lang,
			"Falta formato de salida: la respuesta puede salir desordenada o inútil.",
			"Missing output format: the answer may be messy or unusable."))
	}
	if !f.HasConstraints {
		bullets = append(bullets, pick(lang,
			"Faltan restricciones: sin límites (tono, largo, qué evitar) la respuesta varía mucho.",
			"Missing constraints: without limits (tone, length, what to avoid) the answer varies a lot."))
	}
	if !f.HasInputs && (task == TaskData || task == TaskCoding) {
		bullets = append(bullets, pick(lang,
			"Faltan inputs/datos: para esto necesitás indicar formato, ejemplos o datos de entrada.",
			"Missing inputs/data: for this, you should specify format, examples, or input data."))
	}
	if f.InjectionLike {
		bullets = append(bullets, pick(lang,
			"Riesgo de prompt injection: limpiá instrucciones contradictorias o externas.",
			"Prompt-injection risk: remove contradictory/external instructions."))
	}

	if len(bullets) > 3 {
		bullets = bullets[:3]
	}
	return append(explain, bullets...)
}
