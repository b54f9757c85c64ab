package engine

import "strings"

func purposeBlock(purpose Purpose, lang Lang) string {
	switch purpose {
	case PurposeImage:
		return pick(lang,
			"OBJETIVO (IMAGEN): Generar una imagen con descripción clara.\n"+
				"Incluí: sujeto, estilo, composición, iluminación, encuadre, fondo, relación de aspecto.\n"+
				"Si falta info, preguntá hasta 3 cosas antes de asumir.",
			"GOAL (IMAGE): Generate an image from a clear description.\n"+
				"Include: subject, style, composition, lighting, framing, background, aspect ratio.\n"+
				"If info is missing, ask up to 3 questions before assuming.")
	case PurposeData:
		return pick(lang,
			"OBJETIVO (DATOS): Extraer/transformar datos con formato estricto.\n"+
				"Si el usuario pide JSON: devolvé SOLO JSON válido, sin texto extra.\n"+
				"Validá tipos, normalizá fechas y no inventes campos.",
			"GOAL (DATA): Extract/transform data with strict formatting.\n"+
				"If JSON is requested: output ONLY valid JSON, no extra text.\n"+
				"Validate types, normalize dates, and don’t invent fields.")
	case PurposeCode:
		return pick(lang,
			"OBJETIVO (CÓDIGO): Producir código correcto y ejecutable.\n"+
				"Incluí: supuestos explícitos, pasos, edge cases y cómo correrlo/testearlo.\n"+
				"Si falta contexto, preguntá antes de elegir librerías/framework.",
			"GOAL (CODE): Produce correct, runnable code.\n"+
				"Include: explicit assumptions, steps, edge cases, and how to run/test it.\n"+
				"If context is missing, ask before choosing libraries/frameworks.")
	case PurposeStudy:
		return pick(lang,
			"OBJETIVO (ESTUDIO): Explicar para aprender.\n"+
				"Pedí nivel (secundario/universidad), y entregá: resumen + ejemplos + ejercicios cortos.\n"+
				"Si hay ambigüedad, preguntá antes de avanzar.",
			"GOAL (STUDY): Explain to learn.\n"+
				"Ask for level, then deliver: summary + examples + short exercises.\n"+
				"If ambiguous, ask before continuing.")
	case PurposeMarketing:
		return pick(lang,
			"OBJETIVO (MARKETING): Escribir copy efectivo.\n"+
				"Incluí: audiencia, propuesta de valor, tono, CTA, y 2–3 variantes.\n"+
				"No prometas cosas falsas. Mantenelo consistente con la marca.",
			"GOAL (MARKETING): Write effective copy.\n"+
				"Include: audience, value prop, tone, CTA, and 2–3 variants.\n"+
				"Don’t promise false claims. Keep it brand-consistent.")
	default:
		return pick(lang,
			"OBJETIVO (TEXTO): Responder con claridad y estructura.\n"+
				"Si falta info clave, hacé hasta 3 preguntas antes de asumir.",
			"GOAL (TEXT): Respond clearly with structure.\n"+
				"If key info is missing, ask up to 3 questions before assuming.")
	}
}

func targetHint(target Target, lang Lang) string {
	switch target {
	case TargetClaude:
		return pick(lang,
			"Sugerencia (Claude): usá secciones claras y, si ayuda, etiquetas tipo <context>…</context>.",
			"Tip (Claude): use clear sections and, if helpful, XML-like tags such as <context>…</context>.")
	case TargetGemini:
		return pick(lang,
			"Sugerencia (Gemini): especificá el formato exacto de salida y ejemplos cortos.",
			"Tip (Gemini): specify an exact output format and short examples.")
	case TargetGrok:
		return pick(lang,
			"Sugerencia (Grok): pedí respuesta directa, con bullets si aplica, y evitá relleno.",
			"Tip (Grok): ask for direct answers, bullets if relevant, avoid fluff.")
	case TargetDeepseek:
		return pick(lang,
			"Sugerencia (Deepseek): definí criterios de corrección y casos borde.",
			"Tip (Deepseek): define correctness criteria and edge cases.")
	case TargetKimi:
		return pick(lang,
			"Sugerencia (Kimi): marcá el objetivo y el formato final (especialmente si es resumen).",
			"Tip (Kimi): state the goal and final format (especially for summarization).")
	default:
		return pick(lang,
			"Sugerencia: delimitá input y pedí formato de salida explícito.",
			"Tip: delimit input and request an explicit output format.")
	}
}

func outputDefaults(purpose Purpose, lang Lang) string {
	switch purpose {
	case PurposeData:
		return pick(lang,
			"- Devolvé SOLO JSON válido.\n- Sin texto extra.\n- Respetá el schema/campos del usuario.",
			"- Return ONLY valid JSON.\n- No extra text.\n- Follow the user's schema/fields.")
	case PurposeImage:
		return pick(lang,
			"- Describí en 6–10 bullets (sujeto/estilo/composición).\n- Incluí relación de aspecto.",
			"- Describe in 6–10 bullets (subject/style/composition).\n- Include aspect ratio.")
	default:
		return pick(lang,
			"- Respuesta en secciones.\n- Si falta info: 1–3 preguntas primero.",
			"- Sectioned answer.\n- If info is missing: ask 1–3 questions first.")
	}
}

// BuildOptimizedPrompt renders the structured rewrite around the extracted
// core. Already-stamped prompts pass through untouched so the operation is
// idempotent on its own output.
func BuildOptimizedPrompt(version, core string, taskType TaskType, target Target, lang Lang, purpose Purpose) string {
	trimmed := strings.TrimSpace(core)
	if IsSelfSignature(trimmed) {
		return trimmed
	}

	lines := []string{
		"PROMPTEA: v" + version,
		"MODEL: " + strings.ToUpper(string(target)),
		"PURPOSE: " + string(purpose),
		"TASK_TYPE: " + string(taskType),
		"",
		pick(lang, "INSTRUCCIONES:", "INSTRUCTIONS:"),
		"- " + pick(lang, "Respondé en el idioma de la interfaz.", "Respond in the UI language."),
		"- " + pick(lang, "Sé específico y estructurado.", "Be specific and structured."),
		"- " + pick(lang, "Usá delimitadores para el input si aplica.", "Use delimiters for input if relevant."),
		"- " + targetHint(target, lang),
		"",
		purposeBlock(purpose, lang),
		"",
		"TASK:",
		trimmed,
		"",
		"OUTPUT FORMAT:",
		outputDefaults(purpose, lang),
		"",
		pick(lang, "RESTRICCIONES:", "CONSTRAINTS:"),
		pick(lang,
			"- No inventes datos.\n- Si hay ambigüedad, preguntá antes de asumir.",
			"- Do not invent facts.\n- If ambiguous, ask before assuming."),
	}
	return strings.Join(lines, "\n")
}
