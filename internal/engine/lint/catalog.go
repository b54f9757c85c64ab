package lint

type catalogEntry struct {
	Title       string
	Description string
	Fix         string
}

type recoEntry struct {
	Title  string
	Detail string
}

var findingCatalogES = map[string]catalogEntry{
	FindingTooShort: {
		Title:       "Prompt demasiado corto",
		Description: "Con poca información, la IA tiende a completar con suposiciones y baja la precisión.",
		Fix:         "Sumá objetivo + un poco de contexto + el formato de salida esperado.",
	},
	FindingMissingGoal: {
		Title:       "Falta el objetivo",
		Description: "No queda claro qué querés lograr con este pedido.",
		Fix:         "Escribí el objetivo en una frase (qué resultado querés obtener).",
	},
	FindingMissingContext: {
		Title:       "Falta contexto",
		Description: "No queda claro el escenario, qué información hay disponible o para qué lo necesitás.",
		Fix:         "Agregá: contexto mínimo, datos de entrada (si aplica), audiencia/uso y un ejemplo si podés.",
	},
	FindingMissingInputData: {
		Title:       "Faltan datos de entrada",
		Description: "No está el texto/datos/logs/código con lo que la IA debe trabajar.",
		Fix:         "Pegá el contenido a analizar o describí exactamente los datos de entrada.",
	},
	FindingMissingOutputFormat: {
		Title:       "No definiste el formato de salida",
		Description: "Si no pedís un formato, la IA decide sola cómo responder y puede no coincidir con lo que querías.",
		Fix:         "Pedí un formato: viñetas / pasos / tabla / JSON (según lo que necesites).",
	},
	FindingMissingConstraints: {
		Title:       "Faltan restricciones",
		Description: "Sin límites (tono, largo, qué evitar), las respuestas pueden variar demasiado.",
		Fix:         "Indicá tono, largo, qué evitar y supuestos permitidos.",
	},
	FindingContradiction: {
		Title:       "Hay instrucciones contradictorias",
		Description: "El prompt pide cosas incompatibles (por ejemplo: 'muy detallado' pero '3 líneas').",
		Fix:         "Elegí una prioridad (detalle vs brevedad) y ajustá el resto en consecuencia.",
	},
	FindingPromptInjection: {
		Title:       "Posible prompt injection",
		Description: "Hay instrucciones para ignorar reglas o revelar información interna del modelo.",
		Fix:         "Eliminá esas frases y definí el objetivo y el formato de salida de forma directa.",
	},
	FindingMissingReproSteps: {
		Title:       "Faltan pasos para reproducir",
		Description: "Sin pasos concretos, es difícil diagnosticar problemas técnicos.",
		Fix:         "Agregá pasos numerados para reproducir el error.",
	},
	FindingMissingErrorMessage: {
		Title:       "Falta el mensaje de error",
		Description: "Sin error exacto (stacktrace/logs), se reduce mucho la precisión del diagnóstico.",
		Fix:         "Pegá el error completo y cualquier log relevante.",
	},
	FindingMissingEnvironment: {
		Title:       "Falta el entorno",
		Description: "Versiones/OS/framework cambian la solución.",
		Fix:         "Indicá versiones (framework, runtime, OS) y configuración relevante.",
	},
	FindingMissingSchema: {
		Title:       "Falta un esquema",
		Description: "Pedís JSON, pero no están definidos los campos. Eso suele generar una salida inconsistente.",
		Fix:         "Definí campos + tipos + un ejemplo de salida (JSON/tabla).",
	},
}

var findingCatalogEN = map[string]catalogEntry{
	FindingTooShort: {
		Title:       "Prompt is too short",
		Description: "With little information, the model tends to guess, reducing accuracy.",
		Fix:         "Add a goal + minimal context + an expected output format.",
	},
	FindingMissingGoal: {
		Title:       "Missing goal",
		Description: "It’s not clear what outcome you want.",
		Fix:         "State your goal in one sentence (what you want to achieve).",
	},
	FindingMissingContext: {
		Title:       "Missing context",
		Description: "The scenario, what info is available, or intended use is unclear.",
		Fix:         "Add minimal context, input data (if any), audience/use, and an example if possible.",
	},
	FindingMissingInputData: {
		Title:       "Missing input data",
		Description: "The text/data/logs/code to work with are not provided.",
		Fix:         "Paste the input content or describe the input precisely.",
	},
	FindingMissingOutputFormat: {
		Title:       "No output format specified",
		Description: "Without a format, the model picks one and it may not match what you need.",
		Fix:         "Ask for a format: bullets / steps / table / JSON (as needed).",
	},
	FindingMissingConstraints: {
		Title:       "Missing constraints",
		Description: "Without limits (tone, length, what to avoid), answers can vary too much.",
		Fix:         "Specify tone, length, what to avoid, and allowed assumptions.",
	},
	FindingContradiction: {
		Title:       "Contradictory instructions",
		Description: "The prompt asks for incompatible things (e.g., 'very detailed' but '3 lines').",
		Fix:         "Pick a priority (detail vs brevity) and adjust the rest accordingly.",
	},
	FindingPromptInjection: {
		Title:       "Possible prompt injection",
		Description: "The prompt includes instructions to bypass rules or reveal hidden system content.",
		Fix:         "Remove those phrases and state your goal/output format directly.",
	},
	FindingMissingReproSteps: {
		Title:       "Missing reproduction steps",
		Description: "Without clear steps, it’s hard to diagnose technical issues.",
		Fix:         "Add numbered steps to reproduce the issue.",
	},
	FindingMissingErrorMessage: {
		Title:       "Missing error message",
		Description: "Without the exact error/stacktrace/logs, diagnosis becomes unreliable.",
		Fix:         "Paste the full error and relevant logs.",
	},
	FindingMissingEnvironment: {
		Title:       "Missing environment",
		Description: "Versions/OS/frameworks can change the solution.",
		Fix:         "Include versions (framework, runtime, OS) and relevant config.",
	},
	FindingMissingSchema: {
		Title:       "Missing schema",
		Description: "You request JSON, but fields aren’t defined, which often produces inconsistent output.",
		Fix:         "Define fields + types + a short output example (JSON/table).",
	},
}

var recoCatalogES = map[string]recoEntry{
	RecoAddGoal:            {Title: "Definí el objetivo", Detail: "Decí qué resultado querés lograr (una frase clara)."},
	RecoAddContext:         {Title: "Agregá contexto mínimo", Detail: "Incluí escenario, info disponible y para qué lo necesitás."},
	RecoAddInputData:       {Title: "Pegá los datos de entrada", Detail: "Texto/datos/logs/código con lo que la IA debe trabajar."},
	RecoDefineOutputFormat: {Title: "Definí el formato de salida", Detail: "Pedí viñetas / pasos / tabla / JSON (según lo que necesites)."},
	RecoAddConstraints:     {Title: "Sumá restricciones/límites", Detail: "Tono, largo, qué evitar y supuestos permitidos."},
	RecoAddSuccessCriteria: {Title: "Agregá criterios de éxito", Detail: "Decí cómo sabés que la respuesta es buena (qué debe incluir)."},
	RecoAddExamples:        {Title: "Sumá un ejemplo", Detail: "Un ejemplo de entrada/salida reduce ambigüedad y mejora consistencia."},
	RecoAddSchema:          {Title: "Definí campos y tipos", Detail: "Para JSON/extracción: campos, tipos y un ejemplo de salida."},
	RecoAddReproSteps:      {Title: "Agregá pasos para reproducir", Detail: "Checklist numerado para reproducir el problema."},
	RecoAddErrorMessage:    {Title: "Pegá el error completo", Detail: "Stacktrace/logs exactos y contexto de cuándo ocurre."},
	RecoAddEnvironment:     {Title: "Indicá el entorno", Detail: "Versiones (framework/runtime), OS y config relevante."},
}

var recoCatalogEN = map[string]recoEntry{
	RecoAddGoal:            {Title: "State the goal", Detail: "Say what outcome you want (one clear sentence)."},
	RecoAddContext:         {Title: "Add minimal context", Detail: "Include scenario, available info, and intended use."},
	RecoAddInputData:       {Title: "Paste the input", Detail: "Text/data/logs/code the model must work with."},
	RecoDefineOutputFormat: {Title: "Define the output format", Detail: "Ask for bullets / steps / table / JSON (as needed)."},
	RecoAddConstraints:     {Title: "Add constraints/limits", Detail: "Tone, length, what to avoid, and allowed assumptions."},
	RecoAddSuccessCriteria: {Title: "Add success criteria", Detail: "Define what a good answer must include."},
	RecoAddExamples:        {Title: "Add an example", Detail: "A short input/output example reduces ambiguity and improves consistency."},
	RecoAddSchema:          {Title: "Define fields and types", Detail: "For JSON/extraction: define fields, types, and an output example."},
	RecoAddReproSteps:      {Title: "Add repro steps", Detail: "Provide numbered steps to reproduce the issue."},
	RecoAddErrorMessage:    {Title: "Paste the full error", Detail: "Exact stacktrace/logs and when it happens."},
	RecoAddEnvironment:     {Title: "Include environment", Detail: "Versions (framework/runtime), OS, and relevant config."},
}

func findingText(id, lang string) catalogEntry {
	if lang == "es" {
		return findingCatalogES[id]
	}
	return findingCatalogEN[id]
}

func recoText(id, lang string) recoEntry {
	if lang == "es" {
		return recoCatalogES[id]
	}
	return recoCatalogEN[id]
}
