package lint

// Severity grades findings.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Impact ranks recommendations.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Finding ids. Identity for dedupe is the id: a result never carries two
// findings with the same id.
const (
	FindingTooShort            = "too_short"
	FindingMissingGoal         = "missing_goal"
	FindingMissingContext      = "missing_context"
	FindingMissingInputData    = "missing_input_data"
	FindingMissingOutputFormat = "missing_output_format"
	FindingMissingConstraints  = "missing_constraints"
	FindingContradiction       = "contradiction"
	FindingPromptInjection     = "prompt_injection"
	FindingMissingReproSteps   = "missing_repro_steps"
	FindingMissingErrorMessage = "missing_error_message"
	FindingMissingEnvironment  = "missing_environment"
	FindingMissingSchema       = "missing_schema"
)

// Recommendation ids.
const (
	RecoAddGoal            = "add_goal"
	RecoAddContext         = "add_context"
	RecoAddInputData       = "add_input_data"
	RecoDefineOutputFormat = "define_output_format"
	RecoAddConstraints     = "add_constraints"
	RecoAddSuccessCriteria = "add_success_criteria"
	RecoAddExamples        = "add_examples"
	RecoAddSchema          = "add_schema"
	RecoAddReproSteps      = "add_repro_steps"
	RecoAddErrorMessage    = "add_error_message"
	RecoAddEnvironment     = "add_environment"
)

// OutputFormatKind is the detected requested output shape.
type OutputFormatKind string

const (
	FormatJSON    OutputFormatKind = "json"
	FormatTable   OutputFormatKind = "table"
	FormatSteps   OutputFormatKind = "steps"
	FormatBullets OutputFormatKind = "bullets"
)

// OutputFormat describes the requested output shape. Strict marks phrases
// demanding JSON-only output with no surrounding text.
type OutputFormat struct {
	Kind   OutputFormatKind `json:"kind"`
	Strict bool             `json:"strict"`
}

// Finding is a detected problem in the prompt under analysis.
type Finding struct {
	ID          string   `json:"id"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fix         string   `json:"fix"`
}

// Recommendation is a suggested improvement.
type Recommendation struct {
	ID     string `json:"id,omitempty"`
	Impact Impact `json:"impact"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Result is what one lint pass produces.
type Result struct {
	OutputFormat    *OutputFormat
	Findings        []Finding
	Recommendations []Recommendation
}
