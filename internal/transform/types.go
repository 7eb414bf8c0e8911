package transform

// Difficulty and stability labels used across procedure, quality and
// pricing.
const (
	DifficultyLow    = "Low"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	StabilityHigh   = "High"
	StabilityMedium = "Medium"
	StabilityLow    = "Low"
)

// TargetSelection names the product the waste object will become.
type TargetSelection struct {
	TargetProduct      string `json:"target_product"`
	ReasonForSelection string `json:"reason_for_selection"`
}

// Procedure is the normalized step-by-step transformation plan.
type Procedure struct {
	ProcedureSteps       []string `json:"procedure_steps"`
	RequiredTools        []string `json:"required_tools"`
	RequiredMaterials    []string `json:"required_materials"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
	DifficultyLevel      string   `json:"difficulty_level"`
	SafetyNotes          string   `json:"safety_notes"`
}

// QualityAssessment estimates the transformed product's durability.
type QualityAssessment struct {
	ExpectedLifespanMonths int    `json:"expected_lifespan_months"`
	UsageLimitations       string `json:"usage_limitations"`
	StructuralStability    string `json:"structural_stability"`
}

// PriceRange is the suggested market price band.
type PriceRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// PricingFactors exposes the multiplicative inputs behind a price for
// explainability.
type PricingFactors struct {
	BasePrice             float64 `json:"base_price"`
	LifespanMultiplier    float64 `json:"lifespan_multiplier"`
	LaborMultiplier       float64 `json:"labor_multiplier"`
	SustainabilityPremium float64 `json:"sustainability_premium"`
}

// PricingResult is the deterministic market price output.
type PricingResult struct {
	SuggestedPriceRange PriceRange     `json:"suggested_price_range"`
	PricingReasoning    []string       `json:"pricing_reasoning"`
	PricingConfidence   string         `json:"pricing_confidence"`
	PricingFactors      PricingFactors `json:"pricing_factors"`
}

// ObservationLayer captures what the vision model saw.
type ObservationLayer struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

// InferenceLayer captures the statements derived from observations.
type InferenceLayer struct {
	Title      string   `json:"title"`
	Inferences []string `json:"inferences"`
}

// Decision pairs a decision with its reasoning.
type Decision struct {
	Decision  string `json:"decision"`
	Reasoning string `json:"reasoning"`
}

// DecisionLayer captures what the pipeline decided.
type DecisionLayer struct {
	Title     string     `json:"title"`
	Decisions []Decision `json:"decisions"`
}

// DecisionTrace separates raw observation, derived inference and final
// decision for explainability.
type DecisionTrace struct {
	ObservationLayer ObservationLayer `json:"observation_layer"`
	InferenceLayer   InferenceLayer   `json:"inference_layer"`
	DecisionLayer    DecisionLayer    `json:"decision_layer"`
	TransparencyNote string           `json:"transparency_note"`
}

// Intelligence is the combined transformation layer attached to a
// scored analysis.
type Intelligence struct {
	TargetSelection   TargetSelection   `json:"target_selection"`
	Procedure         Procedure         `json:"procedure"`
	QualityAssessment QualityAssessment `json:"quality_assessment"`
	Pricing           PricingResult     `json:"pricing"`
	DecisionTrace     DecisionTrace     `json:"decision_trace"`
}
