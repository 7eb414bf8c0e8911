package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ecoscan-ai/ecoscan/internal/llm"
	"github.com/ecoscan-ai/ecoscan/internal/reasoning"
)

const targetSelectionPrompt = `You are selecting the BEST reuse target for a waste object transformation project.

OBJECT TYPE: %s
CONDITION: %s

AVAILABLE REUSE OPTIONS:
%s

SELECT ONE option that is:
1. Most practical for individuals/small workshops
2. Achievable with basic tools
3. Safe and realistic
4. Has clear utility value

Respond in JSON format:
{
  "target_product": "Specific product name",
  "reason_for_selection": "Why this is the best choice given the object's condition"
}

Return ONLY valid JSON.`

const procedurePrompt = `You are a sustainability engineer and product designer.
Your task is to create a DETAILED, ACTIONABLE transformation procedure.

WASTE OBJECT:
Type: %s
Condition: %s
Visual Details: %s

TARGET PRODUCT:
%s

Generate a step-by-step procedure that explains HOW to transform this waste object into the target product.

Requirements:
1. Steps must be clear and actionable
2. Consider the object's current condition
3. Use only basic household tools
4. Include safety precautions
5. Be realistic about skill level needed
6. Estimate time accurately

Respond in JSON format:
{
  "procedure_steps": [
    "Step 1 description",
    "Step 2 description",
    "Step 3 description"
  ],
  "required_tools": ["Tool 1", "Tool 2"],
  "required_materials": ["Material 1", "Material 2"],
  "estimated_time_minutes": 30,
  "difficulty_level": "Low" or "Medium",
  "safety_notes": "Important safety considerations"
}

IMPORTANT:
- Steps should be 5-10 detailed actions
- Tools should be common household items
- Time estimate should be realistic (15-120 minutes)
- Difficulty: "Low" for simple tasks, "Medium" for moderate skill

Return ONLY valid JSON.`

const qualityPrompt = `You are assessing the expected quality of a transformed waste product.

ORIGINAL WASTE: %s
CONDITION: %s
TRANSFORMED INTO: %s
DIFFICULTY: %s

Evaluate the expected quality of the FINAL PRODUCT after transformation:

1. Expected lifespan (in months)
2. Usage limitations
3. Structural stability after transformation

Respond in JSON format:
{
  "expected_lifespan_months": 12,
  "usage_limitations": "Specific limitations based on material and transformation",
  "structural_stability": "High/Medium/Low"
}

Be realistic and conservative in estimates.
Return ONLY valid JSON.`

// Engine generates transformation intelligence for a reuse-feasible
// object. A nil generator degrades every model-backed step to its
// deterministic fallback.
type Engine struct {
	gen llm.TextGenerator
}

// NewEngine creates a transformation engine backed by the given text
// generator.
func NewEngine(gen llm.TextGenerator) *Engine {
	return &Engine{gen: gen}
}

// SelectPrimaryReuseTarget picks the most practical reuse target. With
// no suggestions it returns a fixed default; on any model failure it
// falls back to the first suggestion verbatim.
func (e *Engine) SelectPrimaryReuseTarget(ctx context.Context, suggestions []reasoning.Suggestion, objectType, conditionSummary string) TargetSelection {
	if len(suggestions) == 0 {
		return TargetSelection{
			TargetProduct:      "General storage container",
			ReasonForSelection: "Default fallback for basic reuse",
		}
	}

	fallback := TargetSelection{
		TargetProduct:      suggestions[0].UseCase,
		ReasonForSelection: suggestions[0].Explanation,
	}

	if e.gen == nil {
		return fallback
	}

	var lines []string
	for _, s := range suggestions {
		lines = append(lines, fmt.Sprintf("- %s: %s", s.UseCase, s.Explanation))
	}
	prompt := fmt.Sprintf(targetSelectionPrompt, objectType, conditionSummary, strings.Join(lines, "\n"))

	text, err := e.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("target selection failed, using first suggestion")
		return fallback
	}

	var selection TargetSelection
	if err := llm.ParseObject(text, &selection); err != nil {
		log.Warn().Err(err).Msg("target selection response not parseable, using first suggestion")
		return fallback
	}
	if selection.TargetProduct == "" {
		return fallback
	}

	return selection
}

// GenerateProcedure asks for a 5-10 step transformation plan. On any
// failure it returns the fixed generic procedure.
func (e *Engine) GenerateProcedure(ctx context.Context, objectType, targetProduct, conditionSummary, visualDescription string) Procedure {
	if e.gen == nil {
		return FallbackProcedure(objectType, targetProduct)
	}

	prompt := fmt.Sprintf(procedurePrompt, objectType, conditionSummary, visualDescription, targetProduct)

	text, err := e.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("procedure generation failed, using fallback")
		return FallbackProcedure(objectType, targetProduct)
	}

	var raw rawProcedure
	if err := llm.ParseObject(text, &raw); err != nil {
		log.Warn().Err(err).Msg("procedure response not parseable, using fallback")
		return FallbackProcedure(objectType, targetProduct)
	}

	return raw.Normalize()
}

// AssessQuality estimates lifespan, limitations and stability of the
// transformed product. Falls back to a fixed conservative default.
func (e *Engine) AssessQuality(ctx context.Context, targetProduct, objectType, conditionSummary string, procedure Procedure) QualityAssessment {
	if e.gen == nil {
		return FallbackQualityAssessment(targetProduct)
	}

	prompt := fmt.Sprintf(qualityPrompt, objectType, conditionSummary, targetProduct, procedure.DifficultyLevel)

	text, err := e.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("quality assessment failed, using fallback")
		return FallbackQualityAssessment(targetProduct)
	}

	var raw rawQuality
	if err := llm.ParseObject(text, &raw); err != nil {
		log.Warn().Err(err).Msg("quality response not parseable, using fallback")
		return FallbackQualityAssessment(targetProduct)
	}

	return raw.Normalize()
}

// Generate runs the full transformation layer: target selection,
// procedure, quality, pricing and decision trace. It never fails; every
// model-backed step degrades to its fallback.
func (e *Engine) Generate(ctx context.Context, suggestions []reasoning.Suggestion, objectType, conditionSummary, visualDescription string) *Intelligence {
	selection := e.SelectPrimaryReuseTarget(ctx, suggestions, objectType, conditionSummary)
	log.Info().Str("target", selection.TargetProduct).Msg("reuse target selected")

	procedure := e.GenerateProcedure(ctx, objectType, selection.TargetProduct, conditionSummary, visualDescription)
	log.Info().
		Int("steps", len(procedure.ProcedureSteps)).
		Int("minutes", procedure.EstimatedTimeMinutes).
		Msg("transformation procedure generated")

	quality := e.AssessQuality(ctx, selection.TargetProduct, objectType, conditionSummary, procedure)
	log.Info().Int("lifespanMonths", quality.ExpectedLifespanMonths).Msg("quality assessed")

	pricing := CalculateMarketPrice(selection.TargetProduct, quality, procedure, objectType)
	log.Info().
		Int("min", pricing.SuggestedPriceRange.Min).
		Int("max", pricing.SuggestedPriceRange.Max).
		Msg("market price calculated")

	trace := GenerateDecisionTrace(selection, procedure, quality, pricing, visualDescription, conditionSummary)

	return &Intelligence{
		TargetSelection:   selection,
		Procedure:         procedure,
		QualityAssessment: quality,
		Pricing:           pricing,
		DecisionTrace:     trace,
	}
}

// FallbackProcedure is the fixed generic procedure used when the model
// is unavailable or unparseable.
func FallbackProcedure(objectType, targetProduct string) Procedure {
	return Procedure{
		ProcedureSteps: []string{
			fmt.Sprintf("Clean the %s thoroughly", objectType),
			"Assess structural integrity",
			fmt.Sprintf("Modify as needed for %s use", targetProduct),
			"Add finishing touches",
			"Test functionality",
		},
		RequiredTools:        []string{"Cleaning supplies", "Basic cutting tool"},
		RequiredMaterials:    []string{"As needed based on design"},
		EstimatedTimeMinutes: 30,
		DifficultyLevel:      DifficultyMedium,
		SafetyNotes:          "Use protective equipment when cutting or modifying materials",
	}
}

// FallbackQualityAssessment is the fixed conservative quality default.
func FallbackQualityAssessment(targetProduct string) QualityAssessment {
	return QualityAssessment{
		ExpectedLifespanMonths: 12,
		UsageLimitations:       fmt.Sprintf("Use %s as intended for best longevity", targetProduct),
		StructuralStability:    StabilityMedium,
	}
}
