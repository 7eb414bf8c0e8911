package transform

import "fmt"

// transparencyNote is the fixed disclaimer attached to every trace.
const transparencyNote = "All decisions are AI-assisted estimates based on visual analysis and learned patterns. Final transformation results depend on user skill and execution."

// GenerateDecisionTrace structures the transformation outcome into
// observation, inference and decision layers. Pure data assembly, no
// external calls.
func GenerateDecisionTrace(selection TargetSelection, procedure Procedure, quality QualityAssessment, pricing PricingResult, visionDescription, conditionSummary string) DecisionTrace {
	pricingReasons := pricing.PricingReasoning
	if len(pricingReasons) > 2 {
		pricingReasons = pricingReasons[:2]
	}
	priceReasoning := ""
	for i, r := range pricingReasons {
		if i > 0 {
			priceReasoning += " | "
		}
		priceReasoning += r
	}

	return DecisionTrace{
		ObservationLayer: ObservationLayer{
			Title:   "What the Vision AI Observed",
			Content: visionDescription,
			Source:  "Google Gemini Vision Model",
		},
		InferenceLayer: InferenceLayer{
			Title: "What EcoScan AI Inferred",
			Inferences: []string{
				fmt.Sprintf("Object condition: %s", conditionSummary),
				fmt.Sprintf("Structural suitability for transformation: %s", quality.StructuralStability),
				fmt.Sprintf("Estimated transformation complexity: %s difficulty", procedure.DifficultyLevel),
			},
		},
		DecisionLayer: DecisionLayer{
			Title: "What EcoScan AI Decided",
			Decisions: []Decision{
				{
					Decision:  fmt.Sprintf("Selected '%s' as optimal reuse target", selection.TargetProduct),
					Reasoning: selection.ReasonForSelection,
				},
				{
					Decision: fmt.Sprintf("Designed %d-step transformation procedure", len(procedure.ProcedureSteps)),
					Reasoning: fmt.Sprintf(
						"Procedure optimized for %s skill level with estimated %d minutes completion time",
						procedure.DifficultyLevel, procedure.EstimatedTimeMinutes,
					),
				},
				{
					Decision: fmt.Sprintf(
						"Priced at ₹%d-₹%d",
						pricing.SuggestedPriceRange.Min, pricing.SuggestedPriceRange.Max,
					),
					Reasoning: priceReasoning,
				},
			},
		},
		TransparencyNote: transparencyNote,
	}
}
