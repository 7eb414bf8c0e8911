package reasoning

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ecoscan-ai/ecoscan/internal/llm"
)

const reusePrompt = `You are a material sustainability analyst evaluating waste objects for reuse potential.

OBJECT INFORMATION:
Type: %s

VISUAL INSPECTION REPORT:
%s

YOUR TASK:
Based on the visual inspection, analyze whether this object can be safely and practically reused.

Consider:
1. **Structural Integrity**: Is it intact enough for reuse?
2. **Safety**: Any hazards (sharp edges, toxic residue, breakage risk)?
3. **Cleanliness**: Can contamination be cleaned, or is it permanent?
4. **Functionality**: Can it still serve a useful purpose?
5. **Practical Viability**: Would someone realistically reuse this?

Provide your analysis in the following JSON format:

{
  "reuse_feasible": true/false,
  "confidence": 0-100,
  "verdict": "Reusable" OR "Conditionally Reusable" OR "Not Reusable",
  "condition_summary": "One sentence summary of overall condition",
  "reasoning": "Clear explanation of why it is/isn't reusable based on observed condition",
  "key_factors": ["factor 1", "factor 2", "factor 3"],
  "suggestions": [
    {
      "use_case": "Specific reuse idea",
      "explanation": "Why this works given the object's condition",
      "category": "home_utility/outdoor/diy/storage/other"
    }
  ]
}

IMPORTANT GUIDELINES:
- Be realistic and practical
- If damaged but cleanable, mark as "Conditionally Reusable"
- Only mark "Not Reusable" if truly unsafe or non-functional
- Provide 2-5 specific reuse suggestions if feasible
- Base reasoning ONLY on what was observed in the image
- Do NOT make claims about chemical safety or food safety without clear evidence

Return ONLY valid JSON, no additional text.`

// HealthChecker is implemented by transports with a local service
// prerequisite that should be probed before use.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Analyzer runs the reasoning stage against a language model.
type Analyzer struct {
	gen llm.TextGenerator
}

// NewAnalyzer creates a reasoning analyzer backed by the given text
// generator.
func NewAnalyzer(gen llm.TextGenerator) *Analyzer {
	return &Analyzer{gen: gen}
}

// AnalyzeReusePotential evaluates whether the object can be reused.
// The returned Analysis is always structurally valid: any failure
// (missing credentials, transport, unparseable JSON) is absorbed into
// the Analysis Failed sentinel with the triggering message in Reasoning.
func (a *Analyzer) AnalyzeReusePotential(ctx context.Context, visionDescription, objectType string) *Analysis {
	if a.gen == nil {
		return ErrorAnalysis("LLM analysis failed: no reasoning model configured")
	}

	if hc, ok := a.gen.(HealthChecker); ok {
		if err := hc.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("reasoning service unavailable")
			return ErrorAnalysis(err.Error())
		}
	}

	prompt := fmt.Sprintf(reusePrompt, objectType, visionDescription)

	text, err := a.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("kind", llm.KindOf(err).String()).Msg("reasoning stage failed")
		return ErrorAnalysis(fmt.Sprintf("LLM analysis failed: %v", err))
	}

	var raw rawAnalysis
	if err := llm.ParseObject(text, &raw); err != nil {
		log.Error().Err(err).Msg("reasoning response not parseable")
		return ErrorAnalysis(fmt.Sprintf("LLM analysis failed: %v", err))
	}

	analysis := raw.Normalize()

	log.Info().
		Str("verdict", analysis.Verdict).
		Float64("confidence", analysis.Confidence).
		Int("suggestions", len(analysis.Suggestions)).
		Msg("reuse analysis complete")

	return analysis
}

// ErrorAnalysis builds the terminal sentinel record for a failed
// reasoning stage.
func ErrorAnalysis(msg string) *Analysis {
	return &Analysis{
		ReuseFeasible:    false,
		Confidence:       0,
		Verdict:          VerdictAnalysisFailed,
		ConditionSummary: "Unable to analyze object",
		Reasoning:        msg,
		KeyFactors:       []string{},
		Suggestions:      []Suggestion{},
	}
}
