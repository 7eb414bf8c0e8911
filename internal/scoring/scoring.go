package scoring

import (
	"github.com/ecoscan-ai/ecoscan/internal/reasoning"
	"github.com/ecoscan-ai/ecoscan/internal/vision"
)

// VerdictDisplay holds the UI-facing properties for a verdict.
type VerdictDisplay struct {
	Color   string `json:"color"`
	Emoji   string `json:"emoji"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// Output is the terminal record of the basic pipeline: vision and
// reasoning fields combined with the derived score and display data.
type Output struct {
	Status              string                 `json:"status,omitempty"`
	ObjectType          string                 `json:"object_type"`
	Score               int                    `json:"score"`
	ScoreInterpretation string                 `json:"score_interpretation"`
	Verdict             string                 `json:"verdict"`
	VerdictDisplay      VerdictDisplay         `json:"verdict_display"`
	ConditionSummary    string                 `json:"condition_summary"`
	VisualDescription   string                 `json:"visual_description"`
	Reasoning           string                 `json:"reasoning"`
	KeyFactors          []string               `json:"key_factors"`
	Suggestions         []reasoning.Suggestion `json:"suggestions"`
	ReuseFeasible       bool                   `json:"reuse_feasible"`
}

// CalculateReuseScore maps confidence through a verdict-gated piecewise
// clamp so the displayed score can never contradict the displayed
// verdict (e.g. 95% confidence on a Not Reusable item is forced to 30).
func CalculateReuseScore(analysis *reasoning.Analysis) int {
	confidence := int(analysis.Confidence)

	switch analysis.Verdict {
	case reasoning.VerdictNotReusable:
		return min(confidence, 30)
	case reasoning.VerdictConditionallyReusable:
		return max(40, min(confidence, 75))
	case reasoning.VerdictReusable:
		return max(60, min(confidence, 100))
	default:
		return confidence
	}
}

var verdictDisplays = map[string]VerdictDisplay{
	reasoning.VerdictReusable: {
		Color:   "green",
		Emoji:   "✅",
		Message: "This object is suitable for reuse!",
		Icon:    "🌱",
	},
	reasoning.VerdictConditionallyReusable: {
		Color:   "orange",
		Emoji:   "⚠️",
		Message: "This object can be reused with some preparation or limitations.",
		Icon:    "🔄",
	},
	reasoning.VerdictNotReusable: {
		Color:   "red",
		Emoji:   "❌",
		Message: "This object is not recommended for reuse.",
		Icon:    "🚫",
	},
	reasoning.VerdictAnalysisFailed: {
		Color:   "gray",
		Emoji:   "⚠️",
		Message: "Unable to analyze this object.",
		Icon:    "❓",
	},
}

// GetVerdictDisplay returns display properties for a verdict. Unknown
// verdicts fall back to the Analysis Failed entry.
func GetVerdictDisplay(verdict string) VerdictDisplay {
	if display, ok := verdictDisplays[verdict]; ok {
		return display
	}
	return verdictDisplays[reasoning.VerdictAnalysisFailed]
}

// GenerateScoreInterpretation maps a score to its text band.
func GenerateScoreInterpretation(score int) string {
	switch {
	case score >= 80:
		return "Excellent reuse potential - minimal preparation needed"
	case score >= 65:
		return "Good reuse potential - suitable for most applications"
	case score >= 50:
		return "Moderate reuse potential - may need cleaning or minor repairs"
	case score >= 35:
		return "Limited reuse potential - significant limitations apply"
	default:
		return "Low reuse potential - not recommended for most uses"
	}
}

// ScoreColor returns a hex color for score visualization.
func ScoreColor(score int) string {
	switch {
	case score >= 70:
		return "#28a745"
	case score >= 50:
		return "#ffc107"
	case score >= 30:
		return "#fd7e14"
	default:
		return "#dc3545"
	}
}

// FormatFinalOutput assembles the combined record from the vision and
// reasoning stage outputs. Pure function: identical inputs yield
// identical output.
func FormatFinalOutput(visionResult *vision.Result, analysis *reasoning.Analysis) *Output {
	score := CalculateReuseScore(analysis)

	return &Output{
		ObjectType:          visionResult.ObjectType,
		Score:               score,
		ScoreInterpretation: GenerateScoreInterpretation(score),
		Verdict:             analysis.Verdict,
		VerdictDisplay:      GetVerdictDisplay(analysis.Verdict),
		ConditionSummary:    analysis.ConditionSummary,
		VisualDescription:   visionResult.Description,
		Reasoning:           analysis.Reasoning,
		KeyFactors:          analysis.KeyFactors,
		Suggestions:         analysis.Suggestions,
		ReuseFeasible:       analysis.ReuseFeasible,
	}
}
