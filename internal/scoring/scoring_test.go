package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoscan-ai/ecoscan/internal/reasoning"
	"github.com/ecoscan-ai/ecoscan/internal/vision"
)

func TestCalculateReuseScore(t *testing.T) {
	tests := []struct {
		name       string
		verdict    string
		confidence float64
		want       int
	}{
		{"not reusable caps at 30", reasoning.VerdictNotReusable, 95, 30},
		{"not reusable below cap", reasoning.VerdictNotReusable, 10, 10},
		{"conditional floors at 40", reasoning.VerdictConditionallyReusable, 20, 40},
		{"conditional caps at 75", reasoning.VerdictConditionallyReusable, 90, 75},
		{"conditional in band", reasoning.VerdictConditionallyReusable, 55, 55},
		{"reusable floors at 60", reasoning.VerdictReusable, 45, 60},
		{"reusable in band", reasoning.VerdictReusable, 85, 85},
		{"reusable caps at 100", reasoning.VerdictReusable, 100, 100},
		{"analysis failed passes confidence through", reasoning.VerdictAnalysisFailed, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := &reasoning.Analysis{Verdict: tt.verdict, Confidence: tt.confidence}
			assert.Equal(t, tt.want, CalculateReuseScore(analysis))
		})
	}
}

// Every verdict band must hold across the whole confidence range, so the
// displayed score can never contradict the displayed verdict.
func TestCalculateReuseScoreBands(t *testing.T) {
	for confidence := 0.0; confidence <= 100; confidence++ {
		notReusable := CalculateReuseScore(&reasoning.Analysis{Verdict: reasoning.VerdictNotReusable, Confidence: confidence})
		assert.LessOrEqual(t, notReusable, 30)

		conditional := CalculateReuseScore(&reasoning.Analysis{Verdict: reasoning.VerdictConditionallyReusable, Confidence: confidence})
		assert.GreaterOrEqual(t, conditional, 40)
		assert.LessOrEqual(t, conditional, 75)

		reusable := CalculateReuseScore(&reasoning.Analysis{Verdict: reasoning.VerdictReusable, Confidence: confidence})
		assert.GreaterOrEqual(t, reusable, 60)
		assert.LessOrEqual(t, reusable, 100)
	}
}

func TestGenerateScoreInterpretation(t *testing.T) {
	assert.Contains(t, GenerateScoreInterpretation(80), "Excellent")
	assert.Contains(t, GenerateScoreInterpretation(79), "Good")
	assert.Contains(t, GenerateScoreInterpretation(65), "Good")
	assert.Contains(t, GenerateScoreInterpretation(64), "Moderate")
	assert.Contains(t, GenerateScoreInterpretation(50), "Moderate")
	assert.Contains(t, GenerateScoreInterpretation(49), "Limited")
	assert.Contains(t, GenerateScoreInterpretation(35), "Limited")
	assert.Contains(t, GenerateScoreInterpretation(34), "Low")
}

func TestGetVerdictDisplay(t *testing.T) {
	display := GetVerdictDisplay(reasoning.VerdictReusable)
	assert.Equal(t, "green", display.Color)
	assert.Equal(t, "✅", display.Emoji)

	// Unrecognized verdicts fall back to the failure display.
	fallback := GetVerdictDisplay("Something Else")
	assert.Equal(t, "gray", fallback.Color)
	assert.Equal(t, "Unable to analyze this object.", fallback.Message)
}

func TestScoreColor(t *testing.T) {
	assert.Equal(t, "#28a745", ScoreColor(70))
	assert.Equal(t, "#ffc107", ScoreColor(50))
	assert.Equal(t, "#fd7e14", ScoreColor(30))
	assert.Equal(t, "#dc3545", ScoreColor(29))
}

func TestFormatFinalOutput(t *testing.T) {
	visionResult := &vision.Result{
		Status:      vision.StatusSuccess,
		Description: "A sturdy plastic bottle with a missing cap",
		ObjectType:  "plastic bottle",
	}
	analysis := &reasoning.Analysis{
		ReuseFeasible:    true,
		Confidence:       85,
		Verdict:          reasoning.VerdictReusable,
		ConditionSummary: "Intact, light wear",
		Reasoning:        "Structurally sound",
		KeyFactors:       []string{"intact"},
		Suggestions: []reasoning.Suggestion{
			{UseCase: "Planter", Explanation: "Drains well", Category: "outdoor"},
		},
	}

	output := FormatFinalOutput(visionResult, analysis)

	assert.Equal(t, "plastic bottle", output.ObjectType)
	assert.Equal(t, 85, output.Score)
	assert.Contains(t, output.ScoreInterpretation, "Excellent")
	assert.Equal(t, reasoning.VerdictReusable, output.Verdict)
	assert.Equal(t, "green", output.VerdictDisplay.Color)
	assert.Equal(t, "Intact, light wear", output.ConditionSummary)
	assert.Equal(t, visionResult.Description, output.VisualDescription)
	require.Len(t, output.Suggestions, 1)
	assert.True(t, output.ReuseFeasible)

	// Pure function: same inputs, same output.
	assert.Equal(t, output, FormatFinalOutput(visionResult, analysis))
}
