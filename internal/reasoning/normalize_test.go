package reasoning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRaw(t *testing.T, jsonStr string) *rawAnalysis {
	t.Helper()
	var raw rawAnalysis
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &raw))
	return &raw
}

func TestNormalizeDefaults(t *testing.T) {
	a := parseRaw(t, `{}`).Normalize()

	assert.False(t, a.ReuseFeasible)
	assert.Equal(t, 50.0, a.Confidence)
	assert.Equal(t, VerdictNotReusable, a.Verdict) // Unknown repaired from reuse_feasible=false
	assert.Equal(t, "Analysis unavailable", a.ConditionSummary)
	assert.Equal(t, "No reasoning provided", a.Reasoning)
	assert.Empty(t, a.KeyFactors)
	assert.Empty(t, a.Suggestions)
	assert.NotNil(t, a.KeyFactors)
	assert.NotNil(t, a.Suggestions)
}

func TestNormalizeVerdictRepair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "feasible with high confidence",
			input: `{"reuse_feasible": true, "confidence": 85, "verdict": "Maybe"}`,
			want:  VerdictReusable,
		},
		{
			name:  "feasible with moderate confidence",
			input: `{"reuse_feasible": true, "confidence": 50, "verdict": "Maybe"}`,
			want:  VerdictConditionallyReusable,
		},
		{
			name:  "feasible at exactly 70 is conditional",
			input: `{"reuse_feasible": true, "confidence": 70, "verdict": "sure!"}`,
			want:  VerdictConditionallyReusable,
		},
		{
			name:  "not feasible",
			input: `{"reuse_feasible": false, "confidence": 10}`,
			want:  VerdictNotReusable,
		},
		{
			name:  "canonical verdict preserved",
			input: `{"reuse_feasible": false, "confidence": 90, "verdict": "Conditionally Reusable"}`,
			want:  VerdictConditionallyReusable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRaw(t, tt.input).Normalize().Verdict)
		})
	}
}

func TestNormalizeClampsConfidence(t *testing.T) {
	assert.Equal(t, 100.0, parseRaw(t, `{"confidence": 250}`).Normalize().Confidence)
	assert.Equal(t, 0.0, parseRaw(t, `{"confidence": -10}`).Normalize().Confidence)
	assert.Equal(t, 62.5, parseRaw(t, `{"confidence": 62.5}`).Normalize().Confidence)
}

func TestNormalizeSuggestionTitleFallback(t *testing.T) {
	a := parseRaw(t, `{
		"reuse_feasible": true,
		"confidence": 80,
		"verdict": "Reusable",
		"suggestions": [
			{"title": "Desk organizer", "explanation": "Sturdy walls", "category": "home_utility"},
			{"use_case": "Planter", "explanation": "Drains well", "category": "outdoor"}
		]
	}`).Normalize()

	require.Len(t, a.Suggestions, 2)
	assert.Equal(t, "Desk organizer", a.Suggestions[0].UseCase)
	assert.Equal(t, "Planter", a.Suggestions[1].UseCase)
}
