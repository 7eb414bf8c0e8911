package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcedureNormalizeDefaults(t *testing.T) {
	var raw rawProcedure
	require.NoError(t, json.Unmarshal([]byte(`{}`), &raw))

	p := raw.Normalize()
	assert.Equal(t, []string{"Procedure generation failed"}, p.ProcedureSteps)
	assert.Equal(t, 30, p.EstimatedTimeMinutes)
	assert.Equal(t, DifficultyMedium, p.DifficultyLevel)
	assert.Equal(t, "Exercise caution during transformation", p.SafetyNotes)
}

func TestProcedureNormalizeClampsTime(t *testing.T) {
	tests := []struct {
		minutes float64
		want    int
	}{
		{5, 10},
		{10, 10},
		{45, 45},
		{180, 180},
		{500, 180},
	}

	for _, tt := range tests {
		raw := rawProcedure{EstimatedTimeMinutes: &tt.minutes}
		assert.Equal(t, tt.want, raw.Normalize().EstimatedTimeMinutes)
	}
}

func TestProcedureNormalizeDifficulty(t *testing.T) {
	for difficulty, want := range map[string]string{
		"Low":     DifficultyLow,
		"Medium":  DifficultyMedium,
		"Hard":    DifficultyHard,
		"Extreme": DifficultyMedium,
		"easy":    DifficultyMedium,
	} {
		d := difficulty
		raw := rawProcedure{DifficultyLevel: &d}
		assert.Equal(t, want, raw.Normalize().DifficultyLevel, difficulty)
	}
}

func TestQualityNormalize(t *testing.T) {
	var raw rawQuality
	require.NoError(t, json.Unmarshal([]byte(`{}`), &raw))

	q := raw.Normalize()
	assert.Equal(t, 12, q.ExpectedLifespanMonths)
	assert.Equal(t, StabilityMedium, q.StructuralStability)
	assert.Equal(t, "Use as intended for best results", q.UsageLimitations)
}

func TestQualityNormalizeClampsLifespan(t *testing.T) {
	tests := []struct {
		months float64
		want   int
	}{
		{1, 3},
		{3, 3},
		{24, 24},
		{60, 60},
		{120, 60},
	}

	for _, tt := range tests {
		raw := rawQuality{ExpectedLifespanMonths: &tt.months}
		assert.Equal(t, tt.want, raw.Normalize().ExpectedLifespanMonths)
	}
}

func TestQualityNormalizeStability(t *testing.T) {
	invalid := "Rock solid"
	raw := rawQuality{StructuralStability: &invalid}
	assert.Equal(t, StabilityMedium, raw.Normalize().StructuralStability)

	high := StabilityHigh
	raw = rawQuality{StructuralStability: &high}
	assert.Equal(t, StabilityHigh, raw.Normalize().StructuralStability)
}
