package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMarketPrice(t *testing.T) {
	// Planter, 24 month lifespan, Medium difficulty, under an hour:
	// 100 * 1.15 * 1.10 * 1.10 = 139.15 → range 125-155 after rounding.
	quality := QualityAssessment{
		ExpectedLifespanMonths: 24,
		UsageLimitations:       "Outdoor use only",
		StructuralStability:    StabilityHigh,
	}
	procedure := Procedure{
		ProcedureSteps:       []string{"Clean", "Cut", "Paint"},
		EstimatedTimeMinutes: 45,
		DifficultyLevel:      DifficultyMedium,
	}

	result := CalculateMarketPrice("Vertical garden planter", quality, procedure, "plastic bottle")

	assert.Equal(t, 100.0, result.PricingFactors.BasePrice)
	assert.Equal(t, 1.15, result.PricingFactors.LifespanMultiplier)
	assert.Equal(t, 1.10, result.PricingFactors.LaborMultiplier)
	assert.Equal(t, 1.10, result.PricingFactors.SustainabilityPremium)
	assert.Equal(t, 125, result.SuggestedPriceRange.Min)
	assert.Equal(t, 155, result.SuggestedPriceRange.Max)
	assert.Equal(t, "INR", result.SuggestedPriceRange.Currency)

	assert.Contains(t, result.PricingReasoning, "Market rate for vertical garden planter in Indian second-hand/upcycled market")
	assert.Contains(t, result.PricingReasoning, "Eco-friendly upcycled product value")
	assert.Contains(t, result.PricingReasoning, "Structurally sound and reliable")
}

func TestCalculateMarketPriceDeterministic(t *testing.T) {
	quality := QualityAssessment{ExpectedLifespanMonths: 12, StructuralStability: StabilityMedium}
	procedure := Procedure{EstimatedTimeMinutes: 30, DifficultyLevel: DifficultyLow}

	first := CalculateMarketPrice("Storage box", quality, procedure, "cardboard box")
	second := CalculateMarketPrice("Storage box", quality, procedure, "cardboard box")
	assert.Equal(t, first, second)
}

func TestLookupBasePrice(t *testing.T) {
	tests := []struct {
		target string
		want   float64
	}{
		{"Vertical garden planter", 100},
		{"Wall shelf", 150},
		{"Modular shelf unit", 200}, // longest match beats "shelf"
		{"Garden chair", 300},
		{"Something unrecognized", 75},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lookupBasePrice(tt.target), tt.target)
	}
}

func TestCalculateMarketPriceLaborSurcharges(t *testing.T) {
	quality := QualityAssessment{ExpectedLifespanMonths: 12, StructuralStability: StabilityMedium}

	long := CalculateMarketPrice("Storage box", quality, Procedure{EstimatedTimeMinutes: 150, DifficultyLevel: DifficultyHard}, "crate")
	assert.Equal(t, 1.25, long.PricingFactors.LaborMultiplier)

	moderate := CalculateMarketPrice("Storage box", quality, Procedure{EstimatedTimeMinutes: 90, DifficultyLevel: DifficultyLow}, "crate")
	assert.Equal(t, 1.10, moderate.PricingFactors.LaborMultiplier)
}

func TestCalculateMarketPriceConfidence(t *testing.T) {
	high := CalculateMarketPrice("Planter",
		QualityAssessment{ExpectedLifespanMonths: 18, StructuralStability: StabilityHigh},
		Procedure{EstimatedTimeMinutes: 20, DifficultyLevel: DifficultyLow}, "bottle")
	assert.Equal(t, "High", high.PricingConfidence)

	low := CalculateMarketPrice("Planter",
		QualityAssessment{ExpectedLifespanMonths: 4, StructuralStability: StabilityLow},
		Procedure{EstimatedTimeMinutes: 20, DifficultyLevel: DifficultyMedium}, "bottle")
	assert.Equal(t, "Low", low.PricingConfidence)

	medium := CalculateMarketPrice("Planter",
		QualityAssessment{ExpectedLifespanMonths: 8, StructuralStability: StabilityMedium},
		Procedure{EstimatedTimeMinutes: 20, DifficultyLevel: DifficultyMedium}, "bottle")
	assert.Equal(t, "Medium", medium.PricingConfidence)
}

func TestRoundToNearest5(t *testing.T) {
	assert.Equal(t, 125, roundToNearest5(125.235))
	assert.Equal(t, 155, roundToNearest5(153.065))
	assert.Equal(t, 75, roundToNearest5(72.5))
	assert.Equal(t, 70, roundToNearest5(72.49))
	assert.Equal(t, 0, roundToNearest5(0))
}

func TestPriceRangeOrdering(t *testing.T) {
	for _, target := range []string{"Planter", "Shelf unit", "Vase", "Unknown thing"} {
		result := CalculateMarketPrice(target,
			QualityAssessment{ExpectedLifespanMonths: 12, StructuralStability: StabilityMedium},
			Procedure{EstimatedTimeMinutes: 30, DifficultyLevel: DifficultyMedium}, "object")
		require.LessOrEqual(t, result.SuggestedPriceRange.Min, result.SuggestedPriceRange.Max, target)
		assert.Positive(t, result.SuggestedPriceRange.Min, target)
	}
}
