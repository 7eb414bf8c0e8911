package transform

import (
	"fmt"
	"math"
	"strings"
)

// basePrice pairs a product-category substring with its base price in
// INR. Lookup is longest-match-wins, so "shelf unit" can never lose to
// "shelf" regardless of table order.
type basePrice struct {
	category string
	price    float64
}

var basePrices = []basePrice{
	{"storage", 80},
	{"planter", 100},
	{"organizer", 60},
	{"holder", 50},
	{"container", 70},
	{"shelf", 150},
	{"box", 90},
	{"pot", 80},
	{"vase", 120},
	{"decoration", 70},
	{"tool", 60},
	{"basket", 75},
	{"tray", 85},
	{"chair", 300},
	{"table", 400},
	{"shelf unit", 200},
	{"bench", 250},
}

// defaultBasePrice applies when no category matches the target.
const defaultBasePrice = 75

// sustainabilityPremium is the fixed upcycled-product markup.
const sustainabilityPremium = 1.10

// lookupBasePrice finds the base price for the longest category
// substring present in the target name. Ties keep the earlier entry.
func lookupBasePrice(targetProduct string) float64 {
	lower := strings.ToLower(targetProduct)

	price := float64(defaultBasePrice)
	bestLen := 0
	for _, bp := range basePrices {
		if strings.Contains(lower, bp.category) && len(bp.category) > bestLen {
			price = bp.price
			bestLen = len(bp.category)
		}
	}

	return price
}

// roundToNearest5 rounds half-up on the quotient before re-multiplying.
func roundToNearest5(v float64) int {
	return int(math.Floor(v/5+0.5)) * 5
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateMarketPrice computes a fair market price for the transformed
// product. Fully local and deterministic: the same inputs always
// produce the same range.
func CalculateMarketPrice(targetProduct string, quality QualityAssessment, procedure Procedure, objectType string) PricingResult {
	base := lookupBasePrice(targetProduct)

	lifespanMonths := quality.ExpectedLifespanMonths
	lifespanMultiplier := 1.0
	switch {
	case lifespanMonths >= 24:
		lifespanMultiplier = 1.15
	case lifespanMonths >= 12:
		lifespanMultiplier = 1.05
	case lifespanMonths < 6:
		lifespanMultiplier = 0.90
	}

	difficulty := procedure.DifficultyLevel
	timeMinutes := procedure.EstimatedTimeMinutes

	laborMultiplier := 1.0
	switch difficulty {
	case "Easy":
		laborMultiplier = 1.05
	case DifficultyMedium:
		laborMultiplier = 1.10
	case DifficultyHard:
		laborMultiplier = 1.15
	}
	if timeMinutes > 120 {
		laborMultiplier += 0.10
	} else if timeMinutes > 60 {
		laborMultiplier += 0.05
	}

	price := base * lifespanMultiplier * laborMultiplier * sustainabilityPremium

	minPrice := roundToNearest5(price * 0.90)
	maxPrice := roundToNearest5(price * 1.10)

	reasoning := []string{
		fmt.Sprintf("Market rate for %s in Indian second-hand/upcycled market", strings.ToLower(targetProduct)),
	}
	if lifespanMonths >= 12 {
		reasoning = append(reasoning, fmt.Sprintf("Durability: Expected %d+ months lifespan", lifespanMonths))
	} else if lifespanMonths < 6 {
		reasoning = append(reasoning, fmt.Sprintf("Limited durability: %d months expected use", lifespanMonths))
	}
	if difficulty == DifficultyHard && timeMinutes > 60 {
		reasoning = append(reasoning, "Significant craftsmanship and time investment")
	} else if difficulty == DifficultyMedium {
		reasoning = append(reasoning, "Moderate effort required")
	} else {
		reasoning = append(reasoning, "Simple transformation process")
	}
	reasoning = append(reasoning, "Eco-friendly upcycled product value")
	if quality.StructuralStability == StabilityHigh {
		reasoning = append(reasoning, "Structurally sound and reliable")
	}

	confidence := "Medium"
	if lifespanMonths >= 12 && (difficulty == DifficultyLow || difficulty == "Easy") {
		confidence = "High"
	} else if lifespanMonths < 6 || difficulty == DifficultyHard {
		confidence = "Low"
	}

	return PricingResult{
		SuggestedPriceRange: PriceRange{
			Min:      minPrice,
			Max:      maxPrice,
			Currency: "INR",
		},
		PricingReasoning:  reasoning,
		PricingConfidence: confidence,
		PricingFactors: PricingFactors{
			BasePrice:             base,
			LifespanMultiplier:    round2(lifespanMultiplier),
			LaborMultiplier:       round2(laborMultiplier),
			SustainabilityPremium: round2(sustainabilityPremium),
		},
	}
}
