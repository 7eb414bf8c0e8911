package transform

// rawProcedure mirrors the procedure JSON schema with optional fields.
type rawProcedure struct {
	ProcedureSteps       []string `json:"procedure_steps"`
	RequiredTools        []string `json:"required_tools"`
	RequiredMaterials    []string `json:"required_materials"`
	EstimatedTimeMinutes *float64 `json:"estimated_time_minutes"`
	DifficultyLevel      *string  `json:"difficulty_level"`
	SafetyNotes          *string  `json:"safety_notes"`
}

// rawQuality mirrors the quality assessment JSON schema.
type rawQuality struct {
	ExpectedLifespanMonths *float64 `json:"expected_lifespan_months"`
	UsageLimitations       *string  `json:"usage_limitations"`
	StructuralStability    *string  `json:"structural_stability"`
}

// Time and lifespan clamp bounds.
const (
	minProcedureMinutes = 10
	maxProcedureMinutes = 180
	minLifespanMonths   = 3
	maxLifespanMonths   = 60
)

// Normalize applies defaults and clamps. The difficulty set accepted
// here includes Hard even though the generation prompt only asks for
// Low/Medium, so a model that volunteers Hard keeps the labor and
// confidence branches that inspect it meaningful.
func (raw *rawProcedure) Normalize() Procedure {
	p := Procedure{
		ProcedureSteps:       []string{"Procedure generation failed"},
		RequiredTools:        []string{"Basic tools"},
		RequiredMaterials:    []string{"As needed"},
		EstimatedTimeMinutes: 30,
		DifficultyLevel:      DifficultyMedium,
		SafetyNotes:          "Exercise caution during transformation",
	}

	if len(raw.ProcedureSteps) > 0 {
		p.ProcedureSteps = raw.ProcedureSteps
	}
	if len(raw.RequiredTools) > 0 {
		p.RequiredTools = raw.RequiredTools
	}
	if len(raw.RequiredMaterials) > 0 {
		p.RequiredMaterials = raw.RequiredMaterials
	}
	if raw.EstimatedTimeMinutes != nil {
		p.EstimatedTimeMinutes = clampInt(int(*raw.EstimatedTimeMinutes), minProcedureMinutes, maxProcedureMinutes)
	}
	if raw.DifficultyLevel != nil {
		switch *raw.DifficultyLevel {
		case DifficultyLow, DifficultyMedium, DifficultyHard:
			p.DifficultyLevel = *raw.DifficultyLevel
		}
	}
	if raw.SafetyNotes != nil && *raw.SafetyNotes != "" {
		p.SafetyNotes = *raw.SafetyNotes
	}

	return p
}

// Normalize applies defaults and clamps to the quality assessment.
func (raw *rawQuality) Normalize() QualityAssessment {
	q := QualityAssessment{
		ExpectedLifespanMonths: 12,
		UsageLimitations:       "Use as intended for best results",
		StructuralStability:    StabilityMedium,
	}

	if raw.ExpectedLifespanMonths != nil {
		q.ExpectedLifespanMonths = clampInt(int(*raw.ExpectedLifespanMonths), minLifespanMonths, maxLifespanMonths)
	}
	if raw.UsageLimitations != nil && *raw.UsageLimitations != "" {
		q.UsageLimitations = *raw.UsageLimitations
	}
	if raw.StructuralStability != nil {
		switch *raw.StructuralStability {
		case StabilityHigh, StabilityMedium, StabilityLow:
			q.StructuralStability = *raw.StructuralStability
		}
	}

	return q
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
