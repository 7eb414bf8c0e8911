package reasoning

// rawAnalysis mirrors the JSON schema the model is asked to return.
// Pointer fields distinguish "absent" from zero values so defaults can
// be applied field by field.
type rawAnalysis struct {
	ReuseFeasible    *bool        `json:"reuse_feasible"`
	Confidence       *float64     `json:"confidence"`
	Verdict          *string      `json:"verdict"`
	ConditionSummary *string      `json:"condition_summary"`
	Reasoning        *string      `json:"reasoning"`
	KeyFactors       []string     `json:"key_factors"`
	Suggestions      []Suggestion `json:"suggestions"`
}

// Normalize fills defaults for missing fields, clamps confidence to
// [0,100] and repairs unrecognized verdicts, so downstream stages never
// see an invalid record.
func (raw *rawAnalysis) Normalize() *Analysis {
	a := &Analysis{
		ReuseFeasible:    false,
		Confidence:       50,
		Verdict:          VerdictUnknown,
		ConditionSummary: "Analysis unavailable",
		Reasoning:        "No reasoning provided",
		KeyFactors:       []string{},
		Suggestions:      []Suggestion{},
	}

	if raw.ReuseFeasible != nil {
		a.ReuseFeasible = *raw.ReuseFeasible
	}
	if raw.Confidence != nil {
		a.Confidence = clamp(*raw.Confidence, 0, 100)
	}
	if raw.Verdict != nil {
		a.Verdict = *raw.Verdict
	}
	if raw.ConditionSummary != nil {
		a.ConditionSummary = *raw.ConditionSummary
	}
	if raw.Reasoning != nil {
		a.Reasoning = *raw.Reasoning
	}
	if raw.KeyFactors != nil {
		a.KeyFactors = raw.KeyFactors
	}
	if raw.Suggestions != nil {
		a.Suggestions = raw.Suggestions
	}

	// Models sometimes emit "title" instead of "use_case".
	for i := range a.Suggestions {
		if a.Suggestions[i].UseCase == "" && a.Suggestions[i].Title != "" {
			a.Suggestions[i].UseCase = a.Suggestions[i].Title
		}
	}

	if !validVerdict(a.Verdict) {
		a.Verdict = inferVerdict(a.ReuseFeasible, a.Confidence)
	}

	return a
}

func validVerdict(v string) bool {
	switch v {
	case VerdictReusable, VerdictConditionallyReusable, VerdictNotReusable:
		return true
	}
	return false
}

// inferVerdict re-derives the verdict when the model emits an
// unrecognized value.
func inferVerdict(reuseFeasible bool, confidence float64) string {
	if !reuseFeasible {
		return VerdictNotReusable
	}
	if confidence > 70 {
		return VerdictReusable
	}
	return VerdictConditionallyReusable
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
