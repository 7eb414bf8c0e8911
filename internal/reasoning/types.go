package reasoning

// Canonical verdict values. The normalizer guarantees downstream
// scoring only ever sees one of these (or the sentinel values below).
const (
	VerdictReusable              = "Reusable"
	VerdictConditionallyReusable = "Conditionally Reusable"
	VerdictNotReusable           = "Not Reusable"
	VerdictAnalysisFailed        = "Analysis Failed"
	VerdictUnknown               = "Unknown"
)

// Suggestion is a single reuse idea. Order is significant: the first
// suggestion is the default transformation target.
type Suggestion struct {
	UseCase      string   `json:"use_case"`
	Title        string   `json:"title,omitempty"`
	Explanation  string   `json:"explanation"`
	Category     string   `json:"category"`
	Difficulty   string   `json:"difficulty,omitempty"`
	TimeRequired string   `json:"time_required,omitempty"`
	Materials    []string `json:"materials,omitempty"`
	Steps        []string `json:"steps,omitempty"`
	CO2Saved     string   `json:"co2_saved,omitempty"`
	SafetyNotes  []string `json:"safety_notes,omitempty"`
}

// Analysis is the normalized reasoning stage output. Confidence is
// always in [0,100] and Verdict is always one of the fixed values.
type Analysis struct {
	ReuseFeasible    bool         `json:"reuse_feasible"`
	Confidence       float64      `json:"confidence"`
	Verdict          string       `json:"verdict"`
	ConditionSummary string       `json:"condition_summary"`
	Reasoning        string       `json:"reasoning"`
	KeyFactors       []string     `json:"key_factors"`
	Suggestions      []Suggestion `json:"suggestions"`
}
