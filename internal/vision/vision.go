package vision

import "context"

// Status reports whether the vision stage produced a usable description.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the vision stage output consumed by the reasoning and
// scoring stages. It is not mutated after construction.
type Result struct {
	Status      Status `json:"status"`
	Description string `json:"description"`
	ObjectType  string `json:"object_type"`
}

// Analyzer can analyze waste object images and describe their condition.
type Analyzer interface {
	// AnalyzeWasteObject takes image data and returns a condition
	// description plus a coarse material classification.
	AnalyzeWasteObject(ctx context.Context, imageData []byte, mimeType string) (*Result, error)
}

// ErrorResult builds the sentinel record the orchestrator short-circuits
// on when the vision stage fails.
func ErrorResult(msg string) *Result {
	return &Result{
		Status:      StatusError,
		Description: msg,
		ObjectType:  "unknown",
	}
}
