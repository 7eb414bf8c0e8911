package pipeline

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/ecoscan-ai/ecoscan/config"
	"github.com/ecoscan-ai/ecoscan/internal/llm"
	"github.com/ecoscan-ai/ecoscan/internal/reasoning"
	"github.com/ecoscan-ai/ecoscan/internal/scoring"
	"github.com/ecoscan-ai/ecoscan/internal/storage"
	"github.com/ecoscan-ai/ecoscan/internal/transform"
	"github.com/ecoscan-ai/ecoscan/internal/vision"
)

// StatusSuccess marks a completed analysis.
const StatusSuccess = "success"

// Reasoner runs the reasoning stage. Its result is always structurally
// valid; failures are absorbed into a sentinel analysis.
type Reasoner interface {
	AnalyzeReusePotential(ctx context.Context, visionDescription, objectType string) *reasoning.Analysis
}

// Transformer generates the optional transformation layer.
type Transformer interface {
	Generate(ctx context.Context, suggestions []reasoning.Suggestion, objectType, conditionSummary, visualDescription string) *transform.Intelligence
}

// Result is the collaborator-facing pipeline output.
type Result struct {
	*scoring.Output
	Transformation *transform.Intelligence `json:"transformation_intelligence,omitempty"`
}

// ErrorResult is the top-level error shape surfaced to collaborators.
type ErrorResult struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	ObjectType string `json:"object_type"`
	Score      int    `json:"score"`
	Verdict    string `json:"verdict"`
}

// AsErrorResult converts a pipeline error into the collaborator shape.
func AsErrorResult(err error) *ErrorResult {
	return &ErrorResult{
		Status:     "error",
		Error:      err.Error(),
		ObjectType: "Unknown",
		Score:      0,
		Verdict:    reasoning.VerdictAnalysisFailed,
	}
}

// Runner sequences the pipeline stages. Each run is independent and
// stateless; the stages hold no cross-request state.
type Runner struct {
	vision      vision.Analyzer
	reasoner    Reasoner
	transformer Transformer
	store       storage.Store
}

// New creates a runner from explicit stages. The store may be nil.
func New(v vision.Analyzer, r Reasoner, t Transformer, store storage.Store) *Runner {
	return &Runner{vision: v, reasoner: r, transformer: t, store: store}
}

// NewFromCredentials wires the default stages: Gemini for vision and
// transformation, the local Ollama service for reasoning, with vision
// results cached in the store when one is given.
func NewFromCredentials(ctx context.Context, creds config.Credentials, store storage.Store) (*Runner, error) {
	creds = creds.FromEnv()

	gemini, err := llm.NewGeminiClient(ctx, creds.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	ollama := llm.NewOllamaClient(creds.ReasonerURL, creds.ReasonerModel)

	var analyzer vision.Analyzer = vision.NewGeminiAnalyzer(gemini)
	if store != nil {
		analyzer = vision.NewCachedAnalyzer(analyzer, store)
	}

	return New(analyzer, reasoning.NewAnalyzer(ollama), transform.NewEngine(gemini), store), nil
}

// RunBasicAnalysis runs validation, vision, reasoning and scoring.
// Validation and vision failures short-circuit with an error; reasoning
// failures are absorbed into the Analysis Failed sentinel and the
// pipeline continues with structurally valid degraded data.
func (r *Runner) RunBasicAnalysis(ctx context.Context, imageData []byte, mimeType string) (*Result, error) {
	if !vision.ValidateImage(imageData) {
		return nil, llm.NewError(llm.KindValidation, "invalid image: image too small or corrupted")
	}

	log.Info().Int("imageBytes", len(imageData)).Msg("starting waste object analysis")

	visionResult, err := r.vision.AnalyzeWasteObject(ctx, imageData, mimeType)
	if err != nil {
		return nil, err
	}
	if visionResult.Status != vision.StatusSuccess {
		return nil, llm.NewError(llm.KindTransport, "%s", visionResult.Description)
	}

	log.Info().Str("objectType", visionResult.ObjectType).Msg("vision stage complete")

	analysis := r.reasoner.AnalyzeReusePotential(ctx, visionResult.Description, visionResult.ObjectType)

	out := scoring.FormatFinalOutput(visionResult, analysis)
	out.Status = StatusSuccess
	result := &Result{Output: out}

	r.saveHistory(result)

	return result, nil
}

// RunTransformationAnalysis attaches the transformation layer to a
// successful, reuse-feasible analysis. Anything else is returned
// unchanged. The input is not mutated.
func (r *Runner) RunTransformationAnalysis(ctx context.Context, basic *Result) *Result {
	if basic == nil || basic.Status != StatusSuccess || !basic.ReuseFeasible {
		return basic
	}
	if r.transformer == nil || basic.Transformation != nil {
		return basic
	}

	intelligence := r.transformer.Generate(
		ctx,
		basic.Suggestions,
		basic.ObjectType,
		basic.ConditionSummary,
		basic.VisualDescription,
	)

	out := *basic.Output
	return &Result{Output: &out, Transformation: intelligence}
}

func (r *Runner) saveHistory(result *Result) {
	if r.store == nil {
		return
	}

	blob, err := json.Marshal(result)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal analysis for history")
		return
	}

	rec := &storage.AnalysisRecord{
		ObjectType: result.ObjectType,
		Score:      result.Score,
		Verdict:    result.Verdict,
		Result:     blob,
	}
	if err := r.store.SaveAnalysis(rec); err != nil {
		log.Warn().Err(err).Msg("failed to save analysis history")
	}
}
