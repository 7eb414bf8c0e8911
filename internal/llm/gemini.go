package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const (
	// GeminiVisionModel handles image analysis.
	GeminiVisionModel = "gemini-2.0-flash"
	// GeminiTextModel handles target selection, procedure generation and
	// quality assessment.
	GeminiTextModel = "gemini-1.5-flash"
)

// Gemini 2.0 Flash pricing (per million tokens), used for cost logging.
const (
	geminiInputPricePerMillion  = 0.10
	geminiOutputPricePerMillion = 0.40
)

// callTimeout bounds a single model call. Vision and generation latency
// runs long, so the bound is generous.
const callTimeout = 120 * time.Second

// TextGenerator produces a text completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// VisionGenerator produces a text response for a prompt plus an image.
type VisionGenerator interface {
	GenerateVision(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
}

// GeminiClient wraps the Gemini API for both vision and text generation.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini client with the given API key. A
// missing key is a configuration error, not a crash.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, NewError(KindConfiguration, "GEMINI_API_KEY not found in environment variables")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, WrapError(KindTransport, err, "failed to create Gemini client: %v", err)
	}
	return &GeminiClient{client: client}, nil
}

// GenerateText implements the TextGenerator interface using Gemini.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	return withRetry(ctx, "gemini text", func() (string, error) {
		return g.generate(ctx, GeminiTextModel, parts)
	})
}

// GenerateVision implements the VisionGenerator interface using Gemini.
func (g *GeminiClient) GenerateVision(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		{InlineData: &genai.Blob{Data: imageData, MIMEType: mimeType}},
	}
	return withRetry(ctx, "gemini vision", func() (string, error) {
		return g.generate(ctx, GeminiVisionModel, parts)
	})
}

func (g *GeminiClient) generate(ctx context.Context, model string, parts []*genai.Part) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", NewError(KindTransport, "no response from Gemini")
	}

	text := result.Text()

	if result.UsageMetadata != nil {
		inputTokens := int64(result.UsageMetadata.PromptTokenCount)
		outputTokens := int64(result.UsageMetadata.CandidatesTokenCount)
		log.Info().
			Str("model", model).
			Int64("inputTokens", inputTokens).
			Int64("outputTokens", outputTokens).
			Float64("costUSD", calculateGeminiCost(inputTokens, outputTokens)).
			Msg("gemini llm call")
	}

	return text, nil
}

func calculateGeminiCost(inputTokens, outputTokens int64) float64 {
	inputCost := float64(inputTokens) / 1_000_000 * geminiInputPricePerMillion
	outputCost := float64(outputTokens) / 1_000_000 * geminiOutputPricePerMillion
	return inputCost + outputCost
}

// classifyGeminiError maps a genai failure into the error taxonomy.
// HTTP 429 responses become retryable rate-limit errors.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return RateLimitedError(err, "Gemini rate limited: %v", err)
	}
	// Some transports surface the status only in the message.
	if strings.Contains(err.Error(), "429") {
		return RateLimitedError(err, "Gemini rate limited: %v", err)
	}
	return WrapError(KindTransport, err, "failed to generate content: %v", err)
}
