package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// pingTimeout bounds the health probe against the local model service.
const pingTimeout = 2 * time.Second

// OllamaClient talks to a local Ollama server for text reasoning.
type OllamaClient struct {
	httpClient *resty.Client
	model      string
}

// NewOllamaClient creates a client for the Ollama HTTP API at baseURL
// (e.g. http://localhost:11434) using the given model.
func NewOllamaClient(baseURL, model string) *OllamaClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(callTimeout).
		SetHeader("Accept", "application/json")

	return &OllamaClient{httpClient: httpClient, model: model}
}

// Ping checks that the Ollama service is reachable. Failure is a
// configuration error: the service is a local prerequisite, not a
// remote dependency.
func (c *OllamaClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	res, err := c.httpClient.NewRequest().SetContext(ctx).Get("/api/tags")
	if err != nil {
		return WrapError(KindConfiguration, err, "Ollama service not running. Please start: ollama serve")
	}
	if res.IsError() {
		return NewError(KindConfiguration, "Ollama service not healthy (status: %d)", res.StatusCode())
	}
	return nil
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// GenerateText implements the TextGenerator interface against the
// Ollama /api/generate endpoint.
func (c *OllamaClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return withRetry(ctx, "ollama generate", func() (string, error) {
		return c.generate(ctx, prompt)
	})
}

func (c *OllamaClient) generate(ctx context.Context, prompt string) (string, error) {
	result := &ollamaGenerateResponse{}

	res, err := c.httpClient.NewRequest().
		SetContext(ctx).
		SetBody(ollamaGenerateRequest{Model: c.model, Prompt: prompt, Stream: false}).
		SetResult(result).
		Post("/api/generate")
	if err != nil {
		return "", WrapError(KindTransport, err, "reasoning model call failed: %v", err)
	}
	if res.StatusCode() == http.StatusTooManyRequests {
		return "", RateLimitedError(nil, "reasoning model rate limited (status: 429)")
	}
	if res.IsError() {
		return "", NewError(KindTransport, "reasoning model error: %s", res.String())
	}

	log.Debug().
		Str("model", c.model).
		Int("promptLen", len(prompt)).
		Int("responseLen", len(result.Response)).
		Msg("ollama llm call")

	return strings.TrimSpace(result.Response), nil
}
