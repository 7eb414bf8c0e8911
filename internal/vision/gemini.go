package vision

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ecoscan-ai/ecoscan/internal/llm"
)

const analysisPrompt = `You are an expert material analyst examining a waste object for reuse potential.

Analyze this image and provide a DETAILED description including:

1. **Object Type**: What is this item? (plastic container, metal can, cardboard box, fabric, glass, etc.)
2. **Material Condition**: Describe the surface quality, visible wear, scratches, dents, or deformations
3. **Structural Integrity**: Does it appear intact, cracked, broken, or structurally compromised?
4. **Contamination**: Any visible dirt, stains, rust, mold, food residue, or other contamination?
5. **Color & Texture**: Note any fading, discoloration, or texture degradation
6. **Physical Damage**: Cracks, holes, tears, warping, or other damage
7. **Overall State**: Clean/dirty, old/new, functional/damaged

Be specific and observational. Focus on what you can SEE in the image.
Write in a clear, professional tone as if documenting for a sustainability assessment.

Format your response as a single detailed paragraph.`

// GeminiAnalyzer uses a vision-capable Gemini model for waste object
// analysis.
type GeminiAnalyzer struct {
	gen llm.VisionGenerator
}

// NewGeminiAnalyzer creates an analyzer backed by the given vision
// generator.
func NewGeminiAnalyzer(gen llm.VisionGenerator) *GeminiAnalyzer {
	return &GeminiAnalyzer{gen: gen}
}

// AnalyzeWasteObject implements the Analyzer interface. The model
// returns a free-text condition paragraph; the material classification
// is derived locally by keyword matching over that text.
func (g *GeminiAnalyzer) AnalyzeWasteObject(ctx context.Context, imageData []byte, mimeType string) (*Result, error) {
	text, err := g.gen.GenerateVision(ctx, analysisPrompt, imageData, mimeType)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(text)
	if description == "" {
		return nil, llm.NewError(llm.KindTransport, "empty response from vision model")
	}

	objectType := ExtractObjectType(description)

	log.Info().
		Str("objectType", objectType).
		Int("descriptionLen", len(description)).
		Msg("vision analysis complete")

	return &Result{
		Status:      StatusSuccess,
		Description: description,
		ObjectType:  objectType,
	}, nil
}
