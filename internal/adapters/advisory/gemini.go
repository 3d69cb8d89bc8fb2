package advisory

import (
	"context"
	"fmt"

	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	"google.golang.org/genai"
)

// GeminiGenerator adapts the Gemini API to the TextGenerator port. It treats
// the remote service as a pure text -> text function; nothing is parsed from
// the response beyond its plain text.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed text generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

var _ portsrepo.TextGenerator = (*GeminiGenerator)(nil)

// GenerateText sends the prompt and returns the response text verbatim.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
