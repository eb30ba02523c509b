// Package llm adapts text generation services to the planner.
// Both implementations return the whole reply as one string; nothing streams.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// GeminiClient generates text with the Gemini API.
// Construct it once at startup and share it; the underlying genai client is
// safe for concurrent use.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// GeminiOption customizes the genai client configuration.
type GeminiOption func(*genai.ClientConfig)

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(url string) GeminiOption {
	return func(cc *genai.ClientConfig) {
		cc.HTTPOptions.BaseURL = url
	}
}

// NewGeminiClient creates a GeminiClient authenticated with apiKey.
func NewGeminiClient(ctx context.Context, apiKey, model string, opts ...GeminiOption) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cc)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("llm.NewGeminiClient: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends prompt as a single user turn and returns the reply text.
// An API failure or an empty reply is reported as domain.ErrGeneration.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("llm.GeminiClient.Generate: %w: %v", domain.ErrGeneration, err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("llm.GeminiClient.Generate: %w: empty reply", domain.ErrGeneration)
	}
	return text, nil
}

// Chat answers a free-form traveller question.
func (g *GeminiClient) Chat(ctx context.Context, query string) (string, error) {
	return g.Generate(ctx, ChatPrompt(query))
}
