package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Model is the generation surface the advisor needs from an LLM.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiModel generates advice through Google's Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  string
}

func NewGeminiModel(ctx context.Context, apiKey string, model string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("advisor API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiModel{client: client, model: model}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generation failed: %w", err)
	}
	return result.Text(), nil
}
