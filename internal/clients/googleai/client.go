package googleai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ops-dashboard/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyCandidate = errors.New("gemini returned no text candidate")

// GeminiClient generates text with a Gemini model
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *observability.Logger
}

// NewGeminiClient creates a Gemini client. The caller owns Close.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *observability.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Complete sends a system instruction and one user prompt and returns the reply text
func (g *GeminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ai_provider", Value: "gemini"},
		observability.Field{Key: "ai_model", Value: g.model},
	)

	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		g.logger.Error(ctx, "failed to generate content", err)
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCandidate
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyCandidate
	}

	if resp.UsageMetadata != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "total_tokens", Value: resp.UsageMetadata.TotalTokenCount},
		)
	}
	g.logger.Info(ctx, "gemini content generated")
	return strings.TrimSpace(text.String()), nil
}
