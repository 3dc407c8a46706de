package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ops-dashboard/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

var ErrEmptyCompletion = errors.New("openai returned an empty completion")

// ChatClient drafts text through the chat completions API of OpenAI or any
// OpenAI-compatible endpoint.
type ChatClient struct {
	createCompletion completionFunc
	model            string
	logger           *observability.Logger
}

type completionFunc func(ctx context.Context, body openai.ChatCompletionNewParams, opts ...openaiOption.RequestOption) (*openai.ChatCompletion, error)

func NewChatClient(apiKey, baseURL, model string, logger *observability.Logger) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	options := []openaiOption.RequestOption{
		openaiOption.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		options = append(options, openaiOption.WithBaseURL(baseURL))
	}
	client := openai.NewClient(options...)
	return &ChatClient{
		createCompletion: client.Chat.Completions.New,
		model:            model,
		logger:           logger,
	}, nil
}

// Complete sends a system instruction and one user prompt and returns the reply text
func (c *ChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ai_provider", Value: "openai"},
		observability.Field{Key: "ai_model", Value: c.model},
	)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	completion, err := c.createCompletion(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(c.model),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to create chat completion", err)
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	c.logger.Info(ctx, "chat completion received")
	return text, nil
}
