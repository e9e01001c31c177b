package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrMissingAPIKey is returned by every call when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// GeminiClient talks to Gemini through its OpenAI-compatible endpoint.
type GeminiClient struct {
	client openai.Client
	model  string
	apiKey string
}

// NewGeminiClient builds a client for model at baseURL. Extra request options
// (e.g. a test HTTP client) are applied last. SDK-level retries are disabled.
func NewGeminiClient(apiKey, baseURL, model string, opts ...option.RequestOption) *GeminiClient {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &GeminiClient{
		client: openai.NewClient(reqOpts...),
		model:  model,
		apiKey: apiKey,
	}
}

func (c *GeminiClient) Model() string {
	return c.model
}

// Generate sends prompt as a single user message and returns the first choice's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini chat completion: %w", err)
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
