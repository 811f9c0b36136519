package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/code-quality-ai/internal/domain/review"
)

const maxTokens = 2048

const defaultModel = "meta-llama/llama-3.3-70b-instruct:free"

// callTimeout caps one upstream call.
const callTimeout = 30 * time.Second

type Client struct {
	*openai.Client
	Model   string
	Timeout time.Duration
}

// NewClient builds a chat-completion client against an OpenAI-compatible
// endpoint. baseURL selects the provider (OpenRouter in production).
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = callTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", review.ErrUpstreamTimeout
		}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &review.UpstreamError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &review.UpstreamError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Err.Error()}
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("upstream returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
