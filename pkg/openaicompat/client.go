package openaicompat

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

func newClientImpl(cfg Config) *clientImpl {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = cfg.HTTPClient

	return &clientImpl{
		provider: cfg.Provider,
		model:    cfg.Model,
		client:   openai.NewClientWithConfig(oc),
	}
}

func (c *clientImpl) Provider() string { return c.provider }
func (c *clientImpl) Model() string    { return c.model }

// Complete sends the prompt as a single user message and returns the first choice.
func (c *clientImpl) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		if isContentFilterError(err) {
			return nil, fmt.Errorf("%w: %v", ErrContentFiltered, err)
		}
		return nil, fmt.Errorf("openaicompat %s: %w", c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyChoices
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return nil, fmt.Errorf("%w: finish reason %s", ErrContentFiltered, choice.FinishReason)
	}

	return &Response{
		Text:         choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Model:        resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func isContentFilterError(err error) bool {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if code, ok := apiErr.Code.(string); ok && code == contentFilterCode {
		return true
	}
	return apiErr.Type == contentFilterCode
}
