package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsarta/synapse/pkg/gemini"
	"github.com/fsarta/synapse/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface.
// Gemini is asked for a JSON document so its output is expected to be clean.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		Prompt:           req.Prompt,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		ResponseMimeType: gemini.MimeTypeJSON,
	})
	if err != nil {
		if errors.Is(err, gemini.ErrSafetyBlocked) {
			err = fmt.Errorf("%w: %v", ErrSafetyBlocked, err)
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAICompatAdapter adapts pkg/openaicompat (DeepSeek, Qwen, OpenAI) to Provider.
// These backends answer in free text, often with the JSON wrapped in a code fence.
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new OpenAI-compatible adapter
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Complete(ctx, &openaicompat.Request{
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, openaicompat.ErrContentFiltered) {
			err = fmt.Errorf("%w: %v", ErrSafetyBlocked, err)
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.client.Provider()
}

// Model returns the model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
