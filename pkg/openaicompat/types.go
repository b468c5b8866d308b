package openaicompat

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds client configuration. Provider selects defaults for BaseURL and Model.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults from the provider preset
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	p, known := presets[c.Provider]
	if !known && c.BaseURL == "" {
		return fmt.Errorf("openaicompat: unknown provider %q requires a BaseURL", c.Provider)
	}
	if c.BaseURL == "" {
		c.BaseURL = p.baseURL
	}
	if c.Model == "" {
		if p.model == "" {
			return fmt.Errorf("openaicompat: Model is required for provider %q", c.Provider)
		}
		c.Model = p.model
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is a single user-turn completion request.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response carries the first choice's text.
type Response struct {
	Text         string
	FinishReason string
	Model        string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type clientImpl struct {
	provider string
	model    string
	client   *openai.Client
}
