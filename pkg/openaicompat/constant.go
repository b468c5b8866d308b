package openaicompat

import "time"

// Known OpenAI-compatible backends.
const (
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderOpenAI   = "openai"
)

// DefaultTimeout is the default HTTP client timeout
const DefaultTimeout = 30 * time.Second

type preset struct {
	baseURL string
	model   string
}

var presets = map[string]preset{
	ProviderDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	ProviderQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	ProviderOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
}

// content_filter is reported both as a finish reason and as an API error code.
const contentFilterCode = "content_filter"
