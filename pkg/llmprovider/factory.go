package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fsarta/synapse/config"
	"github.com/fsarta/synapse/pkg/gemini"
	"github.com/fsarta/synapse/pkg/log"
	"github.com/fsarta/synapse/pkg/openaicompat"
)

// NewPrimaryProvider returns the enabled provider with the lowest priority value.
// Providers that fail to initialize are skipped, so the primary is the first
// one in priority order that can actually be built. The choice is made once.
func NewPrimaryProvider(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			logger.Warnf(ctx, "Skipping LLM provider: %s", msg)
			continue
		}
		logger.Infof(ctx, "Primary LLM provider: %s (%s)", provider.Name(), provider.Model())
		return provider, nil
	}

	return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case openaicompat.ProviderDeepSeek, openaicompat.ProviderQwen, "alibaba", openaicompat.ProviderOpenAI:
		name := cfg.Name
		if name == "alibaba" {
			name = openaicompat.ProviderQwen
		}
		client, err := openaicompat.New(openaicompat.Config{
			Provider: name,
			APIKey:   cfg.APIKey,
			Model:    cfg.Model,
			BaseURL:  cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		return NewOpenAICompatAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
