package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsarta/synapse/pkg/log"
)

// DefaultTimeout bounds a provider call when Config.Timeout is not set.
const DefaultTimeout = 30 * time.Second

// Manager invokes the fixed primary provider once per call, bounded by a timeout.
// There is no retry and no fallback: one failed call is a terminal failure.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// NewManager creates a new Provider Manager around the primary provider
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

type result struct {
	resp *Response
	err  error
}

// Invoke sends prompt to the primary provider and classifies the result.
// It stops waiting when the timeout elapses or ctx is done; a provider that
// ignores cancellation may keep running in the background until it returns.
func (m *Manager) Invoke(ctx context.Context, prompt string) Outcome {
	if m.provider == nil {
		return Outcome{Tag: TagTransportError, Err: ErrNoProvidersConfigured}
	}

	out := Outcome{ProviderName: m.provider.Name(), ModelName: m.provider.Model()}

	callCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		resp, err := m.provider.GenerateContent(callCtx, &Request{
			Prompt:      prompt,
			Temperature: m.config.Temperature,
			MaxTokens:   m.config.MaxTokens,
		})
		done <- result{resp: resp, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && callCtx.Err() != nil && !errors.Is(r.err, ErrSafetyBlocked) {
			r.err = m.timeoutError(ctx, r.err)
		}
		if r.err == nil && r.resp == nil {
			r.err = &ProviderError{Provider: m.provider.Name(), Err: errors.New("empty response")}
		}
		out.Tag = classify(r.err)
		out.Err = r.err
		if r.err != nil {
			m.logFailure(ctx, out)
			return out
		}
		out.RawOutput = r.resp.Text
		m.logSuccess(ctx, r.resp)
		return out
	case <-callCtx.Done():
		out.Tag = TagTransportError
		out.Err = m.timeoutError(ctx, callCtx.Err())
		m.logFailure(ctx, out)
		return out
	}
}

// timeoutError distinguishes our own deadline from the caller going away.
func (m *Manager) timeoutError(parent context.Context, cause error) error {
	if parent.Err() != nil {
		return &ProviderError{Provider: m.provider.Name(), Err: fmt.Errorf("request abandoned: %w", parent.Err())}
	}
	return &ProviderError{Provider: m.provider.Name(), Err: fmt.Errorf("%w after %s: %v", ErrProviderTimeout, m.config.Timeout, cause)}
}

// Name returns the primary provider's name.
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	var in, outTokens int
	if resp.Usage != nil {
		in, outTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		resp.ProviderName, resp.ModelName, in, outTokens)
}

func (m *Manager) logFailure(ctx context.Context, out Outcome) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s tag=%s error=%v",
		out.ProviderName, out.ModelName, out.Tag, out.Err)
}
