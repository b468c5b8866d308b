package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	response  *Response
	delay     time.Duration
	ignoreCtx bool
	callCount atomic.Int32
	lastReq   *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount.Add(1)
	m.lastReq = req
	if m.delay > 0 {
		if m.ignoreCtx {
			time.Sleep(m.delay)
		} else {
			select {
			case <-time.After(m.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMessages = append(m.infoMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestInvoke_Success(t *testing.T) {
	primary := &mockProvider{
		name:  "primary",
		model: "primary-model",
		response: &Response{
			Text:         `{"intent":"none"}`,
			ProviderName: "primary",
			ModelName:    "primary-model",
			Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	}
	logger := &mockLogger{}
	manager := NewManager(primary, &Config{Timeout: time.Second, Temperature: 0.2, MaxTokens: 256}, logger)

	out := manager.Invoke(context.Background(), "prompt")

	if out.Tag != TagNone || out.Err != nil {
		t.Fatalf("expected success, got tag=%s err=%v", out.Tag, out.Err)
	}
	if out.RawOutput != `{"intent":"none"}` {
		t.Errorf("unexpected raw output %q", out.RawOutput)
	}
	if primary.callCount.Load() != 1 {
		t.Errorf("expected 1 call, got %d", primary.callCount.Load())
	}
	if primary.lastReq.Prompt != "prompt" || primary.lastReq.Temperature != 0.2 || primary.lastReq.MaxTokens != 256 {
		t.Errorf("request not forwarded correctly: %+v", primary.lastReq)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("expected 1 info log message, got %d", len(logger.infoMessages))
	}
}

func TestInvoke_SafetyBlock(t *testing.T) {
	primary := &mockProvider{
		name:  "gemini",
		model: "m",
		err:   &ProviderError{Provider: "gemini", Err: fmt.Errorf("%w: SAFETY", ErrSafetyBlocked)},
	}
	manager := NewManager(primary, &Config{Timeout: time.Second}, &mockLogger{})

	out := manager.Invoke(context.Background(), "prompt")

	if out.Tag != TagSafetyBlocked {
		t.Errorf("expected %s, got %s", TagSafetyBlocked, out.Tag)
	}
	if !out.Failed() {
		t.Error("expected Failed() to be true")
	}
}

func TestInvoke_NoRetryOnFailure(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", err: errors.New("connection refused")}
	logger := &mockLogger{}
	manager := NewManager(primary, &Config{Timeout: time.Second}, logger)

	out := manager.Invoke(context.Background(), "prompt")

	if out.Tag != TagTransportError {
		t.Errorf("expected %s, got %s", TagTransportError, out.Tag)
	}
	if primary.callCount.Load() != 1 {
		t.Errorf("expected exactly one call, got %d", primary.callCount.Load())
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("expected 1 warn log message, got %d", len(logger.warnMessages))
	}
}

func TestInvoke_Timeout(t *testing.T) {
	for _, ignoreCtx := range []bool{false, true} {
		t.Run(fmt.Sprintf("ignoreCtx=%v", ignoreCtx), func(t *testing.T) {
			primary := &mockProvider{
				name:      "slow",
				model:     "m",
				delay:     500 * time.Millisecond,
				ignoreCtx: ignoreCtx,
				response:  &Response{Text: "{}"},
			}
			manager := NewManager(primary, &Config{Timeout: 30 * time.Millisecond}, &mockLogger{})

			start := time.Now()
			out := manager.Invoke(context.Background(), "prompt")

			if elapsed := time.Since(start); elapsed > 300*time.Millisecond {
				t.Errorf("invoke was not bounded by timeout, took %s", elapsed)
			}
			if out.Tag != TagTransportError {
				t.Errorf("expected %s, got %s", TagTransportError, out.Tag)
			}
			if !errors.Is(out.Err, ErrProviderTimeout) {
				t.Errorf("expected ErrProviderTimeout, got %v", out.Err)
			}
		})
	}
}

func TestInvoke_CallerCancelled(t *testing.T) {
	primary := &mockProvider{name: "slow", model: "m", delay: time.Second, ignoreCtx: true, response: &Response{}}
	manager := NewManager(primary, &Config{Timeout: 5 * time.Second}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	out := manager.Invoke(ctx, "prompt")
	if out.Tag != TagTransportError {
		t.Errorf("expected %s, got %s", TagTransportError, out.Tag)
	}
	if !errors.Is(out.Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", out.Err)
	}
}

func TestInvoke_NoProvider(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})
	out := manager.Invoke(context.Background(), "prompt")
	if !errors.Is(out.Err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", out.Err)
	}
	if manager.config.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %s", manager.config.Timeout)
	}
}
