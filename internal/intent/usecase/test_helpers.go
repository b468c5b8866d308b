package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsarta/synapse/pkg/gcalendar"
	"github.com/fsarta/synapse/pkg/gemini"
	"github.com/fsarta/synapse/pkg/llmprovider"
	"github.com/fsarta/synapse/pkg/openaicompat"
)

// Mock logger for testing; keeps error lines so tests can check diagnostics.
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubInvoker returns a fixed outcome and records prompts.
type stubInvoker struct {
	outcome llmprovider.Outcome
	prompts []string
}

func (s *stubInvoker) Invoke(ctx context.Context, prompt string) llmprovider.Outcome {
	s.prompts = append(s.prompts, prompt)
	return s.outcome
}

// Mock Gemini client for testing
type mockGeminiClient struct {
	response *gemini.Response
	err      error
	calls    int
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.calls++
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string {
	return "gemini-test"
}

// Mock OpenAI-compatible client for testing
type mockCompatClient struct {
	response *openaicompat.Response
	err      error
	calls    int
}

func (m *mockCompatClient) Complete(ctx context.Context, req *openaicompat.Request) (*openaicompat.Response, error) {
	m.calls++
	return m.response, m.err
}

func (m *mockCompatClient) Provider() string { return "deepseek" }
func (m *mockCompatClient) Model() string    { return "deepseek-test" }

// newManager wires a provider into a Manager the way cmd/api does.
func newManager(p llmprovider.Provider, logger *mockLogger) *llmprovider.Manager {
	return llmprovider.NewManager(p, &llmprovider.Config{Temperature: 0.2}, logger)
}

type mockCalendar struct {
	req   *gcalendar.CreateEventRequest
	event *gcalendar.Event
	err   error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.req = &req
	return m.event, m.err
}
