package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fsarta/synapse/pkg/gemini"
	"github.com/fsarta/synapse/pkg/openaicompat"
)

type fakeGemini struct {
	req  *gemini.Request
	resp *gemini.Response
	err  error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.req = req
	return f.resp, f.err
}
func (f *fakeGemini) Model() string { return "gemini-1.5-flash" }

type fakeCompat struct {
	resp *openaicompat.Response
	err  error
}

func (f *fakeCompat) Complete(ctx context.Context, req *openaicompat.Request) (*openaicompat.Response, error) {
	return f.resp, f.err
}
func (f *fakeCompat) Provider() string { return "deepseek" }
func (f *fakeCompat) Model() string    { return "deepseek-chat" }

func TestGeminiAdapter_RequestsJSON(t *testing.T) {
	fake := &fakeGemini{resp: &gemini.Response{Text: "{}", Usage: gemini.Usage{TotalTokens: 3}}}
	a := NewGeminiAdapter(fake)

	resp, err := a.GenerateContent(context.Background(), &Request{Prompt: "p", Temperature: 0.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.req.ResponseMimeType != gemini.MimeTypeJSON {
		t.Errorf("expected JSON response mime type, got %q", fake.req.ResponseMimeType)
	}
	if resp.Text != "{}" || resp.ProviderName != "gemini" || resp.Usage.TotalTokens != 3 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAdapters_MapSafetyErrors(t *testing.T) {
	g := NewGeminiAdapter(&fakeGemini{err: fmt.Errorf("%w: SAFETY", gemini.ErrSafetyBlocked)})
	if _, err := g.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrSafetyBlocked) {
		t.Errorf("gemini: expected ErrSafetyBlocked, got %v", err)
	}

	c := NewOpenAICompatAdapter(&fakeCompat{err: fmt.Errorf("%w: flagged", openaicompat.ErrContentFiltered)})
	if _, err := c.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrSafetyBlocked) {
		t.Errorf("openaicompat: expected ErrSafetyBlocked, got %v", err)
	}
}

func TestAdapters_OtherErrorsAreProviderErrors(t *testing.T) {
	c := NewOpenAICompatAdapter(&fakeCompat{err: errors.New("502 bad gateway")})
	_, err := c.GenerateContent(context.Background(), &Request{})

	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pErr.Provider != "deepseek" {
		t.Errorf("expected provider deepseek, got %s", pErr.Provider)
	}
	if errors.Is(err, ErrSafetyBlocked) {
		t.Error("generic failure must not be a safety block")
	}
	if classify(err) != TagTransportError {
		t.Errorf("expected transport-error tag, got %s", classify(err))
	}
}

func TestOpenAICompatAdapter_FallsBackToClientModel(t *testing.T) {
	c := NewOpenAICompatAdapter(&fakeCompat{resp: &openaicompat.Response{Text: "```json\n{}\n```"}})
	resp, err := c.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ModelName != "deepseek-chat" {
		t.Errorf("expected client model, got %s", resp.ModelName)
	}
	if resp.Text != "```json\n{}\n```" {
		t.Errorf("adapter must not rewrite provider text, got %q", resp.Text)
	}
}
