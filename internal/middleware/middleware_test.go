package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/internal/user"
	"github.com/fsarta/synapse/pkg/log"
)

// mockIdentifier accepts exactly one token.
type mockIdentifier struct {
	token string
	scope model.Scope
}

func (m *mockIdentifier) Identify(ctx context.Context, token string) (model.Scope, error) {
	switch token {
	case "":
		return model.Scope{}, user.ErrNoToken
	case m.token:
		return m.scope, nil
	default:
		return model.Scope{}, user.ErrInvalidToken
	}
}

func newTestRouter(cfg Config, register func(r *gin.Engine, mw Middleware)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(log.NewNop(), &mockIdentifier{
		token: "good",
		scope: model.Scope{UserID: "u-1", Tier: model.TierFree},
	}, cfg)
	register(r, mw)
	return r
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	return body["error"]
}

func TestAuth(t *testing.T) {
	r := newTestRouter(Config{}, func(r *gin.Engine, mw Middleware) {
		r.GET("/me", mw.Auth(), func(c *gin.Context) {
			sc, ok := model.GetScopeFromContext(c.Request.Context())
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.String(http.StatusOK, sc.UserID)
		})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"valid", "Bearer good", http.StatusOK, ""},
		{"lowercase scheme", "bearer good", http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, MessageNoToken},
		{"scheme only", "Bearer", http.StatusUnauthorized, MessageNoToken},
		{"wrong token", "Bearer bad", http.StatusUnauthorized, MessageInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantError != "" {
				if got := errorBody(t, w); got != tt.wantError {
					t.Errorf("expected error %q, got %q", tt.wantError, got)
				}
			} else if w.Body.String() != "u-1" {
				t.Errorf("expected scope user u-1, got %q", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	r := newTestRouter(Config{RateLimitPerMinute: 10}, func(r *gin.Engine, mw Middleware) {
		r.POST("/parse", mw.Auth(), mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	})

	send := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/parse", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newTestRouter(Config{}, func(r *gin.Engine, mw Middleware) {
		r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	})
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestCors(t *testing.T) {
	r := newTestRouter(Config{AllowedOrigins: []string{"https://app.example.com"}}, func(r *gin.Engine, mw Middleware) {
		r.Use(mw.Cors())
		r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight: expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("unexpected allow-origin %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin must not be allowed, got %q", got)
	}
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	var traceID string
	r := newTestRouter(Config{}, func(r *gin.Engine, mw Middleware) {
		r.Use(mw.SecurityHeaders(), mw.RequestID())
		r.GET("/x", func(c *gin.Context) {
			traceID = log.TraceIDFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := w.Header().Get(HeaderRequestID); got != "req-42" {
		t.Errorf("request id not echoed, got %q", got)
	}
	if traceID != "req-42" {
		t.Errorf("trace id not on context, got %q", traceID)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a generated request id")
	}
}
