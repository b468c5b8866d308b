package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/intent"
	"github.com/fsarta/synapse/internal/middleware"
	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/internal/user"
	"github.com/fsarta/synapse/pkg/log"
)

type stubIntentUC struct{ calls int }

func (s *stubIntentUC) Extract(ctx context.Context, in intent.ExtractInput) (intent.Intent, error) {
	s.calls++
	return intent.Intent{Intent: intent.TypeNone, Confidence: 0.1}, nil
}

func (s *stubIntentUC) Dispatch(ctx context.Context, in intent.DispatchInput) (intent.DispatchOutput, error) {
	return intent.DispatchOutput{EventID: "ev"}, nil
}

type stubUserUC struct{}

func (stubUserUC) Register(ctx context.Context, in user.RegisterInput) (user.AuthOutput, error) {
	return user.AuthOutput{}, user.ErrMissingCredentials
}

func (stubUserUC) Login(ctx context.Context, in user.LoginInput) (user.AuthOutput, error) {
	return user.AuthOutput{}, user.ErrInvalidCredentials
}

func (stubUserUC) Identify(ctx context.Context, token string) (model.Scope, error) {
	if token == "good" {
		return model.Scope{UserID: "u-1", Tier: model.TierFree}, nil
	}
	if token == "" {
		return model.Scope{}, user.ErrNoToken
	}
	return model.Scope{}, user.ErrInvalidToken
}

func (stubUserUC) Stats(ctx context.Context, sc model.Scope) (user.Stats, error) {
	return user.Stats{SubscriptionTier: sc.Tier}, nil
}

type stubMeter struct{ users []string }

func (m *stubMeter) Increment(ctx context.Context, userID string) error {
	m.users = append(m.users, userID)
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func newTestServer(t *testing.T, calendar bool, db Pinger) (*HTTPServer, *stubIntentUC, *stubMeter) {
	t.Helper()
	iuc := &stubIntentUC{}
	meter := &stubMeter{}
	srv, err := New(log.NewNop(), Config{
		Logger:          log.NewNop(),
		Port:            3000,
		Mode:            gin.TestMode,
		Environment:     string(model.EnvironmentDevelopment),
		Middleware:      middleware.Config{AllowedOrigins: []string{"*"}},
		DB:              db,
		IntentUseCase:   iuc,
		UserUseCase:     stubUserUC{},
		Meter:           meter,
		CalendarEnabled: calendar,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, iuc, meter
}

func do(srv *HTTPServer, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t, false, nil)

	w := do(srv, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" || body["timestamp"] == "" {
		t.Errorf("unexpected health body: %v", body)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing on system routes")
	}
}

func TestReady(t *testing.T) {
	srv, _, _ := newTestServer(t, false, stubPinger{})
	if w := do(srv, http.MethodGet, "/ready", "", ""); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	srv, _, _ = newTestServer(t, false, stubPinger{err: errors.New("down")})
	if w := do(srv, http.MethodGet, "/ready", "", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestParseRoute(t *testing.T) {
	srv, iuc, meter := newTestServer(t, false, nil)

	w := do(srv, http.MethodPost, "/api/v1/parse", "", `{"text":"hi"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if iuc.calls != 0 {
		t.Fatal("pipeline reached without authentication")
	}

	w = do(srv, http.MethodPost, "/api/v1/parse", "good", `{"text":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(meter.users) != 1 || meter.users[0] != "u-1" {
		t.Errorf("expected one increment for u-1, got %v", meter.users)
	}
}

func TestDispatchRouteOnlyWithCalendar(t *testing.T) {
	body := `{"intent":"create_event","confidence":0.9,"data":{"title":"x","datetime":"2025-01-02T15:00:00Z"}}`

	srv, _, _ := newTestServer(t, false, nil)
	if w := do(srv, http.MethodPost, "/api/v1/intents/dispatch", "good", body); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without calendar, got %d", w.Code)
	}

	srv, _, _ = newTestServer(t, true, nil)
	if w := do(srv, http.MethodPost, "/api/v1/intents/dispatch", "good", body); w.Code != http.StatusOK {
		t.Errorf("expected 200 with calendar, got %d", w.Code)
	}
}

func TestAuthRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t, false, nil)

	if w := do(srv, http.MethodPost, "/api/v1/auth/register", "", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("register: expected 400, got %d", w.Code)
	}
	if w := do(srv, http.MethodPost, "/api/v1/auth/login", "", `{}`); w.Code != http.StatusUnauthorized {
		t.Errorf("login: expected 401, got %d", w.Code)
	}
	if w := do(srv, http.MethodGet, "/api/v1/user/stats", "bad", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("stats: expected 401, got %d", w.Code)
	}
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 3000})
	if err == nil {
		t.Fatal("expected error when use cases are missing")
	}
}
