package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "req-42")
	if got := TraceIDFromContext(ctx); got != "req-42" {
		t.Errorf("expected req-42, got %q", got)
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		l.Debugf(WithTraceID(context.Background(), "t"), "hello %s", "world")
	}
	NewNop().Info(context.Background(), "discarded")
}
