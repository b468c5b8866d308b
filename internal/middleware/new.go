package middleware

import (
	"context"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/pkg/log"
)

// Identifier resolves a bearer token to an identity.
type Identifier interface {
	Identify(ctx context.Context, token string) (model.Scope, error)
}

// Config holds the HTTP hardening knobs.
type Config struct {
	AllowedOrigins []string
	// RateLimitPerMinute bounds requests per user on limited routes. <= 0 disables it.
	RateLimitPerMinute int
}

type Middleware struct {
	l           log.Logger
	identifier  Identifier
	config      Config
	rateLimiter *rateLimiter
}

func New(l log.Logger, identifier Identifier, cfg Config) Middleware {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	mw := Middleware{
		l:          l,
		identifier: identifier,
		config:     cfg,
	}
	if cfg.RateLimitPerMinute > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMinute)
	}
	return mw
}
