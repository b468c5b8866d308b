package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/intent"
	"github.com/fsarta/synapse/internal/middleware"
	"github.com/fsarta/synapse/internal/usage"
	"github.com/fsarta/synapse/internal/user"
	"github.com/fsarta/synapse/pkg/log"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mwConfig    middleware.Config
	db          Pinger

	// Domains
	intentUC        intent.UseCase
	userUC          user.UseCase
	meter           usage.Meter
	calendarEnabled bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	// DB backs the readiness probe. Optional.
	DB Pinger

	IntentUseCase intent.UseCase
	UserUseCase   user.UseCase
	Meter         usage.Meter
	// CalendarEnabled registers POST /api/v1/intents/dispatch.
	CalendarEnabled bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mwConfig:        cfg.Middleware,
		db:              cfg.DB,
		intentUC:        cfg.IntentUseCase,
		userUC:          cfg.UserUseCase,
		meter:           cfg.Meter,
		calendarEnabled: cfg.CalendarEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.userUC == nil {
		return errors.New("user usecase is required")
	}
	if srv.intentUC == nil {
		return errors.New("intent usecase is required")
	}
	if srv.meter == nil {
		return errors.New("usage meter is required")
	}
	return nil
}
