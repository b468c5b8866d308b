package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsarta/synapse/config"
	_ "github.com/fsarta/synapse/docs" // Swagger docs
	"github.com/fsarta/synapse/internal/httpserver"
	intentUC "github.com/fsarta/synapse/internal/intent/usecase"
	"github.com/fsarta/synapse/internal/middleware"
	"github.com/fsarta/synapse/internal/migration"
	"github.com/fsarta/synapse/internal/usage"
	userRepo "github.com/fsarta/synapse/internal/user/repository/postgre"
	userUC "github.com/fsarta/synapse/internal/user/usecase"
	"github.com/fsarta/synapse/pkg/gcalendar"
	"github.com/fsarta/synapse/pkg/llmprovider"
	"github.com/fsarta/synapse/pkg/log"
	"github.com/fsarta/synapse/pkg/postgres"
	"github.com/fsarta/synapse/pkg/rabbitmq"
	"github.com/fsarta/synapse/pkg/scope"
)

// @title       Synapse API
// @description Turns free-form text into calendar and task intents using an LLM provider.
// @version     1
// @host        localhost:3000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Synapse...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres + migrations
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := migration.Up(db); err != nil {
		logger.Fatalf(ctx, "Failed to run migrations: %v", err)
	}

	// 4. User domain
	tokens, err := scope.New(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour)
	if err != nil {
		logger.Fatalf(ctx, "Failed to init token manager: %v", err)
	}
	users := userRepo.New(db, logger)
	userUseCase := userUC.New(users, tokens, logger)

	// 5. Usage meter (RabbitMQ events are optional)
	var publisher usage.Publisher
	if cfg.RabbitMQ.URL != "" {
		pub, pubErr := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if pubErr != nil {
			logger.Warnf(ctx, "RabbitMQ not available (optional): %v", pubErr)
		} else {
			defer pub.Close()
			publisher = pub
			logger.Infof(ctx, "Publishing %s events to RabbitMQ", usage.RoutingKeyRecorded)
		}
	}
	meter := usage.New(logger, users, publisher)

	// 6. Primary LLM provider, fixed for the process lifetime
	provider, err := llmprovider.NewPrimaryProvider(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to init LLM provider: %v", err)
	}
	manager := llmprovider.NewManager(provider, &llmprovider.Config{
		Timeout:     cfg.LLM.Timeout,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, logger)
	logger.Infof(ctx, "LLM provider: %s (%s)", provider.Name(), provider.Model())

	// 7. Google Calendar (optional)
	calendar := intentUC.CalendarConfig{CalendarID: cfg.GoogleCalendar.CalendarID}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar.Client = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}
	if loc, locErr := time.LoadLocation(cfg.GoogleCalendar.Timezone); locErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, locErr)
	} else {
		calendar.Location = loc
	}

	intentUseCase := intentUC.New(logger, manager, calendar)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins:     cfg.CORS.AllowedOrigins,
			RateLimitPerMinute: cfg.RateLimit.PerMinute,
		},
		DB:              db,
		IntentUseCase:   intentUseCase,
		UserUseCase:     userUseCase,
		Meter:           meter,
		CalendarEnabled: calendar.Client != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
