package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	intentHTTP "github.com/fsarta/synapse/internal/intent/delivery/http"
	"github.com/fsarta/synapse/internal/middleware"
	"github.com/fsarta/synapse/internal/model"
	userHTTP "github.com/fsarta/synapse/internal/user/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.userUC, srv.mwConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID(), mw.SecurityHeaders(), mw.Cors())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.mwConfig.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.mwConfig.AllowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// User domain: register, login, stats
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, srv.userUC), mw)

	// Intent domain: parse (+ dispatch when a calendar is configured)
	h := intentHTTP.New(srv.l, srv.intentUC, srv.meter)
	intentHTTP.RegisterRoutes(api, h, mw)

	if srv.calendarEnabled {
		intentHTTP.RegisterDispatchRoutes(api, h, mw)
		srv.l.Infof(ctx, "Calendar dispatch route registered at POST /api/v1/intents/dispatch")
	} else {
		srv.l.Infof(ctx, "Calendar not configured, skipping dispatch route")
	}

	return nil
}
