package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/middleware"
)

// RegisterRoutes maps the extraction endpoint. Auth runs before the rate limit
// so the limit is per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.Auth(), mw.RateLimit(), h.Parse)
}

// RegisterDispatchRoutes maps calendar dispatch. Only called when a calendar is configured.
func RegisterDispatchRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	intents := rg.Group("/intents")
	{
		intents.POST("/dispatch", mw.Auth(), h.Dispatch)
	}
}
