package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/middleware"
)

// RegisterRoutes maps account and stats endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	rg.GET("/user/stats", mw.Auth(), h.Stats)
}
