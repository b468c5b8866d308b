package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/internal/user"
	"github.com/fsarta/synapse/pkg/response"
)

const (
	MessageNoToken      = "No token"
	MessageInvalidToken = "Invalid token"

	// ScopeKey is the gin key holding the resolved model.Scope.
	ScopeKey = "scope"
)

// Auth resolves the bearer token and stores the identity on the request context.
// Anything short of a valid token for a live account stops the chain with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := bearerToken(c.GetHeader("Authorization"))
		sc, err := m.identifier.Identify(ctx, token)
		if err != nil {
			msg := MessageInvalidToken
			if errors.Is(err, user.ErrNoToken) {
				msg = MessageNoToken
			}
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Abort(c, http.StatusUnauthorized, msg)
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Set(ScopeKey, sc)
		c.Next()
	}
}

// bearerToken returns the credential part of an Authorization header, or "".
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
