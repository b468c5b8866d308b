package http

import (
	"errors"
	"net/http"

	"github.com/fsarta/synapse/internal/user"
)

const (
	MessageCredentialsRequired = "Email and password required"
	MessageUserExists          = "User already exists"
	MessageInvalidCredentials  = "Invalid credentials"
	MessageRegistrationFailed  = "Registration failed"
	MessageLoginFailed         = "Login failed"
	MessageStatsFailed         = "Failed to fetch stats"
)

func (h *handler) mapError(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, user.ErrMissingCredentials):
		return http.StatusBadRequest, MessageCredentialsRequired
	case errors.Is(err, user.ErrUserExists):
		return http.StatusBadRequest, MessageUserExists
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, MessageInvalidCredentials
	default:
		return http.StatusInternalServerError, fallback
	}
}
