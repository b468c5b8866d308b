package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the 30 day sessions issued at login.
const DefaultTTL = 30 * 24 * time.Hour

// Payload is the identity carried inside a token.
type Payload struct {
	UserID string
	Email  string
}

type claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}
