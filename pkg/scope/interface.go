package scope

import "time"

// Manager issues and verifies session tokens.
type Manager interface {
	Issue(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

// New creates an HS256 Manager. ttl <= 0 uses DefaultTTL.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}
