package scope

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Issue signs a token for p that expires after the manager's TTL.
func (m *implManager) Issue(p Payload) (string, error) {
	now := m.now()
	c := claims{
		UserID: p.UserID,
		Email:  p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the embedded payload.
func (m *implManager) Verify(token string) (Payload, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.UserID == "" {
		return Payload{}, fmt.Errorf("%w: missing userId", ErrInvalidToken)
	}
	return Payload{UserID: c.UserID, Email: c.Email}, nil
}
