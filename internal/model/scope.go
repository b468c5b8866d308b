package model

import "context"

// Subscription tiers.
const (
	TierFree = "free"
	TierPro  = "pro"
)

// Scope is the identity resolved from a bearer credential for one request.
// It is read-only once set on the context.
type Scope struct {
	UserID string
	Email  string
	Tier   string
}

type scopeKey struct{}

// SetScopeToContext stores sc on ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the Scope stored on ctx, if any.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok && sc.UserID != ""
}
