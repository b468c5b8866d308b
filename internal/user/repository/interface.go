package repository

import (
	"context"

	"github.com/fsarta/synapse/internal/user"
)

// Repository is the composed interface for the user data store.
type Repository interface {
	UserRepository
	UsageRepository
}

// UserRepository defines data access for accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	// GetOneUser returns a zero User (ID == "") when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
}

// UsageRepository defines the per-user counter operations.
type UsageRepository interface {
	// IncrementDailyActions is a single atomic UPDATE; no row yields user.ErrUserNotFound.
	IncrementDailyActions(ctx context.Context, userID string) error
	// GetStats returns user.ErrUserNotFound when the row is gone.
	GetStats(ctx context.Context, userID string) (user.Stats, error)
}
