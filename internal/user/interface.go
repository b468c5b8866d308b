package user

import (
	"context"

	"github.com/fsarta/synapse/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Accounts
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)

	// Identify resolves a bearer token to the caller's identity.
	Identify(ctx context.Context, token string) (model.Scope, error)

	Stats(ctx context.Context, sc model.Scope) (Stats, error)
}
