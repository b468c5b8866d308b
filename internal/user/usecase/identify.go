package usecase

import (
	"context"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/internal/user"
	repo "github.com/fsarta/synapse/internal/user/repository"
)

// Identify verifies token and resolves it to a live account.
// Resolved identities are cached briefly by user id.
func (uc *implUseCase) Identify(ctx context.Context, token string) (model.Scope, error) {
	if token == "" {
		return model.Scope{}, user.ErrNoToken
	}

	payload, err := uc.tokens.Verify(token)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Identify Verify: %v", err)
		return model.Scope{}, user.ErrInvalidToken
	}

	if sc, ok := uc.identities.Get(payload.UserID); ok {
		return sc, nil
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: payload.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Identify GetOneUser: %v", err)
		return model.Scope{}, user.ErrInvalidToken
	}
	if u.ID == "" {
		return model.Scope{}, user.ErrInvalidToken
	}

	sc := model.Scope{UserID: u.ID, Email: u.Email, Tier: u.Tier}
	uc.identities.Add(u.ID, sc)
	return sc, nil
}
