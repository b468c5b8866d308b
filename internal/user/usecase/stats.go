package usecase

import (
	"context"
	"errors"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/internal/user"
)

// Stats returns the caller's counter. A vanished row reports zero usage on the identity's tier.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (user.Stats, error) {
	s, err := uc.repo.GetStats(ctx, sc.UserID)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.Stats{DailyActionsUsed: 0, SubscriptionTier: sc.Tier}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats GetStats: %v", err)
		return user.Stats{}, err
	}
	return s, nil
}
