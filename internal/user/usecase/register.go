package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/internal/user"
	repo "github.com/fsarta/synapse/internal/user/repository"
	"github.com/fsarta/synapse/pkg/scope"
)

// Register creates a free-tier account and signs the caller in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrMissingCredentials
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.cost)
	if err != nil {
		return user.AuthOutput{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return user.AuthOutput{}, fmt.Errorf("generate user id: %w", err)
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           id.String(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Tier:         model.TierFree,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return user.AuthOutput{}, user.ErrUserExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.signIn(created)
}

func (uc *implUseCase) signIn(u user.User) (user.AuthOutput, error) {
	token, err := uc.tokens.Issue(scope.Payload{UserID: u.ID, Email: u.Email})
	if err != nil {
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{Token: token, User: u}, nil
}
