package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsarta/synapse/internal/user"
	repo "github.com/fsarta/synapse/internal/user/repository"
)

// Login checks the password and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.signIn(u)
}
