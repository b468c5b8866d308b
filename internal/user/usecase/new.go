package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/internal/user/repository"
	"github.com/fsarta/synapse/pkg/log"
	"github.com/fsarta/synapse/pkg/scope"
)

const (
	passwordCost     = 12
	identityCacheLen = 1024
	identityCacheTTL = time.Minute
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.Repository
	tokens     scope.Manager
	l          log.Logger
	identities *expirable.LRU[string, model.Scope]
	cost       int
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, tokens scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		tokens:     tokens,
		l:          l,
		identities: expirable.NewLRU[string, model.Scope](identityCacheLen, nil, identityCacheTTL),
		cost:       passwordCost,
	}
}
