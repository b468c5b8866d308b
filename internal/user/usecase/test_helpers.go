package usecase

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsarta/synapse/internal/user"
	repo "github.com/fsarta/synapse/internal/user/repository"
	"github.com/fsarta/synapse/pkg/log"
	"github.com/fsarta/synapse/pkg/scope"
)

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu      sync.Mutex
	byID    map[string]user.User
	gets    int
	failGet error
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[string]user.User{}}
}

func (m *memRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == opt.Email {
			return user.User{}, repo.ErrDuplicateEmail
		}
	}
	u := user.User{ID: opt.ID, Email: opt.Email, PasswordHash: opt.PasswordHash, Tier: opt.Tier}
	m.byID[u.ID] = u
	return u, nil
}

func (m *memRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.failGet != nil {
		return user.User{}, m.failGet
	}
	for _, u := range m.byID {
		if (opt.ID == "" || u.ID == opt.ID) && (opt.Email == "" || u.Email == opt.Email) {
			return u, nil
		}
	}
	return user.User{}, nil
}

func (m *memRepo) IncrementDailyActions(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.DailyActionsUsed++
	m.byID[userID] = u
	return nil
}

func (m *memRepo) GetStats(ctx context.Context, userID string) (user.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return user.Stats{}, user.ErrUserNotFound
	}
	return user.Stats{DailyActionsUsed: u.DailyActionsUsed, SubscriptionTier: u.Tier}, nil
}

// newTestUseCase uses the cheapest bcrypt cost to keep tests fast.
func newTestUseCase(r *memRepo) (*implUseCase, scope.Manager) {
	tokens, err := scope.New("test-secret", 0)
	if err != nil {
		panic(err)
	}
	uc := New(r, tokens, log.NewNop())
	uc.cost = bcrypt.MinCost
	return uc, tokens
}
