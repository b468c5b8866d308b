package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fsarta/synapse/internal/user"
	repo "github.com/fsarta/synapse/internal/user/repository"
)

const uniqueViolation = "23505"

// CreateUser inserts a new user row and returns it.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, subscription_tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.ID, opt.Email, opt.PasswordHash, opt.Tier))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return user.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single user by the provided filters.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	cond, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, cond)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// IncrementDailyActions adds one to the counter in a single statement so
// concurrent requests for the same user never lose an update.
func (r *implRepository) IncrementDailyActions(ctx context.Context, userID string) error {
	const query = `UPDATE users SET daily_actions_used = daily_actions_used + 1, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementDailyActions"), err)
		return repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("IncrementDailyActions"), err)
		return repo.ErrFailedToUpdate
	}
	if n == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// GetStats reads the counter and tier for one user.
func (r *implRepository) GetStats(ctx context.Context, userID string) (user.Stats, error) {
	const query = `SELECT daily_actions_used, subscription_tier FROM users WHERE id = $1`

	var s user.Stats
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.DailyActionsUsed, &s.SubscriptionTier)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Stats{}, user.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStats"), err)
		return user.Stats{}, repo.ErrFailedToGet
	}
	return s, nil
}

func scanUser(row *sql.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Tier, &u.DailyActionsUsed, &u.CreatedAt)
	return u, err
}
