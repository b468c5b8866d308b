package postgre

import (
	"fmt"
	"strings"

	repo "github.com/fsarta/synapse/internal/user/repository"
)

const userColumns = `id, email, password_hash, subscription_tier, daily_actions_used, created_at`

// buildGetOneQuery returns the WHERE clause and args for GetOneUser.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "FALSE", nil
	}
	return strings.Join(conds, " AND "), args
}
