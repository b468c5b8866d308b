package user

import "time"

// --- User Domain Model ---

// User is a registered account. DailyActionsUsed is maintained by the usage meter.
type User struct {
	ID               string
	Email            string
	PasswordHash     string
	Tier             string
	DailyActionsUsed int
	CreatedAt        time.Time
}

// Stats is the usage summary shown to the owner of an account.
type Stats struct {
	DailyActionsUsed int
	SubscriptionTier string
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type AuthOutput struct {
	Token string
	User  User
}
