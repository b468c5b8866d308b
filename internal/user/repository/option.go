package repository

// CreateUserOptions holds parameters for inserting a new user.
type CreateUserOptions struct {
	ID           string
	Email        string
	PasswordHash string
	Tier         string
}

// GetOneUserOptions filters a single user. Non-empty fields are ANDed.
type GetOneUserOptions struct {
	ID    string
	Email string
}
