package user

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password required")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoToken            = errors.New("no token")
	ErrInvalidToken       = errors.New("invalid token")
)
