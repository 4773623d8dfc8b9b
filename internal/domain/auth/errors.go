package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("user already exists")
	ErrEmailInUse         = errors.New("email already in use")
)
