package auth

import "context"

// AuthService defines account registration and credential checks.
type AuthService interface {
	// Register creates an account after checking the username and
	// email are free, in that order.
	Register(ctx context.Context, req RegisterRequest) error

	// Login verifies the password against the stored hash. Returns
	// ErrInvalidCredentials for an unknown user or a wrong password.
	Login(ctx context.Context, req LoginRequest) error
}
