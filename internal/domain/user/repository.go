package user

import "context"

// UserRepository defines data access for API accounts.
type UserRepository interface {
	// Create persists a new user and returns the stored record.
	Create(ctx context.Context, u User) (User, error)

	// GetByUsername retrieves a user by username. Returns
	// ErrUserNotFound when no user matches.
	GetByUsername(ctx context.Context, username string) (User, error)

	// ExistsUsername reports whether the username is taken.
	ExistsUsername(ctx context.Context, username string) (bool, error)

	// ExistsEmail reports whether the email is in use.
	ExistsEmail(ctx context.Context, email string) (bool, error)
}
