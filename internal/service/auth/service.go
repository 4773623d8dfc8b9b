package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/domain/user"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	taken, err := a.userRepo.ExistsUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return auth.ErrUsernameTaken
	}

	inUse, err := a.userRepo.ExistsEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if inUse {
		return auth.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User registered", "username", created.Username)
	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.ErrInvalidCredentials
	}

	return nil
}
