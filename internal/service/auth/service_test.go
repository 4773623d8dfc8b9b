package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/domain/user"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	byUsername map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = primitive.NewObjectID()
	f.byUsername[u.Username] = u
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeUserRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range f.byUsername {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	err := svc.Register(ctx, auth.RegisterRequest{
		Username: "supervisor",
		Email:    "supervisor@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// The stored credential is a bcrypt hash, never the plaintext.
	stored := repo.byUsername["supervisor"]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

	err = svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "correct horse"})
	assert.NoError(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	require.NoError(t, svc.Register(ctx, auth.RegisterRequest{
		Username: "supervisor", Email: "supervisor@example.com", Password: "pw",
	}))

	err := svc.Register(ctx, auth.RegisterRequest{
		Username: "supervisor", Email: "other@example.com", Password: "pw",
	})
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	require.NoError(t, svc.Register(ctx, auth.RegisterRequest{
		Username: "supervisor", Email: "supervisor@example.com", Password: "pw",
	}))

	err := svc.Register(ctx, auth.RegisterRequest{
		Username: "manager", Email: "supervisor@example.com", Password: "pw",
	})
	assert.ErrorIs(t, err, auth.ErrEmailInUse)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	err := svc.Register(context.Background(), auth.RegisterRequest{
		Username: "supervisor", Email: "not-an-address", Password: "pw",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "email", verrs[0].Field)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	require.NoError(t, svc.Register(ctx, auth.RegisterRequest{
		Username: "supervisor", Email: "supervisor@example.com", Password: "correct horse",
	}))

	err := svc.Login(ctx, auth.LoginRequest{Username: "supervisor", Password: "battery staple"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	// Unknown usernames map to the same error as a bad password.
	err := svc.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
