package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rosterly/attendance-backend-go/internal/domain/user"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	collection *mongo.Collection
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{
		collection: db.Collection(colUsers),
	}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	u.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	var created user.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return user.User{}, fmt.Errorf("failed to read back user: %w", err)
	}

	return created, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// ExistsUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, bson.M{"username": username})
}

// ExistsEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *userRepositoryImpl) exists(ctx context.Context, filter bson.M) (bool, error) {
	err := r.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return true, nil
}
