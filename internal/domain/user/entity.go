package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an API account. Passwords are checked synchronously per
// request; no sessions or tokens are issued.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
