package mongodb

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
)

// EnsureIndexes creates the indexes the repositories rely on. Called
// once at startup.
//
// The unique index on Daily_Attendance.DATE is load-bearing: together
// with the $setOnInsert upsert in the attendance repository it closes
// the check-then-insert race on lazily created entries. The customer
// indexes back-stop the sequential uniqueness checks done in the
// service layer.
func EnsureIndexes(ctx context.Context, db *database.DB) error {
	attendance := db.Collection(colAttendance)
	if _, err := attendance.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "DATE", Value: 1}},
		Options: options.Index().SetName("attendance_date_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	users := db.Collection(colUsers)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("user_username_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	customers := db.Collection(colCustomers)
	for _, field := range []string{"EMAIL", "MOBILE", "NAME"} {
		name := "customer_" + strings.ToLower(field) + "_unique"
		if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "CUSTOMER_DATA." + field + ".VALUE", Value: 1}},
			Options: options.Index().SetName(name).SetUnique(true).SetSparse(true),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
