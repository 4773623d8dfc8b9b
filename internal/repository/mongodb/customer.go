package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rosterly/attendance-backend-go/internal/domain/customer"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
)

type customerRepositoryImpl struct {
	collection *mongo.Collection
}

func NewCustomerRepository(db *database.DB) customer.CustomerRepository {
	return &customerRepositoryImpl{
		collection: db.Collection(colCustomers),
	}
}

// Insert implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Insert(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	result, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return customer.Customer{}, conflictFromDuplicateKey(err)
		}
		return customer.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}

	var created customer.Customer
	if err := r.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return customer.Customer{}, fmt.Errorf("failed to read back customer: %w", err)
	}

	return created, nil
}

// GetByID implements customer.CustomerRepository.
func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customer.Customer{}, customer.ErrInvalidCustomerID
	}

	var c customer.Customer
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

// List implements customer.CustomerRepository.
func (r *customerRepositoryImpl) List(ctx context.Context) ([]customer.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	var customers []customer.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}

	return customers, nil
}

// ExistsFieldValue implements customer.CustomerRepository.
func (r *customerRepositoryImpl) ExistsFieldValue(ctx context.Context, field, value, excludeID string) (bool, error) {
	filter := bson.M{"CUSTOMER_DATA." + field + ".VALUE": value}
	if excludeID != "" {
		oid, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return false, customer.ErrInvalidCustomerID
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	err := r.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check customer %s: %w", field, err)
	}

	return true, nil
}

// ReplaceData implements customer.CustomerRepository.
func (r *customerRepositoryImpl) ReplaceData(ctx context.Context, id string, data map[string]customer.FieldValue) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customer.ErrInvalidCustomerID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"CUSTOMER_DATA": data}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return conflictFromDuplicateKey(err)
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if result.MatchedCount == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

// SetAttendanceData implements customer.CustomerRepository.
func (r *customerRepositoryImpl) SetAttendanceData(ctx context.Context, id, date string, data map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customer.ErrInvalidCustomerID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"ATTENDANCE_DATA." + date: data}})
	if err != nil {
		return fmt.Errorf("failed to set customer attendance data: %w", err)
	}
	if result.MatchedCount == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

// Delete implements customer.CustomerRepository.
func (r *customerRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return customer.ErrInvalidCustomerID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if result.DeletedCount == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

// conflictFromDuplicateKey maps a unique-index violation to the
// field-specific conflict sentinel. The index acts as a backstop for
// races the sequential service-level checks cannot see.
func conflictFromDuplicateKey(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "customer_email_unique"):
		return customer.ErrEmailExists
	case strings.Contains(msg, "customer_mobile_unique"):
		return customer.ErrMobileExists
	case strings.Contains(msg, "customer_name_unique"):
		return customer.ErrNameExists
	}
	return customer.ErrFieldExists
}
