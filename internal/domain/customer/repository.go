package customer

import "context"

// CustomerRepository defines data access for customer records.
type CustomerRepository interface {
	// Insert persists a new customer and returns the stored record
	// with its assigned identifier.
	Insert(ctx context.Context, c Customer) (Customer, error)

	// GetByID retrieves a customer. Returns ErrCustomerNotFound when
	// the id matches nothing, ErrInvalidCustomerID when it is not a
	// valid identifier.
	GetByID(ctx context.Context, id string) (Customer, error)

	// List returns all customers in store-native order.
	List(ctx context.Context) ([]Customer, error)

	// ExistsFieldValue reports whether any customer other than
	// excludeID has the given form-field VALUE. An empty excludeID
	// scans everything.
	ExistsFieldValue(ctx context.Context, field, value, excludeID string) (bool, error)

	// ReplaceData overwrites CUSTOMER_DATA wholesale. Returns
	// ErrCustomerNotFound when the id matches nothing.
	ReplaceData(ctx context.Context, id string, data map[string]FieldValue) error

	// SetAttendanceData writes ATTENDANCE_DATA.<date> on the customer.
	SetAttendanceData(ctx context.Context, id, date string, data map[string]interface{}) error

	// Delete removes a customer. Returns ErrCustomerNotFound when the
	// id matches nothing.
	Delete(ctx context.Context, id string) error
}
