package customer

import "errors"

// Customer domain errors
var (
	ErrCustomerNotFound = errors.New("customer not found")

	// Uniqueness conflicts, one per checked field
	ErrEmailExists  = errors.New("customer email already exists")
	ErrMobileExists = errors.New("customer mobile already exists")
	ErrNameExists   = errors.New("customer name already exists")

	// ErrFieldExists covers uniqueness conflicts on a field without a
	// dedicated sentinel.
	ErrFieldExists = errors.New("customer field value already exists")

	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// ConflictError returns the sentinel for a unique-field collision.
func ConflictError(field string) error {
	switch field {
	case FieldEmail:
		return ErrEmailExists
	case FieldMobile:
		return ErrMobileExists
	case FieldName:
		return ErrNameExists
	}
	return ErrFieldExists
}
