package customer

import "context"

// CustomerService defines business logic for customer records.
type CustomerService interface {
	// NewBlankForm projects the externally loaded field schema into an
	// empty form. No persistence.
	NewBlankForm(ctx context.Context) (FormTemplate, error)

	// Save validates required fields, runs the EMAIL, MOBILE, NAME
	// uniqueness checks in that order, then persists and returns the
	// stored record.
	Save(ctx context.Context, req SaveCustomerRequest) (Customer, error)

	// Update runs the same checks excluding the customer itself, then
	// replaces CUSTOMER_DATA wholesale.
	Update(ctx context.Context, req UpdateCustomerRequest) error

	// Get retrieves a single customer by identifier.
	Get(ctx context.Context, id string) (Customer, error)

	// ListAll returns all customers keyed by their NAME value.
	ListAll(ctx context.Context) (map[string]Customer, error)

	// Delete removes a customer.
	Delete(ctx context.Context, id string) error
}
