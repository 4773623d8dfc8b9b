package customer

import (
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// CUSTOMER DTOs
// ========================================

// FormTemplate is the schema-templated blank form handed to clients.
type FormTemplate struct {
	CreatedOn string                `json:"CREATED_ON"`
	Data      map[string]FieldValue `json:"CUSTOMER_DATA"`
}

type SaveCustomerRequest struct {
	Data map[string]FieldValue `json:"CUSTOMER_DATA"`
}

func (r *SaveCustomerRequest) Validate() error {
	if r.Data == nil {
		return validator.ValidationErrors{{
			Field:   "CUSTOMER_DATA",
			Message: "CUSTOMER_DATA is required",
		}}
	}
	return validateRequiredFields(r.Data)
}

type UpdateCustomerRequest struct {
	CustomerID string                `json:"CUSTOMER_ID"`
	Data       map[string]FieldValue `json:"CUSTOMER_DATA"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if validator.IsEmpty(r.CustomerID) {
		return validator.ValidationErrors{{
			Field:   "CUSTOMER_ID",
			Message: "CUSTOMER_ID is required",
		}}
	}
	if r.Data == nil {
		return validator.ValidationErrors{{
			Field:   "CUSTOMER_DATA",
			Message: "CUSTOMER_DATA is required",
		}}
	}
	return validateRequiredFields(r.Data)
}

// validateRequiredFields checks NAME, EMAIL, MOBILE in that order and
// fails fast on the first empty one, so the client always sees the
// earliest missing field.
func validateRequiredFields(data map[string]FieldValue) error {
	for _, field := range []string{FieldName, FieldEmail, FieldMobile} {
		if validator.IsEmpty(data[field].Value) {
			return validator.ValidationErrors{{
				Field:   field,
				Message: "customer " + field + " is required",
			}}
		}
	}
	return nil
}
