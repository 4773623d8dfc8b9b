package response

import (
	"errors"
	"net/http"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/domain/customer"
	"github.com/rosterly/attendance-backend-go/internal/domain/user"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrUsernameTaken):
		BadRequest(w, "Username already taken", nil)
	case errors.Is(err, auth.ErrEmailInUse):
		BadRequest(w, "Email already in use", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "No attendance entry exists for that date")

	// Customer domain errors. Uniqueness conflicts carry 400 so the
	// form can surface them inline next to the offending field.
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, customer.ErrEmailExists):
		BadRequest(w, "A customer with this email already exists", nil)
	case errors.Is(err, customer.ErrMobileExists):
		BadRequest(w, "A customer with this mobile number already exists", nil)
	case errors.Is(err, customer.ErrNameExists):
		BadRequest(w, "A customer with this name already exists", nil)
	case errors.Is(err, customer.ErrFieldExists):
		BadRequest(w, "A customer with this value already exists", nil)
	case errors.Is(err, customer.ErrInvalidCustomerID):
		BadRequest(w, "Invalid customer id", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
