package attendance

import (
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// GetEntryRequest fetches or lazily creates the entry for a date. An
// empty Date means "today" in IST.
type GetEntryRequest struct {
	Date string `json:"DATE"`
}

func (r *GetEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "DATE",
				Message: "DATE must be an ISO date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusesRequest struct {
	Date       string           `json:"DATE"`
	WorkerList []WorkerSnapshot `json:"WORKER_LIST"`
}

func (r *UpdateStatusesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "DATE",
			Message: "DATE is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "DATE",
			Message: "DATE must be an ISO date (YYYY-MM-DD)",
		})
	}

	if r.WorkerList == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "WORKER_LIST",
			Message: "WORKER_LIST is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LinkClientRequest writes per-date billing linkage onto a customer.
// AttendanceData is contractually opaque; it is stored as supplied.
type LinkClientRequest struct {
	Date           string                 `json:"DATE"`
	ClientID       string                 `json:"CLIENT_ID"`
	AttendanceData map[string]interface{} `json:"ATTENDANCE_DATA"`
}

func (r *LinkClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "DATE",
			Message: "DATE is required",
		})
	}

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "CLIENT_ID",
			Message: "CLIENT_ID is required",
		})
	}

	if r.AttendanceData == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "ATTENDANCE_DATA",
			Message: "ATTENDANCE_DATA is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
