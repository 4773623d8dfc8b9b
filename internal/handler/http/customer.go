package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/customer"
	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
)

type CustomerHandler interface {
	NewForm(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Bill(w http.ResponseWriter, r *http.Request)
}

type CustomerHandlerImpl struct {
	customerService   customer.CustomerService
	attendanceService attendance.AttendanceService
}

func NewCustomerHandler(
	customerService customer.CustomerService,
	attendanceService attendance.AttendanceService,
) CustomerHandler {
	return &CustomerHandlerImpl{
		customerService:   customerService,
		attendanceService: attendanceService,
	}
}

// NewForm implements CustomerHandler. The blank template mirrors the
// deployed schema file, so the frontend never hardcodes field names.
func (h *CustomerHandlerImpl) NewForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.customerService.NewBlankForm(r.Context())
	if err != nil {
		slog.Error("NewForm service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, form)
}

// List implements CustomerHandler.
func (h *CustomerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.ListAll(r.Context())
	if err != nil {
		slog.Error("List customers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, customers)
}

// Get implements CustomerHandler.
func (h *CustomerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.customerService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get customer service error", "customer_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Save implements CustomerHandler.
func (h *CustomerHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq customer.SaveCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save customer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.customerService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save customer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Wire contract: a successful save answers 200, not 201.
	response.SuccessWithMessage(w, "Customer saved successfully", created)
}

// Update implements CustomerHandler.
func (h *CustomerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq customer.UpdateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update customer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.customerService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Update customer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer updated successfully", nil)
}

// Delete implements CustomerHandler.
func (h *CustomerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete customer service error", "customer_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer deleted successfully", nil)
}

// Bill implements CustomerHandler. The linkage is written onto the
// customer document, keyed by the attendance date.
func (h *CustomerHandlerImpl) Bill(w http.ResponseWriter, r *http.Request) {
	var billReq attendance.LinkClientRequest

	if err := json.NewDecoder(r.Body).Decode(&billReq); err != nil {
		slog.Error("Bill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.LinkClientAttendance(r.Context(), billReq); err != nil {
		slog.Error("Bill service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Billing data linked successfully", nil)
}
