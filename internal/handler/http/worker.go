package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/report"
	"github.com/rosterly/attendance-backend-go/internal/domain/worker"
	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	ListWorkers(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerRepo        worker.WorkerRepository
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewWorkerHandler(
	workerRepo worker.WorkerRepository,
	attendanceService attendance.AttendanceService,
	reportService report.ReportService,
) WorkerHandler {
	return &WorkerHandlerImpl{
		workerRepo:        workerRepo,
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// ListWorkers implements WorkerHandler.
func (h *WorkerHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerRepo.List(r.Context())
	if err != nil {
		slog.Error("ListWorkers repository error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// ListEntries implements WorkerHandler.
func (h *WorkerHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListEntries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetAttendance implements WorkerHandler. DATE is optional; a missing
// or empty value means today in IST, and the entry is created from
// the roster if the date has none yet.
func (h *WorkerHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	req := attendance.GetEntryRequest{Date: r.URL.Query().Get("DATE")}

	if err := req.Validate(); err != nil {
		slog.Error("GetAttendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	entry, err := h.attendanceService.GetOrCreate(r.Context(), req.Date)
	if err != nil {
		slog.Error("GetAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance entry fetched", map[string]interface{}{
		"WORKER_DATA": entry,
	})
}

// UpdateAttendance implements WorkerHandler.
func (h *WorkerHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateStatusesRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.UpdateStatuses(r.Context(), updateReq); err != nil {
		slog.Error("UpdateAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", nil)
}

// DownloadReport implements WorkerHandler.
func (h *WorkerHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("DATE")

	artifact, err := h.reportService.RenderCSV(r.Context(), date)
	if err != nil {
		slog.Error("DownloadReport service error", "date", date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, artifact.Filename, "text/csv", artifact.Content)
}
