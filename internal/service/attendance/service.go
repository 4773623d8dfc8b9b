package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/customer"
	"github.com/rosterly/attendance-backend-go/internal/domain/worker"
	"github.com/rosterly/attendance-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	customerRepo   customer.CustomerRepository
	clock          clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	customerRepo customer.CustomerRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		customerRepo:   customerRepo,
		clock:          clk,
	}
}

// GetOrCreate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetOrCreate(ctx context.Context, date string) (attendance.Entry, error) {
	if date == "" {
		date = clock.TodayIST(s.clock)
	}

	entry, err := s.attendanceRepo.GetByDate(ctx, date)
	if err == nil {
		return entry, nil
	}
	if err != attendance.ErrEntryNotFound {
		return attendance.Entry{}, fmt.Errorf("failed to look up attendance entry: %w", err)
	}

	// No entry yet: materialize one from the current roster. The
	// insert is an atomic insert-if-absent, so a concurrent request
	// creating the same date resolves to a single stored entry.
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return attendance.Entry{}, fmt.Errorf("failed to read worker roster: %w", err)
	}

	created, err := s.attendanceRepo.CreateIfAbsent(ctx, attendance.Entry{
		Date:       date,
		WorkerList: attendance.BuildSnapshots(workers),
		ClientID:   "",
		SignedBy:   "",
	})
	if err != nil {
		return attendance.Entry{}, err
	}

	slog.Info("Attendance entry created", "date", created.Date, "workers", len(created.WorkerList))
	return created, nil
}

// UpdateStatuses implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateStatuses(ctx context.Context, req attendance.UpdateStatusesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	present, absent := attendance.CountStatuses(req.WorkerList)

	// Wholesale replace: callers resend the full list even for a
	// single change.
	if err := s.attendanceRepo.ReplaceWorkerList(ctx, req.Date, req.WorkerList, present, absent); err != nil {
		return err
	}

	slog.Info("Attendance entry updated", "date", req.Date, "present", present, "absent", absent)
	return nil
}

// LinkClientAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) LinkClientAttendance(ctx context.Context, req attendance.LinkClientRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// The entry must exist before billing linkage can reference it.
	if _, err := s.attendanceRepo.GetByDate(ctx, req.Date); err != nil {
		return err
	}

	// Cross-entity write: the linkage lands on the customer document,
	// not the attendance entry.
	return s.customerRepo.SetAttendanceData(ctx, req.ClientID, req.Date, req.AttendanceData)
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context) (map[string]attendance.Entry, error) {
	entries, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]attendance.Entry, len(entries))
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}

	return byDate, nil
}
