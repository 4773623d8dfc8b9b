package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs pre-materializes the day's attendance entry so the
// sign-in sheet exists from the start of the IST working day instead
// of waiting for the first request.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceSvc: attendanceSvc}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("ensure_todays_entry", 15*time.Minute, j.EnsureTodaysEntry)
}

// EnsureTodaysEntry lazily creates today's entry. GetOrCreate is
// idempotent, so overlapping runs and concurrent requests are safe.
func (j *AttendanceJobs) EnsureTodaysEntry(ctx context.Context) error {
	entry, err := j.attendanceSvc.GetOrCreate(ctx, "")
	if err != nil {
		return err
	}

	slog.Debug("Cron: today's attendance entry ensured", "date", entry.Date, "workers", len(entry.WorkerList))
	return nil
}
