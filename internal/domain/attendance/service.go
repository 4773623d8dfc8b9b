package attendance

import "context"

// AttendanceService defines business logic for the attendance entry
// lifecycle.
type AttendanceService interface {
	// GetOrCreate returns the entry for a date, materializing it from
	// the current roster when none exists. An empty date defaults to
	// today in IST. Idempotent.
	GetOrCreate(ctx context.Context, date string) (Entry, error)

	// UpdateStatuses replaces the stored worker list wholesale and
	// recomputes the PRESENT/ABSENT tallies.
	UpdateStatuses(ctx context.Context, req UpdateStatusesRequest) error

	// LinkClientAttendance writes ATTENDANCE_DATA.<date> onto the
	// referenced customer. The entry and the customer must both exist.
	LinkClientAttendance(ctx context.Context, req LinkClientRequest) error

	// ListAll returns all entries keyed by date.
	ListAll(ctx context.Context) (map[string]Entry, error)
}
