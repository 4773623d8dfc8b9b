package attendance

import "context"

// AttendanceRepository defines data access for daily attendance
// entries.
type AttendanceRepository interface {
	// GetByDate retrieves the entry for a date. Returns
	// ErrEntryNotFound when no entry exists.
	GetByDate(ctx context.Context, date string) (Entry, error)

	// CreateIfAbsent atomically inserts the entry unless one already
	// exists for its date, and returns the stored entry either way.
	// Two concurrent callers for the same missing date both get the
	// single winning document.
	CreateIfAbsent(ctx context.Context, entry Entry) (Entry, error)

	// ReplaceWorkerList overwrites WORKER_LIST wholesale and writes the
	// recomputed tallies. Returns ErrEntryNotFound when no entry exists
	// for the date.
	ReplaceWorkerList(ctx context.Context, date string, list []WorkerSnapshot, present, absent int) error

	// List returns every stored entry in store-native order.
	List(ctx context.Context) ([]Entry, error)
}
