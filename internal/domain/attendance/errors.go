package attendance

import "errors"

// Attendance domain errors
var (
	ErrEntryNotFound = errors.New("attendance entry does not exist")
)
