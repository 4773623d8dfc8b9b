package report

import "context"

// Columns of the rendered sign-in sheet, in output order. The order is
// fixed and never depends on input iteration order.
var Columns = []string{"Name", "Email", "Phone"}

// Artifact is a rendered attendance report ready for download.
type Artifact struct {
	// ID identifies the render for logging and the optional archive.
	ID string

	// Filename is the suggested download name.
	Filename string

	// Content is the raw CSV bytes.
	Content []byte
}

// ReportService renders downloadable artifacts from stored attendance
// entries.
type ReportService interface {
	// RenderCSV derives the sign-in sheet for a date: every snapshot
	// whose status is not ABSENT, projected to Name/Email/Phone.
	// Returns attendance.ErrEntryNotFound when the date has no entry.
	RenderCSV(ctx context.Context, date string) (Artifact, error)
}
