package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/report"
	"github.com/rosterly/attendance-backend-go/internal/pkg/storage"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	archive        storage.FileStorage // nil disables archiving
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, archive storage.FileStorage) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		archive:        archive,
	}
}

// RenderCSV implements report.ReportService.
//
// The report is a sign-in sheet of workers expected on site, so only
// snapshots explicitly marked ABSENT are dropped; unset statuses stay
// in. Column order is fixed and never depends on map iteration.
func (s *ReportServiceImpl) RenderCSV(ctx context.Context, date string) (report.Artifact, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return report.Artifact{}, validator.ValidationErrors{{
			Field:   "DATE",
			Message: "DATE must be an ISO date (YYYY-MM-DD)",
		}}
	}

	entry, err := s.attendanceRepo.GetByDate(ctx, date)
	if err != nil {
		return report.Artifact{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(report.Columns); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to write report header: %w", err)
	}

	rows := 0
	for _, snapshot := range entry.WorkerList {
		if snapshot.Status == attendance.StatusAbsent {
			continue
		}
		if err := w.Write([]string{snapshot.Name, snapshot.Email, snapshot.Phone}); err != nil {
			return report.Artifact{}, fmt.Errorf("failed to write report row: %w", err)
		}
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return report.Artifact{}, fmt.Errorf("failed to render report: %w", err)
	}

	artifact := report.Artifact{
		ID:       uuid.NewString(),
		Filename: fmt.Sprintf("Attendance_Report_%s.csv", date),
		Content:  buf.Bytes(),
	}

	s.archiveArtifact(ctx, date, artifact)

	slog.Info("Attendance report rendered", "date", date, "rows", rows, "artifact_id", artifact.ID)
	return artifact, nil
}

// archiveArtifact keeps a copy of the render when an archive is
// configured. Failures are logged, never surfaced: the download was
// already produced and archiving is best-effort.
func (s *ReportServiceImpl) archiveArtifact(ctx context.Context, date string, artifact report.Artifact) {
	if s.archive == nil {
		return
	}

	path := fmt.Sprintf("%s/%s_%s.csv", date, "Attendance_Report", artifact.ID)
	if _, err := s.archive.Upload(ctx, bytes.NewReader(artifact.Content), path); err != nil {
		slog.Error("Failed to archive attendance report", "date", date, "artifact_id", artifact.ID, "error", err)
	}
}
