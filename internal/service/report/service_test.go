package report

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository // panics on unused methods

	entries map[string]attendance.Entry
}

func (f *fakeAttendanceRepo) GetByDate(ctx context.Context, date string) (attendance.Entry, error) {
	entry, ok := f.entries[date]
	if !ok {
		return attendance.Entry{}, attendance.ErrEntryNotFound
	}
	return entry, nil
}

type fakeArchive struct {
	uploads map[string][]byte
	err     error
}

func (f *fakeArchive) Upload(ctx context.Context, file io.Reader, path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[path] = content
	return path, nil
}

func (f *fakeArchive) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.uploads[path]
	return ok, nil
}

func entryFixture() attendance.Entry {
	return attendance.Entry{
		Date: "2024-06-15",
		WorkerList: []attendance.WorkerSnapshot{
			{WorkerID: "a", Name: "Asha Patil", Email: "asha@example.com", Phone: "9876500001", Status: attendance.StatusPresent},
			{WorkerID: "b", Name: "Binod Kumar", Email: "binod@example.com", Phone: "9876500002", Status: attendance.StatusAbsent},
			{WorkerID: "c", Name: "Chitra Rao", Email: "chitra@example.com", Status: ""},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	repo := &fakeAttendanceRepo{entries: map[string]attendance.Entry{"2024-06-15": entryFixture()}}
	svc := NewReportService(repo, nil)

	artifact, err := svc.RenderCSV(context.Background(), "2024-06-15")
	require.NoError(t, err)

	assert.Equal(t, "Attendance_Report_2024-06-15.csv", artifact.Filename)
	assert.NotEmpty(t, artifact.ID)

	lines := strings.Split(strings.TrimRight(string(artifact.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email,Phone", lines[0])
	assert.Equal(t, "Asha Patil,asha@example.com,9876500001", lines[1])

	// Unset status is expected on site; only ABSENT is filtered out.
	assert.Equal(t, "Chitra Rao,chitra@example.com,", lines[2])
	assert.NotContains(t, string(artifact.Content), "Binod Kumar")
}

func TestRenderCSV_EmptyList(t *testing.T) {
	repo := &fakeAttendanceRepo{entries: map[string]attendance.Entry{
		"2024-06-15": {Date: "2024-06-15"},
	}}
	svc := NewReportService(repo, nil)

	artifact, err := svc.RenderCSV(context.Background(), "2024-06-15")
	require.NoError(t, err)

	// Header-only output for an entry with no workers.
	assert.Equal(t, "Name,Email,Phone\n", string(artifact.Content))
}

func TestRenderCSV_UnknownDate(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{entries: map[string]attendance.Entry{}}, nil)

	_, err := svc.RenderCSV(context.Background(), "2024-06-15")
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestRenderCSV_InvalidDate(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, nil)

	_, err := svc.RenderCSV(context.Background(), "15-06-2024")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "DATE", verrs[0].Field)
}

func TestRenderCSV_Archives(t *testing.T) {
	repo := &fakeAttendanceRepo{entries: map[string]attendance.Entry{"2024-06-15": entryFixture()}}
	archive := &fakeArchive{}
	svc := NewReportService(repo, archive)

	artifact, err := svc.RenderCSV(context.Background(), "2024-06-15")
	require.NoError(t, err)

	require.Len(t, archive.uploads, 1)
	path := "2024-06-15/Attendance_Report_" + artifact.ID + ".csv"
	assert.Equal(t, artifact.Content, archive.uploads[path])
}

func TestRenderCSV_ArchiveFailureIsNotFatal(t *testing.T) {
	repo := &fakeAttendanceRepo{entries: map[string]attendance.Entry{"2024-06-15": entryFixture()}}
	archive := &fakeArchive{err: io.ErrClosedPipe}
	svc := NewReportService(repo, archive)

	artifact, err := svc.RenderCSV(context.Background(), "2024-06-15")
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Content)
}
