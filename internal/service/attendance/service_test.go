package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/customer"
	"github.com/rosterly/attendance-backend-go/internal/domain/worker"
	"github.com/rosterly/attendance-backend-go/internal/pkg/clock"
)

// In-memory repository fakes

type fakeAttendanceRepo struct {
	entries map[string]attendance.Entry
	inserts int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{entries: make(map[string]attendance.Entry)}
}

func (f *fakeAttendanceRepo) GetByDate(ctx context.Context, date string) (attendance.Entry, error) {
	entry, ok := f.entries[date]
	if !ok {
		return attendance.Entry{}, attendance.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeAttendanceRepo) CreateIfAbsent(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	if existing, ok := f.entries[entry.Date]; ok {
		return existing, nil
	}
	entry.ID = primitive.NewObjectID()
	f.entries[entry.Date] = entry
	f.inserts++
	return entry, nil
}

func (f *fakeAttendanceRepo) ReplaceWorkerList(ctx context.Context, date string, list []attendance.WorkerSnapshot, present, absent int) error {
	entry, ok := f.entries[date]
	if !ok {
		return attendance.ErrEntryNotFound
	}
	entry.WorkerList = list
	entry.Present = present
	entry.Absent = absent
	f.entries[date] = entry
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Entry, error) {
	entries := make([]attendance.Entry, 0, len(f.entries))
	for _, entry := range f.entries {
		entries = append(entries, entry)
	}
	return entries, nil
}

type fakeWorkerRepo struct {
	workers []worker.Worker
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	return f.workers, nil
}

func (f *fakeWorkerRepo) Insert(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers = append(f.workers, w)
	return w, nil
}

type fakeCustomerRepo struct {
	customer.CustomerRepository // panics on unused methods

	known      map[string]map[string]map[string]interface{} // id -> date -> data
	lastLinked string
}

func newFakeCustomerRepo(ids ...string) *fakeCustomerRepo {
	known := make(map[string]map[string]map[string]interface{})
	for _, id := range ids {
		known[id] = make(map[string]map[string]interface{})
	}
	return &fakeCustomerRepo{known: known}
}

func (f *fakeCustomerRepo) SetAttendanceData(ctx context.Context, id, date string, data map[string]interface{}) error {
	dates, ok := f.known[id]
	if !ok {
		return customer.ErrCustomerNotFound
	}
	dates[date] = data
	f.lastLinked = id
	return nil
}

func testRoster() []worker.Worker {
	return []worker.Worker{
		{ID: primitive.NewObjectID(), Name: "Asha Patil", Email: "asha@example.com", Phone: "9876500001"},
		{ID: primitive.NewObjectID(), Name: "Binod Kumar", Email: "binod@example.com", Phone: "9876500002"},
		{ID: primitive.NewObjectID(), Name: "Chitra Rao", Email: "chitra@example.com"},
	}
}

func newTestService(repo *fakeAttendanceRepo, roster []worker.Worker, customers *fakeCustomerRepo, clk clock.Clock) attendance.AttendanceService {
	if customers == nil {
		customers = newFakeCustomerRepo()
	}
	return NewAttendanceService(repo, &fakeWorkerRepo{workers: roster}, customers, clk)
}

func TestGetOrCreate_MaterializesFromRoster(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, testRoster(), nil, clock.System())

	entry, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-15", entry.Date)
	assert.False(t, entry.ID.IsZero())
	assert.Empty(t, entry.ClientID)
	assert.Empty(t, entry.SignedBy)
	require.Len(t, entry.WorkerList, 3)

	// Snapshots copy identity fields and start with unset status
	assert.Equal(t, "Asha Patil", entry.WorkerList[0].Name)
	assert.Equal(t, "asha@example.com", entry.WorkerList[0].Email)
	for _, snapshot := range entry.WorkerList {
		assert.Empty(t, snapshot.Status)
		assert.Empty(t, snapshot.Comments)
		assert.NotEmpty(t, snapshot.WorkerID)
	}
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, testRoster(), nil, clock.System())

	first, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)
	second, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.inserts)
}

func TestGetOrCreate_SnapshotsFrozenAtCreation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	workerRepo := &fakeWorkerRepo{workers: testRoster()}
	svc := NewAttendanceService(repo, workerRepo, newFakeCustomerRepo(), clock.System())

	first, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	// Roster grows afterwards; the stored snapshot must not change.
	workerRepo.workers = append(workerRepo.workers, worker.Worker{
		ID: primitive.NewObjectID(), Name: "Dinesh Joshi", Email: "dinesh@example.com",
	})

	again, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)
	assert.Len(t, again.WorkerList, len(first.WorkerList))
}

func TestGetOrCreate_DefaultDateUsesIST(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()

	// 20:00 UTC is already past midnight in IST (UTC+5:30).
	clk := clock.Fixed(time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC))
	svc := newTestService(repo, testRoster(), nil, clk)

	entry, err := svc.GetOrCreate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-16", entry.Date)
}

func TestUpdateStatuses_RecomputesTallies(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, testRoster(), nil, clock.System())

	created, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	list := created.WorkerList
	list[0].Status = attendance.StatusPresent
	list[1].Status = attendance.StatusAbsent
	// list[2] stays unset and counts toward neither tally

	err = svc.UpdateStatuses(ctx, attendance.UpdateStatusesRequest{Date: "2024-06-15", WorkerList: list})
	require.NoError(t, err)

	stored := repo.entries["2024-06-15"]
	assert.Equal(t, 1, stored.Present)
	assert.Equal(t, 1, stored.Absent)
}

func TestUpdateStatuses_CaseSensitiveExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, testRoster(), nil, clock.System())

	_, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	list := []attendance.WorkerSnapshot{
		{WorkerID: "a", Status: "present"},
		{WorkerID: "b", Status: "Absent"},
		{WorkerID: "c", Status: "PRESENT "},
		{WorkerID: "d", Status: attendance.StatusPresent},
	}
	err = svc.UpdateStatuses(ctx, attendance.UpdateStatusesRequest{Date: "2024-06-15", WorkerList: list})
	require.NoError(t, err)

	stored := repo.entries["2024-06-15"]
	assert.Equal(t, 1, stored.Present)
	assert.Equal(t, 0, stored.Absent)
}

func TestUpdateStatuses_WholesaleReplace(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, testRoster(), nil, clock.System())

	_, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	// A partial list replaces the stored one wholesale.
	short := []attendance.WorkerSnapshot{{WorkerID: "only", Name: "Asha Patil", Status: attendance.StatusPresent}}
	err = svc.UpdateStatuses(ctx, attendance.UpdateStatusesRequest{Date: "2024-06-15", WorkerList: short})
	require.NoError(t, err)

	stored := repo.entries["2024-06-15"]
	assert.Len(t, stored.WorkerList, 1)
	assert.Equal(t, 1, stored.Present)
}

func TestUpdateStatuses_UnknownDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), testRoster(), nil, clock.System())

	err := svc.UpdateStatuses(ctx, attendance.UpdateStatusesRequest{
		Date:       "2024-06-15",
		WorkerList: []attendance.WorkerSnapshot{},
	})
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestLinkClientAttendance(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	clientID := primitive.NewObjectID().Hex()
	customers := newFakeCustomerRepo(clientID)
	svc := newTestService(repo, testRoster(), customers, clock.System())

	_, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	data := map[string]interface{}{"HOURS": 8, "SITE": "Warehouse 3"}
	err = svc.LinkClientAttendance(ctx, attendance.LinkClientRequest{
		Date: "2024-06-15", ClientID: clientID, AttendanceData: data,
	})
	require.NoError(t, err)

	// The write lands on the customer, keyed by date.
	assert.Equal(t, data, customers.known[clientID]["2024-06-15"])
}

func TestLinkClientAttendance_EntryMissing(t *testing.T) {
	ctx := context.Background()
	clientID := primitive.NewObjectID().Hex()
	svc := newTestService(newFakeAttendanceRepo(), testRoster(), newFakeCustomerRepo(clientID), clock.System())

	err := svc.LinkClientAttendance(ctx, attendance.LinkClientRequest{
		Date: "2024-06-15", ClientID: clientID, AttendanceData: map[string]interface{}{},
	})
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestLinkClientAttendance_CustomerMissing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, testRoster(), newFakeCustomerRepo(), clock.System())

	_, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)

	err = svc.LinkClientAttendance(ctx, attendance.LinkClientRequest{
		Date: "2024-06-15", ClientID: primitive.NewObjectID().Hex(), AttendanceData: map[string]interface{}{},
	})
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestListAll_KeyedByDate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, testRoster(), nil, clock.System())

	_, err := svc.GetOrCreate(ctx, "2024-06-15")
	require.NoError(t, err)
	_, err = svc.GetOrCreate(ctx, "2024-06-16")
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2024-06-15", all["2024-06-15"].Date)
	assert.Equal(t, "2024-06-16", all["2024-06-16"].Date)
}
