package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/customer"
	"github.com/rosterly/attendance-backend-go/internal/domain/user"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
)

// Integration tests against a live MongoDB. Each run uses a throwaway
// database that is dropped on cleanup.
func integrationDB(t *testing.T) *database.DB {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping MongoDB integration tests")
	}

	dbName := fmt.Sprintf("attendance_test_%d", time.Now().UnixNano())
	db, err := database.NewMongoDB(uri, dbName)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.Collection(colAttendance).Database().Drop(ctx)
		_ = db.Close(ctx)
	})

	require.NoError(t, EnsureIndexes(context.Background(), db))
	return db
}

func customerData(name, email, mobile string) map[string]customer.FieldValue {
	return map[string]customer.FieldValue{
		customer.FieldName:   {Description: "Customer name", Value: name},
		customer.FieldEmail:  {Description: "Contact email", Value: email},
		customer.FieldMobile: {Description: "Contact number", Value: mobile},
	}
}

func TestEnsureIndexes_Idempotent(t *testing.T) {
	db := integrationDB(t)

	// integrationDB already ran it once; a second run must not fail.
	assert.NoError(t, EnsureIndexes(context.Background(), db))
}

func TestAttendanceRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	db := integrationDB(t)
	repo := NewAttendanceRepository(db)

	entry := attendance.Entry{
		Date: "2024-06-15",
		WorkerList: []attendance.WorkerSnapshot{
			{WorkerID: "a", Name: "Asha Patil", Email: "asha@example.com"},
		},
	}

	first, err := repo.CreateIfAbsent(ctx, entry)
	require.NoError(t, err)
	assert.False(t, first.ID.IsZero())

	// The second call with a different list must return the stored
	// document untouched, not overwrite it.
	entry.WorkerList = nil
	second, err := repo.CreateIfAbsent(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.WorkerList, 1)

	count, err := db.Collection(colAttendance).CountDocuments(ctx, bson.M{"DATE": "2024-06-15"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAttendanceRepository_GetByDate_NotFound(t *testing.T) {
	db := integrationDB(t)
	repo := NewAttendanceRepository(db)

	_, err := repo.GetByDate(context.Background(), "1999-01-01")
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestAttendanceRepository_ReplaceWorkerList(t *testing.T) {
	ctx := context.Background()
	db := integrationDB(t)
	repo := NewAttendanceRepository(db)

	_, err := repo.CreateIfAbsent(ctx, attendance.Entry{Date: "2024-06-15"})
	require.NoError(t, err)

	list := []attendance.WorkerSnapshot{
		{WorkerID: "a", Status: attendance.StatusPresent},
		{WorkerID: "b", Status: attendance.StatusAbsent},
	}
	require.NoError(t, repo.ReplaceWorkerList(ctx, "2024-06-15", list, 1, 1))

	stored, err := repo.GetByDate(ctx, "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Present)
	assert.Equal(t, 1, stored.Absent)
	assert.Len(t, stored.WorkerList, 2)

	err = repo.ReplaceWorkerList(ctx, "1999-01-01", list, 1, 1)
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestCustomerRepository_DuplicateKeyBackstop(t *testing.T) {
	ctx := context.Background()
	db := integrationDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.Insert(ctx, customer.Customer{
		Data: customerData("Acme Traders", "ops@acme.example", "9876512345"),
	})
	require.NoError(t, err)

	// The sparse unique index rejects the insert even when the
	// service-level pre-checks were raced past.
	_, err = repo.Insert(ctx, customer.Customer{
		Data: customerData("Other Co", "ops@acme.example", "9000000000"),
	})
	assert.ErrorIs(t, err, customer.ErrEmailExists)
}

func TestCustomerRepository_ExistsFieldValue_ExcludesSelf(t *testing.T) {
	ctx := context.Background()
	db := integrationDB(t)
	repo := NewCustomerRepository(db)

	created, err := repo.Insert(ctx, customer.Customer{
		Data: customerData("Acme Traders", "ops@acme.example", "9876512345"),
	})
	require.NoError(t, err)

	exists, err := repo.ExistsFieldValue(ctx, customer.FieldEmail, "ops@acme.example", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsFieldValue(ctx, customer.FieldEmail, "ops@acme.example", created.ID.Hex())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_UniqueIndexes(t *testing.T) {
	ctx := context.Background()
	db := integrationDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Create(ctx, user.User{
		Username: "supervisor", Email: "supervisor@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	taken, err := repo.ExistsUsername(ctx, "supervisor")
	require.NoError(t, err)
	assert.True(t, taken)

	inUse, err := repo.ExistsEmail(ctx, "supervisor@example.com")
	require.NoError(t, err)
	assert.True(t, inUse)

	found, err := repo.GetByUsername(ctx, "supervisor")
	require.NoError(t, err)
	assert.Equal(t, "supervisor@example.com", found.Email)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
