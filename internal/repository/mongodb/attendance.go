package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		collection: db.Collection(colAttendance),
	}
}

// GetByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByDate(ctx context.Context, date string) (attendance.Entry, error) {
	var entry attendance.Entry
	err := r.collection.FindOne(ctx, bson.M{"DATE": date}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Entry{}, attendance.ErrEntryNotFound
		}
		return attendance.Entry{}, fmt.Errorf("failed to get attendance entry: %w", err)
	}

	return entry, nil
}

// CreateIfAbsent implements attendance.AttendanceRepository.
//
// A $setOnInsert upsert against the unique DATE index makes the
// get-or-create atomic: concurrent callers for the same missing date
// race on a single insert and all decode the winning document. The
// tallies are deliberately left unset until the first status update.
func (r *attendanceRepositoryImpl) CreateIfAbsent(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	filter := bson.M{"DATE": entry.Date}
	update := bson.M{"$setOnInsert": bson.M{
		"DATE":        entry.Date,
		"WORKER_LIST": entry.WorkerList,
		"CLIENT_ID":   entry.ClientID,
		"SIGNED_BY":   entry.SignedBy,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored attendance.Entry
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return attendance.Entry{}, fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return stored, nil
}

// ReplaceWorkerList implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ReplaceWorkerList(ctx context.Context, date string, list []attendance.WorkerSnapshot, present, absent int) error {
	update := bson.M{"$set": bson.M{
		"WORKER_LIST": list,
		"PRESENT":     present,
		"ABSENT":      absent,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"DATE": date}, update)
	if err != nil {
		return fmt.Errorf("failed to update attendance entry: %w", err)
	}
	if result.MatchedCount == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Entry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance entries: %w", err)
	}

	var entries []attendance.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode attendance entries: %w", err)
	}

	return entries, nil
}
