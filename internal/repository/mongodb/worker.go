package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rosterly/attendance-backend-go/internal/domain/worker"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	collection *mongo.Collection
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{
		collection: db.Collection(colWorkers),
	}
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	var workers []worker.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("failed to decode workers: %w", err)
	}

	return workers, nil
}

// Insert implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Insert(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	result, err := r.collection.InsertOne(ctx, w)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to insert worker: %w", err)
	}

	var created worker.Worker
	if err := r.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return worker.Worker{}, fmt.Errorf("failed to read back worker: %w", err)
	}

	return created, nil
}
