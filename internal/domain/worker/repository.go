package worker

import "context"

// WorkerRepository defines data access for the worker roster.
type WorkerRepository interface {
	// List returns all workers in store-native order.
	List(ctx context.Context) ([]Worker, error)

	// Insert adds a worker to the roster. Used by the seed CLI only.
	Insert(ctx context.Context, w Worker) (Worker, error)
}
