package storage

import (
	"context"
	"io"
)

// FileStorage persists generated artifacts. Local disk today; an
// object store would implement the same interface.
type FileStorage interface {
	// Upload stores the content under path and returns the clean
	// relative path it was stored at.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
