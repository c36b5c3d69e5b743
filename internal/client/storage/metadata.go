package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing sync metadata on client
type MetadataStorage interface {
	// SaveLastSync records the moment of the last successful full sync
	// (unix millis) and the owner it was performed for
	SaveLastSync(ctx context.Context, timestamp int64, userID string) error

	// GetLastSync retrieves the last full sync moment and owner.
	// Returns (0, "") if no full sync has been performed yet
	GetLastSync(ctx context.Context) (int64, string, error)

	// ClearLastSync drops sync metadata (logout)
	ClearLastSync(ctx context.Context) error
}
