package storage

import (
	"context"

	"github.com/carlos0768/lexisync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for the durable sync queue.
// Items are a FIFO log of mutations that could not reach the server.
type QueueStorage interface {
	// Enqueue durably appends an item and assigns its sequence ID
	Enqueue(ctx context.Context, item *models.SyncQueueItem) error

	// ListQueue returns all pending items in insertion order
	ListQueue(ctx context.Context) ([]*models.SyncQueueItem, error)

	// RemoveQueueItem deletes an item after it was applied remotely
	// (or dropped as a permanent failure)
	RemoveQueueItem(ctx context.Context, id uint64) error

	// IncrementRetry bumps the item's retry counter in place
	IncrementRetry(ctx context.Context, id uint64) error

	// ClearQueue drops all items unconditionally.
	// Only the full-sync reconciler calls this: a completed reconciliation
	// supersedes any queued deltas.
	ClearQueue(ctx context.Context) error

	// QueueLen returns the number of pending items
	QueueLen(ctx context.Context) (int, error)
}
