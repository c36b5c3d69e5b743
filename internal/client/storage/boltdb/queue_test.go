package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

func queueItem(entityID string) *models.SyncQueueItem {
	return &models.SyncQueueItem{
		Operation: models.SyncOpCreate,
		Table:     models.SyncTableProjects,
		EntityID:  entityID,
		Data:      json.RawMessage(`{}`),
		CreatedAt: time.Now(),
	}
}

func TestEnqueue_AssignsSequenceID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := queueItem("proj-1")
	second := queueItem("proj-2")

	require.NoError(t, store.Enqueue(ctx, first))
	require.NoError(t, store.Enqueue(ctx, second))

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID, "sequence ids must be monotonic")
}

func TestListQueue_FIFOOrder(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Enqueue(ctx, queueItem(fmt.Sprintf("proj-%d", i))))
	}

	items, err := store.ListQueue(ctx)

	require.NoError(t, err)
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("proj-%d", i), item.EntityID, "iteration order must match insertion order")
	}
}

func TestRemoveQueueItem(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	item := queueItem("proj-1")
	require.NoError(t, store.Enqueue(ctx, item))

	require.NoError(t, store.RemoveQueueItem(ctx, item.ID))

	items, err := store.ListQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveQueueItem_NotFound(t *testing.T) {
	store := createTestStorage(t)

	err := store.RemoveQueueItem(context.Background(), 42)

	assert.ErrorIs(t, err, storage.ErrQueueItemNotFound)
}

func TestIncrementRetry(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	item := queueItem("proj-1")
	require.NoError(t, store.Enqueue(ctx, item))

	require.NoError(t, store.IncrementRetry(ctx, item.ID))
	require.NoError(t, store.IncrementRetry(ctx, item.ID))

	items, err := store.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].RetryCount)
}

func TestClearQueue(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Enqueue(ctx, queueItem(fmt.Sprintf("proj-%d", i))))
	}

	require.NoError(t, store.ClearQueue(ctx))

	n, err := store.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Очередь после очистки остаётся рабочей
	require.NoError(t, store.Enqueue(ctx, queueItem("proj-new")))
	n, err = store.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueueLen(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	n, err := store.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.Enqueue(ctx, queueItem("proj-1")))
	require.NoError(t, store.Enqueue(ctx, queueItem("proj-2")))

	n, err = store.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestQueue_SurvivesReopen(t *testing.T) {
	// Очередь durable: отложенные мутации переживают перезапуск клиента
	dbPath := t.TempDir() + "/queue.db"
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Enqueue(ctx, queueItem("proj-1")))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	items, err := reopened.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "proj-1", items[0].EntityID)
}
