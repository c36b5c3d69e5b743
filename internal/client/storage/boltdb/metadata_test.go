package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLastSync_NeverSynced(t *testing.T) {
	store := createTestStorage(t)

	ts, userID, err := store.GetLastSync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)
	assert.Empty(t, userID)
}

func TestSaveGetLastSync(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLastSync(ctx, 1700000000123, "user-1"))

	ts, userID, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123), ts)
	assert.Equal(t, "user-1", userID)
}

func TestSaveLastSync_Overwrites(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLastSync(ctx, 100, "user-1"))
	require.NoError(t, store.SaveLastSync(ctx, 200, "user-2"))

	ts, userID, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(200), ts)
	assert.Equal(t, "user-2", userID)
}

func TestClearLastSync(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLastSync(ctx, 100, "user-1"))
	require.NoError(t, store.ClearLastSync(ctx))

	ts, userID, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)
	assert.Empty(t, userID)
}

func TestClearLastSync_EmptyIsNoError(t *testing.T) {
	store := createTestStorage(t)

	assert.NoError(t, store.ClearLastSync(context.Background()))
}
