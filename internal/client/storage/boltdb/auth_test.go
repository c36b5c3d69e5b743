package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos0768/lexisync/internal/client/storage"
)

func TestSaveGetDeleteSession(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// До сохранения сессии нет
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{
		Username:     "testuser",
		UserID:       "user-123",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Tier:         "active",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}

	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.AccessToken, got.AccessToken)
	assert.Equal(t, session.RefreshToken, got.RefreshToken)
	assert.Equal(t, session.Tier, got.Tier)
	assert.Equal(t, session.ExpiresAt, got.ExpiresAt)

	require.NoError(t, store.DeleteSession(ctx))

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSaveSession_Overwrites(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &storage.Session{Username: "first", UserID: "user-1"}))
	require.NoError(t, store.SaveSession(ctx, &storage.Session{Username: "second", UserID: "user-2"}))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Username, "a device holds at most one session")
}

func TestDeleteSession_EmptyIsNoError(t *testing.T) {
	store := createTestStorage(t)

	assert.NoError(t, store.DeleteSession(context.Background()))
}
