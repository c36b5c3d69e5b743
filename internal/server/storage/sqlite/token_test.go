package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/internal/server/storage"
)

// createTestUser inserts a user to satisfy the refresh_tokens foreign key
func createTestUser(t *testing.T, s *Storage, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "hash",
		Tier:         models.TierFree,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func TestTokenStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")

	token := &models.RefreshToken{
		Token:     "refresh-token-1",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(24 * time.Hour).Truncate(time.Second),
		CreatedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	retrieved, err := s.GetRefreshToken(ctx, "refresh-token-1")
	require.NoError(t, err)
	assert.Equal(t, token.Token, retrieved.Token)
	assert.Equal(t, token.UserID, retrieved.UserID)
	assert.WithinDuration(t, token.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestTokenStorage_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetRefreshToken(ctx, "no-such-token")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")

	token := &models.RefreshToken{
		Token:     "refresh-token-1",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	require.NoError(t, s.DeleteRefreshToken(ctx, "refresh-token-1"))

	_, err := s.GetRefreshToken(ctx, "refresh-token-1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Повторное удаление
	err = s.DeleteRefreshToken(ctx, "refresh-token-1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_DeleteUserTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	for i, userID := range []string{alice.ID, alice.ID, bob.ID} {
		token := &models.RefreshToken{
			Token:     uuid.New().String(),
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}
		require.NoError(t, s.SaveRefreshToken(ctx, token), "token %d", i)
	}

	deleted, err := s.DeleteUserTokens(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Токены bob не тронуты
	deleted, err = s.DeleteUserTokens(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, s, "alice")

	expired := &models.RefreshToken{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, s.SaveRefreshToken(ctx, expired))

	valid := &models.RefreshToken{
		Token:     "valid-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.SaveRefreshToken(ctx, valid))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.GetRefreshToken(ctx, "expired-token")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	_, err = s.GetRefreshToken(ctx, "valid-token")
	assert.NoError(t, err)
}
