package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/carlos0768/lexisync/internal/client/storage"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
	keyLastSyncedUserID  = "last_synced_user_id"
)

// SaveLastSync saves the moment of the last successful full sync (unix millis)
// and the owner it was performed for
func (s *Storage) SaveLastSync(ctx context.Context, timestamp int64, userID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		if err := bucket.Put([]byte(keyLastSyncTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}

		if err := bucket.Put([]byte(keyLastSyncedUserID), []byte(userID)); err != nil {
			return fmt.Errorf("failed to save last synced user id: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the last full sync moment and owner
// Returns (0, "") if no full sync has been performed yet
func (s *Storage) GetLastSync(ctx context.Context) (int64, string, error) {
	if s.db == nil {
		return 0, "", storage.ErrStorageClosed
	}

	var timestamp int64
	var userID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(keyLastSyncTimestamp))
		if timestampBytes != nil {
			timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		}

		userIDBytes := bucket.Get([]byte(keyLastSyncedUserID))
		if userIDBytes != nil {
			userID = string(userIDBytes)
		}

		return nil
	})

	if err != nil {
		return 0, "", fmt.Errorf("failed to get last sync metadata: %w", err)
	}

	return timestamp, userID, nil
}

// ClearLastSync drops sync metadata (logout)
func (s *Storage) ClearLastSync(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Delete([]byte(keyLastSyncTimestamp)); err != nil {
			return fmt.Errorf("failed to delete last sync timestamp: %w", err)
		}

		if err := bucket.Delete([]byte(keyLastSyncedUserID)); err != nil {
			return fmt.Errorf("failed to delete last synced user id: %w", err)
		}

		return nil
	})
}
