package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

// Enqueue durably appends an item to the sync queue.
// Ключ — big-endian sequence number bucket'а, поэтому порядок обхода
// совпадает с порядком вставки (FIFO).
func (s *Storage) Enqueue(ctx context.Context, item *models.SyncQueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("sync_queue bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		item.ID = seq

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		if err := bucket.Put(queueKey(seq), data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}

		return nil
	})
}

// ListQueue returns all pending items in insertion order
func (s *Storage) ListQueue(ctx context.Context) ([]*models.SyncQueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*models.SyncQueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("sync_queue bucket not found")
		}

		// ForEach обходит ключи в byte order; big-endian ключи
		// сохраняют числовой порядок sequence
		return bucket.ForEach(func(k, v []byte) error {
			item := &models.SyncQueueItem{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// RemoveQueueItem deletes an item by its sequence ID
func (s *Storage) RemoveQueueItem(ctx context.Context, id uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("sync_queue bucket not found")
		}

		if bucket.Get(queueKey(id)) == nil {
			return storage.ErrQueueItemNotFound
		}

		if err := bucket.Delete(queueKey(id)); err != nil {
			return fmt.Errorf("failed to delete queue item: %w", err)
		}

		return nil
	})
}

// IncrementRetry bumps the item's retry counter in place
func (s *Storage) IncrementRetry(ctx context.Context, id uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("sync_queue bucket not found")
		}

		data := bucket.Get(queueKey(id))
		if data == nil {
			return storage.ErrQueueItemNotFound
		}

		item := &models.SyncQueueItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal queue item: %w", err)
		}

		item.RetryCount++

		updatedData, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		if err := bucket.Put(queueKey(id), updatedData); err != nil {
			return fmt.Errorf("failed to update queue item: %w", err)
		}

		return nil
	})
}

// ClearQueue drops all items unconditionally
func (s *Storage) ClearQueue(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketQueue); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		if _, err := tx.CreateBucket(bucketQueue); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})
}

// QueueLen returns the number of pending items
func (s *Storage) QueueLen(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("sync_queue bucket not found")
		}

		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

// queueKey кодирует sequence number в big-endian ключ
func queueKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
