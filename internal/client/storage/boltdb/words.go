package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

// CreateWords stores a batch of words in one transaction.
// Генерирует UUID для слов без id.
func (s *Storage) CreateWords(ctx context.Context, words []*models.Word) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	for _, word := range words {
		if word.ID == "" {
			word.ID = uuid.New().String()
		}
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWords)
		if bucket == nil {
			return fmt.Errorf("words bucket not found")
		}

		for _, word := range words {
			data, err := json.Marshal(word)
			if err != nil {
				return fmt.Errorf("failed to marshal word: %w", err)
			}

			if err := bucket.Put([]byte(word.ID), data); err != nil {
				return fmt.Errorf("failed to save word: %w", err)
			}
		}

		return nil
	})
}

// GetWords returns all words of a project
func (s *Storage) GetWords(ctx context.Context, projectID string) ([]*models.Word, error) {
	return s.GetWordsByProjects(ctx, []string{projectID})
}

// GetWord retrieves a word by ID
func (s *Storage) GetWord(ctx context.Context, id string) (*models.Word, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var word *models.Word

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWords)
		if bucket == nil {
			return fmt.Errorf("words bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrWordNotFound
		}

		word = &models.Word{}
		if err := json.Unmarshal(data, word); err != nil {
			return fmt.Errorf("failed to unmarshal word: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return word, nil
}

// GetWordsByProjects returns words of all listed projects in one pass
func (s *Storage) GetWordsByProjects(ctx context.Context, projectIDs []string) ([]*models.Word, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	wanted := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}

	var words []*models.Word

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWords)
		if bucket == nil {
			return fmt.Errorf("words bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			word := &models.Word{}
			if err := json.Unmarshal(v, word); err != nil {
				return fmt.Errorf("failed to unmarshal word: %w", err)
			}

			if wanted[word.ProjectID] {
				words = append(words, word)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return words, nil
}

// UpdateWord applies a partial update to the word
func (s *Storage) UpdateWord(ctx context.Context, id string, update models.WordUpdate) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWords)
		if bucket == nil {
			return fmt.Errorf("words bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrWordNotFound
		}

		word := &models.Word{}
		if err := json.Unmarshal(data, word); err != nil {
			return fmt.Errorf("failed to unmarshal word: %w", err)
		}

		update.Apply(word)

		updatedData, err := json.Marshal(word)
		if err != nil {
			return fmt.Errorf("failed to marshal word: %w", err)
		}

		if err := bucket.Put([]byte(id), updatedData); err != nil {
			return fmt.Errorf("failed to update word: %w", err)
		}

		return nil
	})
}

// DeleteWord removes a single word
func (s *Storage) DeleteWord(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWords)
		if bucket == nil {
			return fmt.Errorf("words bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrWordNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete word: %w", err)
		}

		return nil
	})
}

// DeleteWordsByProject removes all words of a project
func (s *Storage) DeleteWordsByProject(ctx context.Context, projectID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return deleteWordsOfProjects(tx, map[string]bool{projectID: true})
	})
}
