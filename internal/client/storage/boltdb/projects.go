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

// CreateProject stores a new project.
// Генерирует UUID если id не задан, чтобы один и тот же код обслуживал
// и локальное создание, и применение записи, пришедшей с сервера.
func (s *Storage) CreateProject(ctx context.Context, project *models.Project) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProjects)
		if bucket == nil {
			return fmt.Errorf("projects bucket not found")
		}

		data, err := json.Marshal(project)
		if err != nil {
			return fmt.Errorf("failed to marshal project: %w", err)
		}

		if err := bucket.Put([]byte(project.ID), data); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}

		return nil
	})
}

// GetProjects returns all projects owned by ownerID
func (s *Storage) GetProjects(ctx context.Context, ownerID string) ([]*models.Project, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var projects []*models.Project

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProjects)
		if bucket == nil {
			return fmt.Errorf("projects bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			project := &models.Project{}
			if err := json.Unmarshal(v, project); err != nil {
				return fmt.Errorf("failed to unmarshal project: %w", err)
			}

			// Фильтруем по владельцу
			if project.OwnerID == ownerID {
				projects = append(projects, project)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return projects, nil
}

// GetProject retrieves a project by ID
func (s *Storage) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var project *models.Project

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProjects)
		if bucket == nil {
			return fmt.Errorf("projects bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrProjectNotFound
		}

		project = &models.Project{}
		if err := json.Unmarshal(data, project); err != nil {
			return fmt.Errorf("failed to unmarshal project: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return project, nil
}

// UpdateProject applies a partial update to the project
func (s *Storage) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProjects)
		if bucket == nil {
			return fmt.Errorf("projects bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrProjectNotFound
		}

		project := &models.Project{}
		if err := json.Unmarshal(data, project); err != nil {
			return fmt.Errorf("failed to unmarshal project: %w", err)
		}

		update.Apply(project)

		updatedData, err := json.Marshal(project)
		if err != nil {
			return fmt.Errorf("failed to marshal project: %w", err)
		}

		if err := bucket.Put([]byte(id), updatedData); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		return nil
	})
}

// DeleteProject removes the project and cascades to all its words
// в одной транзакции: слово не должно пережить свой проект.
func (s *Storage) DeleteProject(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProjects)
		if bucket == nil {
			return fmt.Errorf("projects bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrProjectNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		return deleteWordsOfProjects(tx, map[string]bool{id: true})
	})
}

// GetUnsyncedProjects returns projects not yet known to the server
func (s *Storage) GetUnsyncedProjects(ctx context.Context, ownerID string) ([]*models.Project, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var projects []*models.Project

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProjects)
		if bucket == nil {
			return fmt.Errorf("projects bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			project := &models.Project{}
			if err := json.Unmarshal(v, project); err != nil {
				return fmt.Errorf("failed to unmarshal project: %w", err)
			}

			if project.OwnerID == ownerID && !project.IsSynced {
				projects = append(projects, project)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return projects, nil
}

// MarkProjectSynced sets the local is_synced bookkeeping flag
func (s *Storage) MarkProjectSynced(ctx context.Context, id string) error {
	synced := true
	return s.UpdateProject(ctx, id, models.ProjectUpdate{IsSynced: &synced})
}

// ReplaceOwnerData атомарно заменяет проекты и слова владельца на переданный
// набор. Выполняется одной транзакцией, чтобы параллельное чтение не увидело
// наполовину опустошённое состояние.
func (s *Storage) ReplaceOwnerData(ctx context.Context, ownerID string, projects []*models.Project, words []*models.Word, staleProjectIDs []string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		projectBucket := tx.Bucket(bucketProjects)
		wordBucket := tx.Bucket(bucketWords)
		if projectBucket == nil || wordBucket == nil {
			return fmt.Errorf("projects or words bucket not found")
		}

		// Собираем id всех затронутых проектов: старые локальные,
		// новые из набора и явно перечисленные устаревшие.
		touched := make(map[string]bool)
		for _, id := range staleProjectIDs {
			touched[id] = true
		}
		for _, p := range projects {
			touched[p.ID] = true
		}

		// Удаляем существующие проекты владельца
		var staleKeys [][]byte
		err := projectBucket.ForEach(func(k, v []byte) error {
			project := &models.Project{}
			if err := json.Unmarshal(v, project); err != nil {
				return fmt.Errorf("failed to unmarshal project: %w", err)
			}
			if project.OwnerID == ownerID {
				touched[project.ID] = true
				staleKeys = append(staleKeys, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range staleKeys {
			if err := projectBucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete stale project: %w", err)
			}
		}

		// Удаляем слова всех затронутых проектов
		if err := deleteWordsOfProjects(tx, touched); err != nil {
			return err
		}

		// Вставляем новый набор
		for _, project := range projects {
			data, err := json.Marshal(project)
			if err != nil {
				return fmt.Errorf("failed to marshal project: %w", err)
			}
			if err := projectBucket.Put([]byte(project.ID), data); err != nil {
				return fmt.Errorf("failed to save project: %w", err)
			}
		}

		for _, word := range words {
			data, err := json.Marshal(word)
			if err != nil {
				return fmt.Errorf("failed to marshal word: %w", err)
			}
			if err := wordBucket.Put([]byte(word.ID), data); err != nil {
				return fmt.Errorf("failed to save word: %w", err)
			}
		}

		return nil
	})
}

// deleteWordsOfProjects удаляет внутри транзакции все слова перечисленных
// проектов. Используется каскадным удалением и реконсилиацией.
func deleteWordsOfProjects(tx *bbolt.Tx, projectIDs map[string]bool) error {
	bucket := tx.Bucket(bucketWords)
	if bucket == nil {
		return fmt.Errorf("words bucket not found")
	}

	var keys [][]byte
	err := bucket.ForEach(func(k, v []byte) error {
		word := &models.Word{}
		if err := json.Unmarshal(v, word); err != nil {
			return fmt.Errorf("failed to unmarshal word: %w", err)
		}
		if projectIDs[word.ProjectID] {
			keys = append(keys, append([]byte(nil), k...))
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, k := range keys {
		if err := bucket.Delete(k); err != nil {
			return fmt.Errorf("failed to delete word: %w", err)
		}
	}

	return nil
}
