package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

// LocalRepository обслуживает free-тариф: только локальное хранилище,
// никакой сети и никакой очереди.
type LocalRepository struct {
	projects storage.ProjectStorage
	words    storage.WordStorage
}

// NewLocalRepository creates a repository backed by local storage only
func NewLocalRepository(projects storage.ProjectStorage, words storage.WordStorage) *LocalRepository {
	return &LocalRepository{
		projects: projects,
		words:    words,
	}
}

// CreateProject создает проект в локальном хранилище
func (r *LocalRepository) CreateProject(ctx context.Context, ownerID, title string) (*models.Project, error) {
	project := &models.Project{
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := r.projects.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProjects возвращает все проекты владельца
func (r *LocalRepository) GetProjects(ctx context.Context, ownerID string) ([]*models.Project, error) {
	return r.projects.GetProjects(ctx, ownerID)
}

// GetProject возвращает проект по id
func (r *LocalRepository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return r.projects.GetProject(ctx, id)
}

// UpdateProject применяет частичное обновление проекта
func (r *LocalRepository) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error {
	return r.projects.UpdateProject(ctx, id, update)
}

// DeleteProject удаляет проект и каскадно все его слова
func (r *LocalRepository) DeleteProject(ctx context.Context, id string) error {
	return r.projects.DeleteProject(ctx, id)
}

// CreateWords создает слова проекта из извлечённых записей
func (r *LocalRepository) CreateWords(ctx context.Context, projectID string, entries []models.WordEntry) ([]*models.Word, error) {
	words := buildWords(projectID, entries)

	if err := r.words.CreateWords(ctx, words); err != nil {
		return nil, fmt.Errorf("failed to create words: %w", err)
	}

	return words, nil
}

// GetWords возвращает слова проекта
func (r *LocalRepository) GetWords(ctx context.Context, projectID string) ([]*models.Word, error) {
	return r.words.GetWords(ctx, projectID)
}

// GetWord возвращает слово по id
func (r *LocalRepository) GetWord(ctx context.Context, id string) (*models.Word, error) {
	return r.words.GetWord(ctx, id)
}

// UpdateWord применяет частичное обновление слова
func (r *LocalRepository) UpdateWord(ctx context.Context, id string, update models.WordUpdate) error {
	return r.words.UpdateWord(ctx, id, update)
}

// DeleteWord удаляет одно слово
func (r *LocalRepository) DeleteWord(ctx context.Context, id string) error {
	return r.words.DeleteWord(ctx, id)
}

// DeleteWordsByProject удаляет все слова проекта
func (r *LocalRepository) DeleteWordsByProject(ctx context.Context, projectID string) error {
	return r.words.DeleteWordsByProject(ctx, projectID)
}

// buildWords строит модели слов из извлечённых записей.
// ID присваивается хранилищем при создании.
func buildWords(projectID string, entries []models.WordEntry) []*models.Word {
	now := time.Now()
	words := make([]*models.Word, 0, len(entries))
	for _, entry := range entries {
		words = append(words, &models.Word{
			ProjectID:         projectID,
			English:           entry.English,
			Japanese:          entry.Japanese,
			ExampleSentence:   entry.ExampleSentence,
			ExampleSentenceJa: entry.ExampleSentenceJa,
			Distractors:       entry.Distractors,
			Status:            models.WordStatusNew,
			CreatedAt:         now,
		})
	}
	return words
}
