package storage

import (
	"context"

	"github.com/carlos0768/lexisync/internal/models"
)

// WordStorage defines interface for word persistence
type WordStorage interface {
	// CreateWords inserts a batch of words with client-supplied ids.
	// Батч атомарен: либо вставляются все слова, либо ни одного.
	// Returns ErrWordAlreadyExists if any id is already taken
	CreateWords(ctx context.Context, words []*models.Word) error

	// GetWord retrieves word by id
	// Returns ErrWordNotFound if word doesn't exist
	GetWord(ctx context.Context, id string) (*models.Word, error)

	// GetProjectWords retrieves all words of a project
	GetProjectWords(ctx context.Context, projectID string) ([]*models.Word, error)

	// GetWordsByProjects retrieves words of multiple projects in one call
	GetWordsByProjects(ctx context.Context, projectIDs []string) ([]*models.Word, error)

	// UpdateWord applies a partial update
	// Returns ErrWordNotFound if word doesn't exist
	UpdateWord(ctx context.Context, id string, update models.WordUpdate) error

	// DeleteWord deletes a single word
	// Returns ErrWordNotFound if word doesn't exist
	DeleteWord(ctx context.Context, id string) error

	// DeleteProjectWords deletes all words of a project
	// Returns number of deleted words
	DeleteProjectWords(ctx context.Context, projectID string) (int, error)
}
