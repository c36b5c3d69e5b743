package storage

import (
	"context"

	"github.com/carlos0768/lexisync/internal/models"
)

//go:generate moq -out words_mock.go . WordStorage

// WordStorage defines interface for storing words on client
type WordStorage interface {
	// CreateWords stores a batch of words.
	// Assigns fresh UUIDs to words with an empty ID.
	CreateWords(ctx context.Context, words []*models.Word) error

	// GetWords returns all words of a project
	GetWords(ctx context.Context, projectID string) ([]*models.Word, error)

	// GetWord retrieves a word by ID
	// Returns ErrWordNotFound if word doesn't exist
	GetWord(ctx context.Context, id string) (*models.Word, error)

	// GetWordsByProjects returns words of all listed projects in one pass
	GetWordsByProjects(ctx context.Context, projectIDs []string) ([]*models.Word, error)

	// UpdateWord applies a partial update to the word
	UpdateWord(ctx context.Context, id string, update models.WordUpdate) error

	// DeleteWord removes a single word
	DeleteWord(ctx context.Context, id string) error

	// DeleteWordsByProject removes all words of a project
	DeleteWordsByProject(ctx context.Context, projectID string) error
}
