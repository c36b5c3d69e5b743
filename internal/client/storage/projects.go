package storage

import (
	"context"

	"github.com/carlos0768/lexisync/internal/models"
)

//go:generate moq -out projects_mock.go . ProjectStorage

// ProjectStorage defines interface for storing projects on client
type ProjectStorage interface {
	// CreateProject stores a new project.
	// Assigns a fresh UUID when project.ID is empty, so the same call path
	// serves both locally-created and remote-originated projects.
	CreateProject(ctx context.Context, project *models.Project) error

	// GetProjects returns all projects owned by ownerID
	GetProjects(ctx context.Context, ownerID string) ([]*models.Project, error)

	// GetProject retrieves a project by ID
	// Returns ErrProjectNotFound if project doesn't exist
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// UpdateProject applies a partial update to the project
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error

	// DeleteProject removes the project and all its words in one transaction
	DeleteProject(ctx context.Context, id string) error

	// GetUnsyncedProjects returns projects not yet known to the server
	GetUnsyncedProjects(ctx context.Context, ownerID string) ([]*models.Project, error)

	// MarkProjectSynced sets the local is_synced bookkeeping flag
	MarkProjectSynced(ctx context.Context, id string) error

	// ReplaceOwnerData атомарно заменяет все проекты и слова владельца
	// на переданный набор. staleProjectIDs — id проектов, чьи слова нужно
	// удалить даже если самих проектов в новом наборе нет.
	// Используется только full-sync реконсилиацией.
	ReplaceOwnerData(ctx context.Context, ownerID string, projects []*models.Project, words []*models.Word, staleProjectIDs []string) error
}
