package storage

import (
	"context"

	"github.com/carlos0768/lexisync/internal/models"
)

// ProjectStorage defines interface for project persistence.
// id генерируется клиентом: сервер хранит то, что прислали, и отвечает
// ErrProjectAlreadyExists на повторный create того же id.
type ProjectStorage interface {
	// CreateProject creates a project with the client-supplied id
	// Returns ErrProjectAlreadyExists if the id is already taken
	CreateProject(ctx context.Context, project *models.Project) error

	// GetProject retrieves project by id
	// Returns ErrProjectNotFound if project doesn't exist
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// GetUserProjects retrieves all projects of an owner
	GetUserProjects(ctx context.Context, ownerID string) ([]*models.Project, error)

	// UpdateProject applies a partial update
	// Returns ErrProjectNotFound if project doesn't exist
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error

	// DeleteProject deletes project and cascades to its words
	// Returns ErrProjectNotFound if project doesn't exist
	DeleteProject(ctx context.Context, id string) error

	// SetShareID assigns a public share token to the project
	SetShareID(ctx context.Context, projectID, shareID string) error

	// GetProjectByShareID retrieves a shared project by its public token
	// Returns ErrProjectNotFound if no project carries this token
	GetProjectByShareID(ctx context.Context, shareID string) (*models.Project, error)
}
