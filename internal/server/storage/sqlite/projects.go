package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/internal/server/storage"
)

// CreateProject creates a project with the client-supplied id
func (s *Storage) CreateProject(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, owner_id, title, share_id, is_favorite, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.OwnerID,
		project.Title,
		project.ShareID,
		project.IsFavorite,
		project.CreatedAt,
	)

	if err != nil {
		// Повторный create того же client-generated id
		if strings.Contains(err.Error(), "UNIQUE constraint failed: projects.id") {
			return storage.ErrProjectAlreadyExists
		}
		return fmt.Errorf("failed to insert project: %w", err)
	}

	return nil
}

// GetProject retrieves project by id
func (s *Storage) GetProject(ctx context.Context, id string) (*models.Project, error) {
	query := `
		SELECT id, owner_id, title, share_id, is_favorite, created_at
		FROM projects
		WHERE id = ?
	`

	return s.scanProject(s.db.QueryRowContext(ctx, query, id))
}

// GetUserProjects retrieves all projects of an owner
func (s *Storage) GetUserProjects(ctx context.Context, ownerID string) ([]*models.Project, error) {
	query := `
		SELECT id, owner_id, title, share_id, is_favorite, created_at
		FROM projects
		WHERE owner_id = ?
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var projects []*models.Project

	for rows.Next() {
		project := &models.Project{}
		var shareID sql.NullString

		if err := rows.Scan(
			&project.ID,
			&project.OwnerID,
			&project.Title,
			&shareID,
			&project.IsFavorite,
			&project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if shareID.Valid {
			project.ShareID = &shareID.String
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

// UpdateProject applies a partial update
func (s *Storage) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error {
	var sets []string
	var args []any

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.IsFavorite != nil {
		sets = append(sets, "is_favorite = ?")
		args = append(args, *update.IsFavorite)
	}
	if update.ShareID != nil {
		sets = append(sets, "share_id = ?")
		args = append(args, *update.ShareID)
	}
	if len(sets) == 0 {
		// Пустое обновление: проверяем только существование
		_, err := s.GetProject(ctx, id)
		return err
	}

	query := "UPDATE projects SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrProjectNotFound
	}

	return nil
}

// DeleteProject deletes project; words go with it via ON DELETE CASCADE
func (s *Storage) DeleteProject(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrProjectNotFound
	}

	return nil
}

// SetShareID assigns a public share token to the project
func (s *Storage) SetShareID(ctx context.Context, projectID, shareID string) error {
	query := `UPDATE projects SET share_id = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, shareID, projectID)
	if err != nil {
		return fmt.Errorf("failed to set share id: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrProjectNotFound
	}

	return nil
}

// GetProjectByShareID retrieves a shared project by its public token
func (s *Storage) GetProjectByShareID(ctx context.Context, shareID string) (*models.Project, error) {
	query := `
		SELECT id, owner_id, title, share_id, is_favorite, created_at
		FROM projects
		WHERE share_id = ?
	`

	return s.scanProject(s.db.QueryRowContext(ctx, query, shareID))
}

func (s *Storage) scanProject(row *sql.Row) (*models.Project, error) {
	project := &models.Project{}
	var shareID sql.NullString

	err := row.Scan(
		&project.ID,
		&project.OwnerID,
		&project.Title,
		&shareID,
		&project.IsFavorite,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if shareID.Valid {
		project.ShareID = &shareID.String
	}

	return project, nil
}
