package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/internal/server/storage"
)

const wordColumns = `id, project_id, english, japanese, example_sentence,
		example_sentence_ja, status, distractors, review, is_favorite, created_at`

// CreateWords inserts a batch of words atomically
func (s *Storage) CreateWords(ctx context.Context, words []*models.Word) error {
	if len(words) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO words (` + wordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, word := range words {
		distractors, err := marshalDistractors(word.Distractors)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, query,
			word.ID,
			word.ProjectID,
			word.English,
			word.Japanese,
			word.ExampleSentence,
			word.ExampleSentenceJa,
			string(word.Status),
			distractors,
			nullableRaw(word.Review),
			word.IsFavorite,
			word.CreatedAt,
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed: words.id") {
				return storage.ErrWordAlreadyExists
			}
			return fmt.Errorf("failed to insert word: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words: %w", err)
	}

	return nil
}

// GetWord retrieves word by id
func (s *Storage) GetWord(ctx context.Context, id string) (*models.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words WHERE id = ?`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrWordNotFound
		}
		return nil, err
	}

	return word, nil
}

// GetProjectWords retrieves all words of a project
func (s *Storage) GetProjectWords(ctx context.Context, projectID string) ([]*models.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words WHERE project_id = ? ORDER BY created_at ASC`

	return s.queryWords(ctx, query, projectID)
}

// GetWordsByProjects retrieves words of multiple projects in one call
func (s *Storage) GetWordsByProjects(ctx context.Context, projectIDs []string) ([]*models.Word, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(projectIDs)), ", ")
	query := `SELECT ` + wordColumns + ` FROM words WHERE project_id IN (` + placeholders + `) ORDER BY created_at ASC`

	args := make([]any, 0, len(projectIDs))
	for _, id := range projectIDs {
		args = append(args, id)
	}

	return s.queryWords(ctx, query, args...)
}

// UpdateWord applies a partial update
func (s *Storage) UpdateWord(ctx context.Context, id string, update models.WordUpdate) error {
	var sets []string
	var args []any

	if update.English != nil {
		sets = append(sets, "english = ?")
		args = append(args, *update.English)
	}
	if update.Japanese != nil {
		sets = append(sets, "japanese = ?")
		args = append(args, *update.Japanese)
	}
	if update.ExampleSentence != nil {
		sets = append(sets, "example_sentence = ?")
		args = append(args, *update.ExampleSentence)
	}
	if update.ExampleSentenceJa != nil {
		sets = append(sets, "example_sentence_ja = ?")
		args = append(args, *update.ExampleSentenceJa)
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	if update.Distractors != nil {
		distractors, err := marshalDistractors(*update.Distractors)
		if err != nil {
			return err
		}
		sets = append(sets, "distractors = ?")
		args = append(args, distractors)
	}
	if update.Review != nil {
		sets = append(sets, "review = ?")
		args = append(args, string(update.Review))
	}
	if update.IsFavorite != nil {
		sets = append(sets, "is_favorite = ?")
		args = append(args, *update.IsFavorite)
	}
	if len(sets) == 0 {
		_, err := s.GetWord(ctx, id)
		return err
	}

	query := "UPDATE words SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrWordNotFound
	}

	return nil
}

// DeleteWord deletes a single word
func (s *Storage) DeleteWord(ctx context.Context, id string) error {
	query := `DELETE FROM words WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrWordNotFound
	}

	return nil
}

// DeleteProjectWords deletes all words of a project
func (s *Storage) DeleteProjectWords(ctx context.Context, projectID string) (int, error) {
	query := `DELETE FROM words WHERE project_id = ?`

	result, err := s.db.ExecContext(ctx, query, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project words: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

func (s *Storage) queryWords(ctx context.Context, query string, args ...any) ([]*models.Word, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var words []*models.Word

	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return words, nil
}

// scanner покрывает и *sql.Row, и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanWord(row scanner) (*models.Word, error) {
	word := &models.Word{}
	var status string
	var distractors, review sql.NullString

	err := row.Scan(
		&word.ID,
		&word.ProjectID,
		&word.English,
		&word.Japanese,
		&word.ExampleSentence,
		&word.ExampleSentenceJa,
		&status,
		&distractors,
		&review,
		&word.IsFavorite,
		&word.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan word: %w", err)
	}

	word.Status = models.WordStatus(status)
	if distractors.Valid && distractors.String != "" {
		if err := json.Unmarshal([]byte(distractors.String), &word.Distractors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal distractors: %w", err)
		}
	}
	if review.Valid && review.String != "" {
		word.Review = json.RawMessage(review.String)
	}

	return word, nil
}

// marshalDistractors сериализует варианты ответов в JSON.
// Пустой список хранится как NULL.
func marshalDistractors(distractors []string) (any, error) {
	if len(distractors) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(distractors)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal distractors: %w", err)
	}
	return string(data), nil
}

// nullableRaw хранит пустой opaque payload как NULL
func nullableRaw(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
