package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/carlos0768/lexisync/internal/client/extract"
	"github.com/carlos0768/lexisync/internal/client/repository"
	"github.com/carlos0768/lexisync/internal/models"
)

// Service определяет интерфейс клиентского data сервиса: импорт
// отсканированных заметок и ручной ввод слов поверх выбранного repository.
type Service interface {
	// ImportScan извлекает слова из изображения и сохраняет их в проект.
	// Возвращает созданные слова.
	ImportScan(ctx context.Context, projectID string, image []byte, mode extract.Mode, opts extract.Options) ([]*models.Word, error)

	// AddWords сохраняет вручную введённые записи в проект
	AddWords(ctx context.Context, projectID string, entries []models.WordEntry) ([]*models.Word, error)
}

// service handles client-side import operations
type service struct {
	extractor extract.Extractor
	repo      repository.Repository
}

// NewService creates a new data service over the selected repository
func NewService(extractor extract.Extractor, repo repository.Repository) Service {
	return &service{
		extractor: extractor,
		repo:      repo,
	}
}

// ImportScan извлекает слова из изображения и сохраняет их
func (s *service) ImportScan(ctx context.Context, projectID string, image []byte, mode extract.Mode, opts extract.Options) ([]*models.Word, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("empty image")
	}

	// Проект должен существовать до дорогого вызова извлечения
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	entries, err := s.extractor.Extract(ctx, image, mode, opts)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	entries = sanitize(entries)
	if len(entries) == 0 {
		return nil, extract.ErrNoWordsFound
	}

	words, err := s.repo.CreateWords(ctx, projectID, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to save extracted words: %w", err)
	}

	return words, nil
}

// AddWords сохраняет вручную введённые записи
func (s *service) AddWords(ctx context.Context, projectID string, entries []models.WordEntry) ([]*models.Word, error) {
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	entries = sanitize(entries)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid entries")
	}

	words, err := s.repo.CreateWords(ctx, projectID, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to save words: %w", err)
	}

	return words, nil
}

// sanitize отбрасывает записи без обеих сторон пары и обрезает пробелы.
// Пайплайн извлечения иногда возвращает мусорные строки с пустым переводом.
func sanitize(entries []models.WordEntry) []models.WordEntry {
	result := make([]models.WordEntry, 0, len(entries))
	for _, e := range entries {
		e.English = strings.TrimSpace(e.English)
		e.Japanese = strings.TrimSpace(e.Japanese)
		if e.English == "" || e.Japanese == "" {
			continue
		}
		result = append(result, e)
	}
	return result
}
