package repository

import (
	"context"

	"github.com/carlos0768/lexisync/internal/models"
)

//go:generate moq -out repository_mock.go . Repository

// Repository единый контракт доступа к данным для слоёв выше.
// Обе реализации (локальная и hybrid) неразличимы для вызывающего кода:
// какую использовать, решает Select по тарифу пользователя, а не caller
// через проверки типов.
type Repository interface {
	// CreateProject создает проект с client-generated id
	CreateProject(ctx context.Context, ownerID, title string) (*models.Project, error)

	// GetProjects возвращает все проекты владельца
	GetProjects(ctx context.Context, ownerID string) ([]*models.Project, error)

	// GetProject возвращает проект по id
	// Возвращает storage.ErrProjectNotFound если проекта нет
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// UpdateProject применяет частичное обновление проекта
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error

	// DeleteProject удаляет проект и каскадно все его слова
	DeleteProject(ctx context.Context, id string) error

	// CreateWords создает слова проекта из извлечённых записей
	CreateWords(ctx context.Context, projectID string, entries []models.WordEntry) ([]*models.Word, error)

	// GetWords возвращает слова проекта
	GetWords(ctx context.Context, projectID string) ([]*models.Word, error)

	// GetWord возвращает слово по id
	// Возвращает storage.ErrWordNotFound если слова нет
	GetWord(ctx context.Context, id string) (*models.Word, error)

	// UpdateWord применяет частичное обновление слова
	UpdateWord(ctx context.Context, id string, update models.WordUpdate) error

	// DeleteWord удаляет одно слово
	DeleteWord(ctx context.Context, id string) error

	// DeleteWordsByProject удаляет все слова проекта
	DeleteWordsByProject(ctx context.Context, projectID string) error
}

// Select выбирает реализацию repository по тарифу подписки.
// active → hybrid (локально + облако), всё остальное → локальная.
// Чистая функция без состояния и побочных эффектов.
func Select(tier models.SubscriptionTier, hybrid, local Repository) Repository {
	if tier == models.TierActive {
		return hybrid
	}
	return local
}
