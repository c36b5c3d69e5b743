package api

import (
	"context"
	"errors"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/pkg/api"
)

// Ошибки, которые вызывающий код различает по статусу ответа сервера.
// Всё остальное трактуется как "сервер недоступен" и уходит в очередь.
var (
	// ErrNotFound сущность не найдена на сервере (404)
	ErrNotFound = errors.New("remote: not found")

	// ErrAlreadyExists сущность с таким id уже существует (409).
	// Очередь трактует это как успех для отложенного create.
	ErrAlreadyExists = errors.New("remote: already exists")

	// ErrUnauthorized токен отсутствует или истёк (401)
	ErrUnauthorized = errors.New("remote: unauthorized")
)

// TokenSource supplies the current access token for authorized calls
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the remote store operations.
// Ни одна операция не ретраит сама — retry это ответственность вызывающего
// (hybrid repository и sync queue).
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh обновляет access token по refresh token
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)

	// Logout инвалидирует refresh token на сервере
	Logout(ctx context.Context) error

	// Health проверяет доступность сервера.
	// Используется как connectivity probe.
	Health(ctx context.Context) error

	// CreateProjectWithID создает проект с client-generated id.
	// Обычного create без id у сервера нет: сервер, минтящий id сам,
	// разорвал бы соответствие локальной и серверной копий.
	CreateProjectWithID(ctx context.Context, project *models.Project) error

	// GetProjects возвращает все проекты аутентифицированного пользователя
	GetProjects(ctx context.Context) ([]*models.Project, error)

	// GetProject возвращает проект по id
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// UpdateProject применяет частичное обновление проекта
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error

	// DeleteProject удаляет проект и каскадно все его слова
	DeleteProject(ctx context.Context, id string) error

	// CreateWordsWithIDs создает батч слов с client-generated id
	CreateWordsWithIDs(ctx context.Context, projectID string, words []*models.Word) error

	// GetWords возвращает слова проекта
	GetWords(ctx context.Context, projectID string) ([]*models.Word, error)

	// GetWordsByProjects возвращает слова нескольких проектов одним запросом
	GetWordsByProjects(ctx context.Context, projectIDs []string) ([]*models.Word, error)

	// UpdateWord применяет частичное обновление слова
	UpdateWord(ctx context.Context, id string, update models.WordUpdate) error

	// DeleteWord удаляет одно слово
	DeleteWord(ctx context.Context, id string) error

	// DeleteWordsByProject удаляет все слова проекта
	DeleteWordsByProject(ctx context.Context, projectID string) error

	// GenerateShareID присваивает проекту публичный токен
	GenerateShareID(ctx context.Context, projectID string) (string, error)

	// GetProjectByShareID возвращает расшаренный проект (без авторизации)
	GetProjectByShareID(ctx context.Context, shareID string) (*models.Project, error)

	// GetWordsByShareID возвращает слова расшаренного проекта (без авторизации)
	GetWordsByShareID(ctx context.Context, shareID string) ([]*models.Word, error)

	// ImportSharedProject копирует расшаренный проект под текущего
	// пользователя, сбрасывая прогресс изучения
	ImportSharedProject(ctx context.Context, shareID string) (*models.Project, []*models.Word, error)
}
