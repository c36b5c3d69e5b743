package auth

import (
	"context"

	"github.com/carlos0768/lexisync/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the client-side authentication operations.
// Управляет и аутентификацией (register/login), и хранением сессии.
type Service interface {
	// Register регистрирует нового пользователя на сервере.
	// Сессию не создает: за токенами следует Login.
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию локально
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout удаляет локальную сессию и sync-метаданные.
	// Сервер уведомляется best effort: недоступность сервера не мешает
	// локальному выходу.
	Logout(ctx context.Context) error

	// Session возвращает сохранённую сессию.
	// Возвращает storage.ErrSessionNotFound, если сессии нет.
	Session(ctx context.Context) (*storage.Session, error)

	// IsAuthenticated проверяет наличие сохранённой сессии
	IsAuthenticated(ctx context.Context) (bool, error)
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	UserID    string
	Username  string
	Tier      string // тариф подписки, определяет выбор repository
	ExpiresIn int64  // время жизни access token в секундах
}
