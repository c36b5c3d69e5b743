package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/validation"
	pkgapi "github.com/carlos0768/lexisync/pkg/api"
)

// service реализует Service поверх API клиента и локального хранилища
type service struct {
	remote   clientapi.ClientAPI
	sessions storage.AuthStorage
	metadata storage.MetadataStorage
}

// NewService создает новый сервис авторизации
func NewService(remote clientapi.ClientAPI, sessions storage.AuthStorage, metadata storage.MetadataStorage) Service {
	return &service{
		remote:   remote,
		sessions: sessions,
		metadata: metadata,
	}
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.remote.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию и сохраняет сессию
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.remote.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &storage.Session{
		Username:     username,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Tier:         resp.Tier,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &LoginResult{
		UserID:    resp.UserID,
		Username:  username,
		Tier:      resp.Tier,
		ExpiresIn: resp.ExpiresIn,
	}, nil
}

// Logout выполняет выход из системы
func (s *service) Logout(ctx context.Context) error {
	// Уведомляем сервер best effort: инвалидация refresh token на сервере
	// желательна, но локальный выход от неё не зависит
	if _, err := s.sessions.GetSession(ctx); err != nil {
		slog.Debug("no session found during logout", "error", err)
	} else if err := s.remote.Logout(ctx); err != nil {
		slog.Warn("failed to logout on server", "error", err)
	}

	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	// Сброс sync-метаданных: следующий пользователь этого устройства
	// должен начать с полной реконсилиации
	if err := s.metadata.ClearLastSync(ctx); err != nil {
		return fmt.Errorf("failed to clear sync metadata: %w", err)
	}

	return nil
}

// Session возвращает сохранённую сессию
func (s *service) Session(ctx context.Context) (*storage.Session, error) {
	return s.sessions.GetSession(ctx)
}

// IsAuthenticated проверяет наличие сохранённой сессии
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
