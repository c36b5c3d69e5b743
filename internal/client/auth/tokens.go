package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/carlos0768/lexisync/internal/client/storage"
	pkgapi "github.com/carlos0768/lexisync/pkg/api"
)

// ErrNotAuthenticated возвращается, когда авторизованный вызов делается
// без сохранённой сессии
var ErrNotAuthenticated = errors.New("not authenticated")

// refreshLeeway запас до истечения access token, после которого токен
// обновляется превентивно
const refreshLeeway = 30 * time.Second

// Refresher минимальный срез API клиента для обновления токенов.
// Отдельный интерфейс разрывает цикл: API клиенту нужен источник токенов,
// источнику токенов нужен API клиент.
type Refresher interface {
	Refresh(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error)
}

// TokenProvider выдает access token для авторизованных вызовов,
// прозрачно обновляя его по refresh token при истечении.
// Реализует api.TokenSource.
type TokenProvider struct {
	sessions  storage.AuthStorage
	refresher Refresher

	// mu сериализует refresh: параллельные вызовы не должны сжечь
	// один refresh token дважды
	mu sync.Mutex
}

// NewTokenProvider creates a token provider over the stored session
func NewTokenProvider(sessions storage.AuthStorage) *TokenProvider {
	return &TokenProvider{sessions: sessions}
}

// SetRefresher задает клиента для обновления токенов.
// Вызывается после конструирования API клиента.
func (p *TokenProvider) SetRefresher(r Refresher) {
	p.refresher = r
}

// AccessToken возвращает действующий access token
func (p *TokenProvider) AccessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, err := p.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().Add(refreshLeeway).Unix() < session.ExpiresAt {
		return session.AccessToken, nil
	}

	if p.refresher == nil {
		return session.AccessToken, nil
	}

	resp, err := p.refresher.Refresh(ctx, pkgapi.RefreshRequest{
		RefreshToken: session.RefreshToken,
	})
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	session.AccessToken = resp.AccessToken
	session.RefreshToken = resp.RefreshToken
	session.Tier = resp.Tier
	session.ExpiresAt = time.Now().Unix() + resp.ExpiresIn

	if err := p.sessions.SaveSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to save refreshed session: %w", err)
	}

	return session.AccessToken, nil
}
