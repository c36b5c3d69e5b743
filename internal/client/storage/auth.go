package storage

import "context"

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the client session
type AuthStorage interface {
	// SaveSession stores session data
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error
}

// Session represents an authenticated client session.
// Tier определяет выбор repository: active → hybrid, иначе локальный.
type Session struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Tier         string `json:"tier"`
	ExpiresAt    int64  `json:"expires_at"`
}
