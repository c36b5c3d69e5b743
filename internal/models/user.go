package models

import "time"

// SubscriptionTier тариф пользователя. От него зависит, какой repository
// обслуживает запросы: hybrid (active) или локальный (всё остальное).
type SubscriptionTier string

const (
	TierFree   SubscriptionTier = "free"
	TierActive SubscriptionTier = "active"
)

// User представляет зарегистрированного пользователя на сервере.
type User struct {
	CreatedAt    time.Time        `json:"created_at"`
	LastLogin    *time.Time       `json:"last_login,omitempty"`
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	PasswordHash string           `json:"-"`
	Tier         SubscriptionTier `json:"tier"`
}

// IsPro сообщает, имеет ли пользователь облачное хранилище.
func (u *User) IsPro() bool {
	return u.Tier == TierActive
}

// RefreshToken долгоживущий токен обновления сессии.
// Хранится только на сервере, access token'ы не хранятся нигде.
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
}
