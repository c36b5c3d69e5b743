package models

import "time"

// Project представляет одну тетрадь со словами, принадлежащую одному
// пользователю (или одной анонимной identity до регистрации).
type Project struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`       // UUID, генерируется клиентом
	OwnerID    string    `json:"owner_id"` // владелец (user id или guest id)
	Title      string    `json:"title"`
	ShareID    *string   `json:"share_id,omitempty"` // публичный токен, nil пока не сгенерирован
	IsFavorite bool      `json:"is_favorite"`
	// IsSynced локальный bookkeeping флаг: true когда запись известна серверу.
	// Не имеет смысла для записей, прочитанных с сервера.
	IsSynced bool `json:"is_synced"`
}

// ProjectUpdate описывает частичное обновление проекта.
// nil поле означает "не менять".
type ProjectUpdate struct {
	Title      *string `json:"title,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
	ShareID    *string `json:"share_id,omitempty"`
	IsSynced   *bool   `json:"is_synced,omitempty"`
}

// Apply накладывает ненулевые поля обновления на проект.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.IsFavorite != nil {
		p.IsFavorite = *u.IsFavorite
	}
	if u.ShareID != nil {
		p.ShareID = u.ShareID
	}
	if u.IsSynced != nil {
		p.IsSynced = *u.IsSynced
	}
}
