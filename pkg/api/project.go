package api

import "time"

// Project представляет проект в wire-формате
type Project struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	ShareID    *string   `json:"share_id,omitempty"`
	IsFavorite bool      `json:"is_favorite"`
}

// CreateProjectRequest запрос на создание проекта с client-generated id.
// Сервер использует переданный id как есть, чтобы локальная и серверная
// копии ссылались на одну и ту же запись.
type CreateProjectRequest struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	IsFavorite bool      `json:"is_favorite"`
}

// UpdateProjectRequest частичное обновление проекта.
// nil поле означает "не менять".
type UpdateProjectRequest struct {
	Title      *string `json:"title,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
}

// ProjectsResponse список проектов пользователя
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}
