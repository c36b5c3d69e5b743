package models

import (
	"encoding/json"
	"time"
)

// SyncOperation тип отложенной мутации.
type SyncOperation string

const (
	SyncOpCreate SyncOperation = "create"
	SyncOpUpdate SyncOperation = "update"
	SyncOpDelete SyncOperation = "delete"
)

// SyncTable таблица, к которой относится отложенная мутация.
type SyncTable string

const (
	SyncTableProjects SyncTable = "projects"
	SyncTableWords    SyncTable = "words"
)

// SyncQueueItem одна отложенная мутация, которую не удалось применить
// к серверу сразу. Хранится локально до успешного применения.
type SyncQueueItem struct {
	CreatedAt time.Time     `json:"created_at"`
	Operation SyncOperation `json:"operation"`
	Table     SyncTable     `json:"table"`
	// EntityID id сущности; для батчевого create слов это id проекта.
	EntityID string `json:"entity_id"`
	// Data payload операции: полная сущность для create,
	// частичное обновление для update, идентификаторы для delete.
	Data       json.RawMessage `json:"data"`
	ID         uint64          `json:"id"` // sequence number, присваивается очередью
	RetryCount int             `json:"retry_count"`
}

// UpdatePayload payload для операции update: id сущности плюс
// частичные изменения в формате соответствующего Update типа.
type UpdatePayload struct {
	ID      string          `json:"id"`
	Updates json.RawMessage `json:"updates"`
}

// DeletePayload payload для операции delete. Для words заполняется либо
// ID (одно слово), либо ProjectID (все слова проекта).
type DeletePayload struct {
	ID        string `json:"id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// CreateWordsPayload payload для батчевого create слов одного проекта.
type CreateWordsPayload struct {
	ProjectID string  `json:"project_id"`
	Words     []*Word `json:"words"`
}
