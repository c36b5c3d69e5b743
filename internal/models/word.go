package models

import (
	"encoding/json"
	"time"
)

// WordStatus статус изучения слова. Управляется логикой spaced repetition,
// слой синхронизации переносит его как есть.
type WordStatus string

const (
	WordStatusNew       WordStatus = "new"
	WordStatusReviewing WordStatus = "reviewing"
	WordStatusMastered  WordStatus = "mastered"
)

// Word представляет одно слово в проекте.
type Word struct {
	CreatedAt         time.Time  `json:"created_at"`
	ID                string     `json:"id"`         // UUID, генерируется клиентом
	ProjectID         string     `json:"project_id"` // обязательный foreign key
	English           string     `json:"english"`
	Japanese          string     `json:"japanese"`
	ExampleSentence   string     `json:"example_sentence,omitempty"`
	ExampleSentenceJa string     `json:"example_sentence_ja,omitempty"`
	Status            WordStatus `json:"status"`
	Distractors       []string   `json:"distractors,omitempty"`
	// Review непрозрачный payload планировщика повторений (интервалы, сроки).
	// Слой синхронизации не интерпретирует его.
	Review     json.RawMessage `json:"review,omitempty"`
	IsFavorite bool            `json:"is_favorite"`
}

// WordUpdate описывает частичное обновление слова.
// nil поле означает "не менять".
type WordUpdate struct {
	English           *string         `json:"english,omitempty"`
	Japanese          *string         `json:"japanese,omitempty"`
	ExampleSentence   *string         `json:"example_sentence,omitempty"`
	ExampleSentenceJa *string         `json:"example_sentence_ja,omitempty"`
	Status            *WordStatus     `json:"status,omitempty"`
	Distractors       *[]string       `json:"distractors,omitempty"`
	Review            json.RawMessage `json:"review,omitempty"`
	IsFavorite        *bool           `json:"is_favorite,omitempty"`
}

// Apply накладывает ненулевые поля обновления на слово.
func (u WordUpdate) Apply(w *Word) {
	if u.English != nil {
		w.English = *u.English
	}
	if u.Japanese != nil {
		w.Japanese = *u.Japanese
	}
	if u.ExampleSentence != nil {
		w.ExampleSentence = *u.ExampleSentence
	}
	if u.ExampleSentenceJa != nil {
		w.ExampleSentenceJa = *u.ExampleSentenceJa
	}
	if u.Status != nil {
		w.Status = *u.Status
	}
	if u.Distractors != nil {
		w.Distractors = *u.Distractors
	}
	if u.Review != nil {
		w.Review = u.Review
	}
	if u.IsFavorite != nil {
		w.IsFavorite = *u.IsFavorite
	}
}

// WordEntry одно извлечённое слово до сохранения (результат сканирования
// или ручной ввод). ID и ProjectID присваиваются при создании.
type WordEntry struct {
	English           string   `json:"english"`
	Japanese          string   `json:"japanese"`
	ExampleSentence   string   `json:"example_sentence,omitempty"`
	ExampleSentenceJa string   `json:"example_sentence_ja,omitempty"`
	Distractors       []string `json:"distractors,omitempty"`
}
