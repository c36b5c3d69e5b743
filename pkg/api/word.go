package api

import (
	"encoding/json"
	"time"
)

// Word представляет слово в wire-формате
type Word struct {
	CreatedAt         time.Time       `json:"created_at"`
	ID                string          `json:"id"`
	ProjectID         string          `json:"project_id"`
	English           string          `json:"english"`
	Japanese          string          `json:"japanese"`
	ExampleSentence   string          `json:"example_sentence,omitempty"`
	ExampleSentenceJa string          `json:"example_sentence_ja,omitempty"`
	Status            string          `json:"status"`
	Distractors       []string        `json:"distractors,omitempty"`
	Review            json.RawMessage `json:"review,omitempty"`
	IsFavorite        bool            `json:"is_favorite"`
}

// CreateWordsRequest батчевое создание слов с client-generated id.
// Все слова принадлежат одному проекту.
type CreateWordsRequest struct {
	ProjectID string `json:"project_id"`
	Words     []Word `json:"words"`
}

// UpdateWordRequest частичное обновление слова.
// nil поле означает "не менять".
type UpdateWordRequest struct {
	English           *string         `json:"english,omitempty"`
	Japanese          *string         `json:"japanese,omitempty"`
	ExampleSentence   *string         `json:"example_sentence,omitempty"`
	ExampleSentenceJa *string         `json:"example_sentence_ja,omitempty"`
	Status            *string         `json:"status,omitempty"`
	Distractors       *[]string       `json:"distractors,omitempty"`
	Review            json.RawMessage `json:"review,omitempty"`
	IsFavorite        *bool           `json:"is_favorite,omitempty"`
}

// WordsResponse список слов
type WordsResponse struct {
	Words []Word `json:"words"`
}

// WordsByProjectsRequest батчевый запрос слов нескольких проектов одним
// вызовом (используется full sync, чтобы не делать запрос на проект).
type WordsByProjectsRequest struct {
	ProjectIDs []string `json:"project_ids"`
}
