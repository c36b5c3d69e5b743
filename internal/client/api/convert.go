package api

import (
	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/pkg/api"
)

// projectFromAPI конвертирует wire-проект в доменную модель.
// Записи с сервера по определению синхронизированы.
func projectFromAPI(p *api.Project) *models.Project {
	return &models.Project{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		Title:      p.Title,
		ShareID:    p.ShareID,
		IsFavorite: p.IsFavorite,
		IsSynced:   true,
		CreatedAt:  p.CreatedAt,
	}
}

// wordToAPI конвертирует доменное слово в wire-формат
func wordToAPI(w *models.Word) *api.Word {
	return &api.Word{
		ID:                w.ID,
		ProjectID:         w.ProjectID,
		English:           w.English,
		Japanese:          w.Japanese,
		ExampleSentence:   w.ExampleSentence,
		ExampleSentenceJa: w.ExampleSentenceJa,
		Status:            string(w.Status),
		Distractors:       w.Distractors,
		Review:            w.Review,
		IsFavorite:        w.IsFavorite,
		CreatedAt:         w.CreatedAt,
	}
}

// wordFromAPI конвертирует wire-слово в доменную модель
func wordFromAPI(w *api.Word) *models.Word {
	return &models.Word{
		ID:                w.ID,
		ProjectID:         w.ProjectID,
		English:           w.English,
		Japanese:          w.Japanese,
		ExampleSentence:   w.ExampleSentence,
		ExampleSentenceJa: w.ExampleSentenceJa,
		Status:            models.WordStatus(w.Status),
		Distractors:       w.Distractors,
		Review:            w.Review,
		IsFavorite:        w.IsFavorite,
		CreatedAt:         w.CreatedAt,
	}
}

func wordsFromAPI(ws []api.Word) []*models.Word {
	words := make([]*models.Word, 0, len(ws))
	for i := range ws {
		words = append(words, wordFromAPI(&ws[i]))
	}
	return words
}
