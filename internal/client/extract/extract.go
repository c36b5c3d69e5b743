package extract

import (
	"context"
	"errors"

	"github.com/carlos0768/lexisync/internal/models"
)

// ErrNoWordsFound возвращается, когда на изображении не распознано
// ни одной словарной пары
var ErrNoWordsFound = errors.New("no words found in image")

// Mode режим распознавания исходного изображения
type Mode string

const (
	// ModeAuto пайплайн сам определяет тип исходника
	ModeAuto Mode = "auto"
	// ModePrinted печатный текст (учебник, распечатка)
	ModePrinted Mode = "printed"
	// ModeHandwritten рукописные заметки
	ModeHandwritten Mode = "handwritten"
)

// Options параметры извлечения
type Options struct {
	// WithDistractors просит пайплайн сгенерировать варианты для квизов
	WithDistractors bool
	// WithExamples просит пайплайн сгенерировать примеры употребления
	WithExamples bool
	// MaxWords ограничивает размер результата; 0 — без ограничения
	MaxWords int
}

//go:generate moq -out extractor_mock.go . Extractor

// Extractor превращает изображение заметок в список словарных пар.
// Внутренности пайплайна (vision модель, промпты) скрыты за интерфейсом:
// слою данных важен только результат.
type Extractor interface {
	Extract(ctx context.Context, image []byte, mode Mode, opts Options) ([]models.WordEntry, error)
}
