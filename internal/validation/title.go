package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleLen максимальная длина названия проекта в рунах
	MaxTitleLen = 100
)

// ValidateProjectTitle проверяет название проекта.
// Название не может быть пустым (после trim) и длиннее MaxTitleLen рун.
func ValidateProjectTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("project title cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return fmt.Errorf("project title must not exceed %d characters", MaxTitleLen)
	}

	return nil
}
