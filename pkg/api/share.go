package api

// ShareResponse ответ на генерацию публичного токена проекта
type ShareResponse struct {
	ShareID string `json:"share_id"`
}

// ImportSharedRequest запрос на импорт расшаренного проекта под нового
// владельца. Слова копируются, прогресс изучения сбрасывается.
type ImportSharedRequest struct {
	ShareID string `json:"share_id"`
}

// ImportSharedResponse ответ с созданным проектом импортёра
type ImportSharedResponse struct {
	Project Project `json:"project"`
	Words   []Word  `json:"words"`
}
