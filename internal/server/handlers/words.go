package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/internal/server/storage"
	"github.com/carlos0768/lexisync/pkg/api"
)

// WordHandler обрабатывает запросы слов
type WordHandler struct {
	logger   *slog.Logger
	projects storage.ProjectStorage
	words    storage.WordStorage
}

// NewWordHandler создает новый handler для слов
func NewWordHandler(logger *slog.Logger, projects storage.ProjectStorage, words storage.WordStorage) *WordHandler {
	return &WordHandler{
		logger:   logger,
		projects: projects,
		words:    words,
	}
}

// Create обрабатывает POST /api/v1/words
// Батчевое создание слов с client-generated id в одном проекте
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create words request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ProjectID == "" {
		sendError(h.logger, w, "project_id is required", http.StatusBadRequest)
		return
	}
	if len(req.Words) == 0 {
		sendError(h.logger, w, "words are required", http.StatusBadRequest)
		return
	}

	if !h.checkProjectOwner(ctx, w, req.ProjectID, userID) {
		return
	}

	words := make([]*models.Word, 0, len(req.Words))
	for _, apiWord := range req.Words {
		if apiWord.ID == "" {
			sendError(h.logger, w, "word id is required", http.StatusBadRequest)
			return
		}

		word := wordFromAPI(&apiWord)
		// Слова всегда живут в проекте из запроса
		word.ProjectID = req.ProjectID
		if word.Status == "" {
			word.Status = models.WordStatusNew
		}
		if word.CreatedAt.IsZero() {
			word.CreatedAt = time.Now()
		}
		words = append(words, word)
	}

	if err := h.words.CreateWords(ctx, words); err != nil {
		if errors.Is(err, storage.ErrWordAlreadyExists) {
			h.logger.WarnContext(ctx, "words already exist", slog.String("project_id", req.ProjectID))
			sendError(h.logger, w, "word already exists", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create words", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "words created",
		slog.String("project_id", req.ProjectID),
		slog.Int("count", len(words)))

	sendJSON(h.logger, w, wordsResponse(words), http.StatusCreated)
}

// Query обрабатывает POST /api/v1/words/query
// Батчевый запрос слов нескольких проектов (используется full sync).
// Чужие проекты молча отфильтровываются.
func (h *WordHandler) Query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.WordsByProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode words query", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	owned := make([]string, 0, len(req.ProjectIDs))
	for _, projectID := range req.ProjectIDs {
		project, err := h.projects.GetProject(ctx, projectID)
		if err != nil {
			if errors.Is(err, storage.ErrProjectNotFound) {
				continue
			}
			h.logger.ErrorContext(ctx, "failed to get project", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		if project.OwnerID == userID {
			owned = append(owned, projectID)
		}
	}

	words, err := h.words.GetWordsByProjects(ctx, owned)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to query words", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, wordsResponse(words), http.StatusOK)
}

// Update обрабатывает PATCH /api/v1/words/{id}
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	word, ok := h.ownedWord(w, r)
	if !ok {
		return
	}

	var req api.UpdateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update word request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	update := models.WordUpdate{
		English:           req.English,
		Japanese:          req.Japanese,
		ExampleSentence:   req.ExampleSentence,
		ExampleSentenceJa: req.ExampleSentenceJa,
		Status:            (*models.WordStatus)(req.Status),
		Distractors:       req.Distractors,
		Review:            req.Review,
		IsFavorite:        req.IsFavorite,
	}

	if err := h.words.UpdateWord(ctx, word.ID, update); err != nil {
		if errors.Is(err, storage.ErrWordNotFound) {
			sendError(h.logger, w, "word not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update word", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/words/{id}
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	word, ok := h.ownedWord(w, r)
	if !ok {
		return
	}

	if err := h.words.DeleteWord(ctx, word.ID); err != nil {
		if errors.Is(err, storage.ErrWordNotFound) {
			sendError(h.logger, w, "word not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete word", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownedWord загружает слово из path parameter {id} и проверяет владение
// через проект. Чужое слово неотличимо от несуществующего: 404.
func (h *WordHandler) ownedWord(w http.ResponseWriter, r *http.Request) (*models.Word, bool) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "word id is required", http.StatusBadRequest)
		return nil, false
	}

	word, err := h.words.GetWord(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrWordNotFound) {
			sendError(h.logger, w, "word not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get word", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if !h.checkProjectOwner(ctx, w, word.ProjectID, userID) {
		return nil, false
	}

	return word, true
}

// checkProjectOwner проверяет, что проект существует и принадлежит userID
func (h *WordHandler) checkProjectOwner(ctx context.Context, w http.ResponseWriter, projectID, userID string) bool {
	project, err := h.projects.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			sendError(h.logger, w, "project not found", http.StatusNotFound)
			return false
		}
		h.logger.ErrorContext(ctx, "failed to get project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return false
	}
	if project.OwnerID != userID {
		sendError(h.logger, w, "project not found", http.StatusNotFound)
		return false
	}
	return true
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

// wordToAPI конвертирует доменное слово в wire-формат
func wordToAPI(w *models.Word) api.Word {
	return api.Word{
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

// wordsResponse собирает wire-ответ из доменных слов
func wordsResponse(words []*models.Word) api.WordsResponse {
	resp := api.WordsResponse{
		Words: make([]api.Word, 0, len(words)),
	}
	for _, w := range words {
		resp.Words = append(resp.Words, wordToAPI(w))
	}
	return resp
}
