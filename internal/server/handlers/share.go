package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/internal/server/storage"
	"github.com/carlos0768/lexisync/pkg/api"
)

// ShareHandler обрабатывает публикацию и импорт проектов
type ShareHandler struct {
	logger   *slog.Logger
	projects storage.ProjectStorage
	words    storage.WordStorage
}

// NewShareHandler создает новый handler для share-ссылок
func NewShareHandler(logger *slog.Logger, projects storage.ProjectStorage, words storage.WordStorage) *ShareHandler {
	return &ShareHandler{
		logger:   logger,
		projects: projects,
		words:    words,
	}
}

// Generate обрабатывает POST /api/v1/projects/{id}/share
// Генерирует публичный токен проекта. Повторный вызов возвращает
// уже существующий токен, не инвалидируя ранее розданные ссылки.
func (h *ShareHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	projectID := r.PathValue("id")
	if projectID == "" {
		sendError(h.logger, w, "project id is required", http.StatusBadRequest)
		return
	}

	project, err := h.projects.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			sendError(h.logger, w, "project not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	// Чужой проект неотличим от несуществующего: 404, не 403
	if project.OwnerID != userID {
		sendError(h.logger, w, "project not found", http.StatusNotFound)
		return
	}

	if project.ShareID != nil {
		sendJSON(h.logger, w, api.ShareResponse{ShareID: *project.ShareID}, http.StatusOK)
		return
	}

	shareID := uuid.New().String()
	if err := h.projects.SetShareID(ctx, projectID, shareID); err != nil {
		h.logger.ErrorContext(ctx, "failed to set share id", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "share link generated", slog.String("project_id", projectID))

	sendJSON(h.logger, w, api.ShareResponse{ShareID: shareID}, http.StatusOK)
}

// Get обрабатывает GET /api/v1/share/{shareID}
// Публичный endpoint: auth не требуется, токен в пути и есть авторизация.
func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.sharedProject(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(ctx, "shared project viewed", slog.String("project_id", project.ID))

	sendJSON(h.logger, w, projectToAPI(project), http.StatusOK)
}

// GetWords обрабатывает GET /api/v1/share/{shareID}/words
// Публичный endpoint
func (h *ShareHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.sharedProject(w, r)
	if !ok {
		return
	}

	words, err := h.words.GetProjectWords(ctx, project.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get shared words", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, wordsResponse(words), http.StatusOK)
}

// Import обрабатывает POST /api/v1/share/import
// Копирует расшаренный проект и его слова под вызывающего пользователя.
// Копия получает свежие id, прогресс изучения сбрасывается.
func (h *ShareHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ImportSharedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode import request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ShareID == "" {
		sendError(h.logger, w, "share_id is required", http.StatusBadRequest)
		return
	}

	source, err := h.projects.GetProjectByShareID(ctx, req.ShareID)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			sendError(h.logger, w, "shared project not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get shared project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sourceWords, err := h.words.GetProjectWords(ctx, source.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get source words", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	copyProject := &models.Project{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Title:     source.Title,
		CreatedAt: now,
	}

	if err := h.projects.CreateProject(ctx, copyProject); err != nil {
		h.logger.ErrorContext(ctx, "failed to create imported project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	copyWords := make([]*models.Word, 0, len(sourceWords))
	for _, src := range sourceWords {
		copyWords = append(copyWords, &models.Word{
			ID:                uuid.New().String(),
			ProjectID:         copyProject.ID,
			English:           src.English,
			Japanese:          src.Japanese,
			ExampleSentence:   src.ExampleSentence,
			ExampleSentenceJa: src.ExampleSentenceJa,
			// Импортёр начинает изучение с нуля: статус new, review сброшен
			Status:      models.WordStatusNew,
			Distractors: src.Distractors,
			CreatedAt:   now,
		})
	}

	if len(copyWords) > 0 {
		if err := h.words.CreateWords(ctx, copyWords); err != nil {
			h.logger.ErrorContext(ctx, "failed to copy words", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	h.logger.InfoContext(ctx, "shared project imported",
		slog.String("source_project_id", source.ID),
		slog.String("project_id", copyProject.ID),
		slog.Int("words", len(copyWords)))

	resp := api.ImportSharedResponse{
		Project: *projectToAPI(copyProject),
		Words:   wordsResponse(copyWords).Words,
	}
	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// sharedProject загружает проект по публичному токену из path parameter
func (h *ShareHandler) sharedProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	ctx := r.Context()

	shareID := r.PathValue("shareID")
	if shareID == "" {
		sendError(h.logger, w, "share id is required", http.StatusBadRequest)
		return nil, false
	}

	project, err := h.projects.GetProjectByShareID(ctx, shareID)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			sendError(h.logger, w, "shared project not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get shared project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return project, true
}
