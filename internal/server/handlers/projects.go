package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/internal/server/storage"
	"github.com/carlos0768/lexisync/internal/validation"
	"github.com/carlos0768/lexisync/pkg/api"
)

// ProjectHandler обрабатывает CRUD запросы проектов
type ProjectHandler struct {
	logger   *slog.Logger
	projects storage.ProjectStorage
	words    storage.WordStorage
}

// NewProjectHandler создает новый handler для проектов
func NewProjectHandler(logger *slog.Logger, projects storage.ProjectStorage, words storage.WordStorage) *ProjectHandler {
	return &ProjectHandler{
		logger:   logger,
		projects: projects,
		words:    words,
	}
}

// Create обрабатывает POST /api/v1/projects
// Создание проекта с client-generated id. Повтор того же id — 409:
// клиентская очередь трактует его как успех.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create project request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		sendError(h.logger, w, "id is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateProjectTitle(req.Title); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	project := &models.Project{
		ID:         req.ID,
		OwnerID:    userID,
		Title:      req.Title,
		IsFavorite: req.IsFavorite,
		CreatedAt:  createdAt,
	}

	if err := h.projects.CreateProject(ctx, project); err != nil {
		if errors.Is(err, storage.ErrProjectAlreadyExists) {
			h.logger.WarnContext(ctx, "project already exists", slog.String("project_id", req.ID))
			sendError(h.logger, w, "project already exists", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "project created",
		slog.String("project_id", project.ID),
		slog.String("owner_id", userID))

	sendJSON(h.logger, w, projectToAPI(project), http.StatusCreated)
}

// List обрабатывает GET /api/v1/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := h.projects.GetUserProjects(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list projects", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ProjectsResponse{
		Projects: make([]api.Project, 0, len(projects)),
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, *projectToAPI(p))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	sendJSON(h.logger, w, projectToAPI(project), http.StatusOK)
}

// Update обрабатывает PATCH /api/v1/projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	var req api.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update project request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title != nil {
		if err := validation.ValidateProjectTitle(*req.Title); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	update := models.ProjectUpdate{
		Title:      req.Title,
		IsFavorite: req.IsFavorite,
	}

	if err := h.projects.UpdateProject(ctx, project.ID, update); err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			sendError(h.logger, w, "project not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/projects/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(ctx, project.ID); err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			sendError(h.logger, w, "project not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "project deleted", slog.String("project_id", project.ID))

	w.WriteHeader(http.StatusNoContent)
}

// ListWords обрабатывает GET /api/v1/projects/{id}/words
func (h *ProjectHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	words, err := h.words.GetProjectWords(ctx, project.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list words", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, wordsResponse(words), http.StatusOK)
}

// DeleteWords обрабатывает DELETE /api/v1/projects/{id}/words
func (h *ProjectHandler) DeleteWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	deleted, err := h.words.DeleteProjectWords(ctx, project.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete project words", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "project words deleted",
		slog.String("project_id", project.ID),
		slog.Int("count", deleted))

	w.WriteHeader(http.StatusNoContent)
}

// ownedProject загружает проект из path parameter {id} и проверяет,
// что он принадлежит аутентифицированному пользователю.
// Чужой проект неотличим от несуществующего: 404, не 403.
func (h *ProjectHandler) ownedProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "project id is required", http.StatusBadRequest)
		return nil, false
	}

	project, err := h.projects.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			sendError(h.logger, w, "project not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get project", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if project.OwnerID != userID {
		sendError(h.logger, w, "project not found", http.StatusNotFound)
		return nil, false
	}

	return project, true
}

// projectToAPI конвертирует доменный проект в wire-формат
func projectToAPI(p *models.Project) *api.Project {
	return &api.Project{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		Title:      p.Title,
		ShareID:    p.ShareID,
		IsFavorite: p.IsFavorite,
		CreatedAt:  p.CreatedAt,
	}
}
