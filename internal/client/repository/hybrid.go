package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/connectivity"
	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

// HybridRepository обслуживает pro-тариф: каждая запись сначала применяется
// локально (это и есть видимый пользователю результат), затем, если сеть
// доступна, та же мутация с тем же id уходит на сервер. Если сервер
// недоступен или вернул ошибку, мутация ложится в durable очередь — с точки
// зрения вызывающего кода запись всегда "успешна", как только успешна
// локально. Чтения обслуживаются только из локального хранилища и никогда
// не ждут сеть.
type HybridRepository struct {
	projects storage.ProjectStorage
	words    storage.WordStorage
	queue    storage.QueueStorage
	remote   clientapi.ClientAPI
	online   connectivity.Checker
	logger   *slog.Logger
}

// NewHybridRepository creates a dual-write repository for pro users
func NewHybridRepository(
	projects storage.ProjectStorage,
	words storage.WordStorage,
	queue storage.QueueStorage,
	remote clientapi.ClientAPI,
	online connectivity.Checker,
	logger *slog.Logger,
) *HybridRepository {
	return &HybridRepository{
		projects: projects,
		words:    words,
		queue:    queue,
		remote:   remote,
		online:   online,
		logger:   logger,
	}
}

// CreateProject создает проект локально и реплицирует его на сервер
// с тем же id
func (r *HybridRepository) CreateProject(ctx context.Context, ownerID, title string) (*models.Project, error) {
	project := &models.Project{
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: time.Now(),
	}

	// Локальная запись всегда первая и безусловная
	if err := r.projects.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if r.online.Online(ctx) {
		// id-preserving вариант: обычный create сминтил бы новый id
		// и разорвал соответствие копий
		if err := r.remote.CreateProjectWithID(ctx, project); err != nil {
			r.logger.Warn("remote create project failed, queueing",
				"project_id", project.ID, "error", err)
			r.enqueue(ctx, models.SyncOpCreate, models.SyncTableProjects, project.ID, project)
		} else {
			r.markSynced(ctx, project.ID)
		}
	} else {
		r.enqueue(ctx, models.SyncOpCreate, models.SyncTableProjects, project.ID, project)
	}

	return project, nil
}

// GetProjects возвращает проекты из локального хранилища
func (r *HybridRepository) GetProjects(ctx context.Context, ownerID string) ([]*models.Project, error) {
	return r.projects.GetProjects(ctx, ownerID)
}

// GetProject возвращает проект из локального хранилища
func (r *HybridRepository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return r.projects.GetProject(ctx, id)
}

// UpdateProject применяет обновление локально и реплицирует его на сервер
func (r *HybridRepository) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error {
	if err := r.projects.UpdateProject(ctx, id, update); err != nil {
		return err
	}

	if r.online.Online(ctx) {
		if err := r.remote.UpdateProject(ctx, id, update); err != nil {
			r.logger.Warn("remote update project failed, queueing",
				"project_id", id, "error", err)
			r.enqueueUpdate(ctx, models.SyncTableProjects, id, update)
		}
	} else {
		r.enqueueUpdate(ctx, models.SyncTableProjects, id, update)
	}

	return nil
}

// DeleteProject удаляет проект локально (каскадно со словами)
// и реплицирует удаление на сервер
func (r *HybridRepository) DeleteProject(ctx context.Context, id string) error {
	if err := r.projects.DeleteProject(ctx, id); err != nil {
		return err
	}

	if r.online.Online(ctx) {
		if err := r.remote.DeleteProject(ctx, id); err != nil {
			r.logger.Warn("remote delete project failed, queueing",
				"project_id", id, "error", err)
			r.enqueue(ctx, models.SyncOpDelete, models.SyncTableProjects, id, models.DeletePayload{ID: id})
		}
	} else {
		r.enqueue(ctx, models.SyncOpDelete, models.SyncTableProjects, id, models.DeletePayload{ID: id})
	}

	return nil
}

// CreateWords создает слова локально и реплицирует их на сервер одним батчем
func (r *HybridRepository) CreateWords(ctx context.Context, projectID string, entries []models.WordEntry) ([]*models.Word, error) {
	words := buildWords(projectID, entries)

	if err := r.words.CreateWords(ctx, words); err != nil {
		return nil, fmt.Errorf("failed to create words: %w", err)
	}

	payload := models.CreateWordsPayload{ProjectID: projectID, Words: words}

	if r.online.Online(ctx) {
		if err := r.remote.CreateWordsWithIDs(ctx, projectID, words); err != nil {
			r.logger.Warn("remote create words failed, queueing",
				"project_id", projectID, "count", len(words), "error", err)
			r.enqueue(ctx, models.SyncOpCreate, models.SyncTableWords, projectID, payload)
		}
	} else {
		r.enqueue(ctx, models.SyncOpCreate, models.SyncTableWords, projectID, payload)
	}

	return words, nil
}

// GetWords возвращает слова из локального хранилища
func (r *HybridRepository) GetWords(ctx context.Context, projectID string) ([]*models.Word, error) {
	return r.words.GetWords(ctx, projectID)
}

// GetWord возвращает слово из локального хранилища
func (r *HybridRepository) GetWord(ctx context.Context, id string) (*models.Word, error) {
	return r.words.GetWord(ctx, id)
}

// UpdateWord применяет обновление локально и реплицирует его на сервер
func (r *HybridRepository) UpdateWord(ctx context.Context, id string, update models.WordUpdate) error {
	if err := r.words.UpdateWord(ctx, id, update); err != nil {
		return err
	}

	if r.online.Online(ctx) {
		if err := r.remote.UpdateWord(ctx, id, update); err != nil {
			r.logger.Warn("remote update word failed, queueing",
				"word_id", id, "error", err)
			r.enqueueUpdate(ctx, models.SyncTableWords, id, update)
		}
	} else {
		r.enqueueUpdate(ctx, models.SyncTableWords, id, update)
	}

	return nil
}

// DeleteWord удаляет слово локально и реплицирует удаление на сервер
func (r *HybridRepository) DeleteWord(ctx context.Context, id string) error {
	if err := r.words.DeleteWord(ctx, id); err != nil {
		return err
	}

	if r.online.Online(ctx) {
		if err := r.remote.DeleteWord(ctx, id); err != nil {
			r.logger.Warn("remote delete word failed, queueing",
				"word_id", id, "error", err)
			r.enqueue(ctx, models.SyncOpDelete, models.SyncTableWords, id, models.DeletePayload{ID: id})
		}
	} else {
		r.enqueue(ctx, models.SyncOpDelete, models.SyncTableWords, id, models.DeletePayload{ID: id})
	}

	return nil
}

// DeleteWordsByProject удаляет слова проекта локально и на сервере
func (r *HybridRepository) DeleteWordsByProject(ctx context.Context, projectID string) error {
	if err := r.words.DeleteWordsByProject(ctx, projectID); err != nil {
		return err
	}

	payload := models.DeletePayload{ProjectID: projectID}

	if r.online.Online(ctx) {
		if err := r.remote.DeleteWordsByProject(ctx, projectID); err != nil {
			r.logger.Warn("remote delete words failed, queueing",
				"project_id", projectID, "error", err)
			r.enqueue(ctx, models.SyncOpDelete, models.SyncTableWords, projectID, payload)
		}
	} else {
		r.enqueue(ctx, models.SyncOpDelete, models.SyncTableWords, projectID, payload)
	}

	return nil
}

// enqueue кладёт мутацию в очередь. Ошибка очереди логируется, но не
// пробрасывается: локальная запись уже успешна, и это единственное,
// что видит вызывающий код.
func (r *HybridRepository) enqueue(ctx context.Context, op models.SyncOperation, table models.SyncTable, entityID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error("failed to marshal queue payload",
			"operation", op, "table", table, "entity_id", entityID, "error", err)
		return
	}

	item := &models.SyncQueueItem{
		Operation: op,
		Table:     table,
		EntityID:  entityID,
		Data:      data,
		CreatedAt: time.Now(),
	}

	if err := r.queue.Enqueue(ctx, item); err != nil {
		r.logger.Error("failed to enqueue sync item",
			"operation", op, "table", table, "entity_id", entityID, "error", err)
	}
}

// enqueueUpdate кладёт частичное обновление в очередь в формате {id, updates}
func (r *HybridRepository) enqueueUpdate(ctx context.Context, table models.SyncTable, id string, update interface{}) {
	updates, err := json.Marshal(update)
	if err != nil {
		r.logger.Error("failed to marshal update payload",
			"table", table, "entity_id", id, "error", err)
		return
	}

	r.enqueue(ctx, models.SyncOpUpdate, table, id, models.UpdatePayload{ID: id, Updates: updates})
}

// markSynced выставляет локальный bookkeeping флаг после успешной
// репликации. Ошибка не критична: флаг поправит следующий full sync.
func (r *HybridRepository) markSynced(ctx context.Context, projectID string) {
	if err := r.projects.MarkProjectSynced(ctx, projectID); err != nil {
		r.logger.Warn("failed to mark project synced",
			"project_id", projectID, "error", err)
	}
}
