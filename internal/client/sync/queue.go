package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

const (
	// MaxRetry максимум попыток применить один элемент очереди.
	// Исчерпавший лимит элемент удаляется как permanent failure, чтобы
	// poison-pill мутация не блокировала очередь навсегда.
	MaxRetry = 3
)

// ErrUnprocessable помечает элемент очереди, который невозможно применить
// в принципе (неизвестная комбинация таблицы и операции, битый payload).
// Это класс programming error: такой элемент удаляется без ретраев.
var ErrUnprocessable = errors.New("unprocessable queue item")

// Result итог одного прохода по очереди
type Result struct {
	Succeeded int // применено и удалено из очереди
	Failed    int // ошибки этого прохода, включая permanent failures
}

// QueueProcessor drains the durable sync queue against the remote store.
type QueueProcessor struct {
	queue  storage.QueueStorage
	remote clientapi.ClientAPI
	logger *slog.Logger
}

// NewQueueProcessor creates a new queue processor
func NewQueueProcessor(queue storage.QueueStorage, remote clientapi.ClientAPI, logger *slog.Logger) *QueueProcessor {
	return &QueueProcessor{
		queue:  queue,
		remote: remote,
		logger: logger,
	}
}

// Process обходит все элементы очереди в порядке вставки.
// Элементы обрабатываются последовательно: никаких параллельных запросов,
// чтобы не переупорядочить мутации одной сущности. Ошибка одного элемента
// не прерывает проход — каждый элемент изолирован.
func (p *QueueProcessor) Process(ctx context.Context) (*Result, error) {
	items, err := p.queue.ListQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}

	result := &Result{}

	for _, item := range items {
		// Исчерпанный лимит ретраев: удаляем как permanent failure
		if item.RetryCount >= MaxRetry {
			p.logger.Error("dropping sync item after max retries",
				"item_id", item.ID,
				"operation", item.Operation,
				"table", item.Table,
				"entity_id", item.EntityID,
				"retry_count", item.RetryCount)
			p.remove(ctx, item.ID)
			result.Failed++
			continue
		}

		if err := p.dispatch(ctx, item); err != nil {
			if errors.Is(err, ErrUnprocessable) {
				// Такой элемент не станет применимым от повторов
				p.logger.Error("dropping unprocessable sync item",
					"item_id", item.ID,
					"operation", item.Operation,
					"table", item.Table,
					"error", err)
				p.remove(ctx, item.ID)
				result.Failed++
				continue
			}

			p.logger.Warn("sync item failed, will retry",
				"item_id", item.ID,
				"operation", item.Operation,
				"table", item.Table,
				"entity_id", item.EntityID,
				"retry_count", item.RetryCount,
				"error", err)

			if err := p.queue.IncrementRetry(ctx, item.ID); err != nil {
				p.logger.Error("failed to increment retry count",
					"item_id", item.ID, "error", err)
			}
			result.Failed++
			continue
		}

		// Элемент удаляется только после успешного применения
		p.remove(ctx, item.ID)
		result.Succeeded++
	}

	return result, nil
}

// dispatch применяет один элемент к серверу по комбинации (table, operation).
// create всегда использует id-preserving вариант, иначе локальная и серверная
// копии разойдутся.
func (p *QueueProcessor) dispatch(ctx context.Context, item *models.SyncQueueItem) error {
	switch {
	case item.Table == models.SyncTableProjects && item.Operation == models.SyncOpCreate:
		project := &models.Project{}
		if err := json.Unmarshal(item.Data, project); err != nil {
			return fmt.Errorf("%w: bad project payload: %w", ErrUnprocessable, err)
		}
		// Проект мог уже попасть на сервер через push-фазу full sync
		if err := p.remote.CreateProjectWithID(ctx, project); err != nil && !errors.Is(err, clientapi.ErrAlreadyExists) {
			return err
		}
		return nil

	case item.Table == models.SyncTableProjects && item.Operation == models.SyncOpUpdate:
		var payload models.UpdatePayload
		if err := json.Unmarshal(item.Data, &payload); err != nil {
			return fmt.Errorf("%w: bad update payload: %w", ErrUnprocessable, err)
		}
		var update models.ProjectUpdate
		if err := json.Unmarshal(payload.Updates, &update); err != nil {
			return fmt.Errorf("%w: bad project update: %w", ErrUnprocessable, err)
		}
		return p.remote.UpdateProject(ctx, payload.ID, update)

	case item.Table == models.SyncTableProjects && item.Operation == models.SyncOpDelete:
		var payload models.DeletePayload
		if err := json.Unmarshal(item.Data, &payload); err != nil {
			return fmt.Errorf("%w: bad delete payload: %w", ErrUnprocessable, err)
		}
		// Уже удалённый проект — это и есть нужное состояние
		if err := p.remote.DeleteProject(ctx, payload.ID); err != nil && !errors.Is(err, clientapi.ErrNotFound) {
			return err
		}
		return nil

	case item.Table == models.SyncTableWords && item.Operation == models.SyncOpCreate:
		var payload models.CreateWordsPayload
		if err := json.Unmarshal(item.Data, &payload); err != nil {
			return fmt.Errorf("%w: bad words payload: %w", ErrUnprocessable, err)
		}
		if err := p.remote.CreateWordsWithIDs(ctx, payload.ProjectID, payload.Words); err != nil && !errors.Is(err, clientapi.ErrAlreadyExists) {
			return err
		}
		return nil

	case item.Table == models.SyncTableWords && item.Operation == models.SyncOpUpdate:
		var payload models.UpdatePayload
		if err := json.Unmarshal(item.Data, &payload); err != nil {
			return fmt.Errorf("%w: bad update payload: %w", ErrUnprocessable, err)
		}
		var update models.WordUpdate
		if err := json.Unmarshal(payload.Updates, &update); err != nil {
			return fmt.Errorf("%w: bad word update: %w", ErrUnprocessable, err)
		}
		return p.remote.UpdateWord(ctx, payload.ID, update)

	case item.Table == models.SyncTableWords && item.Operation == models.SyncOpDelete:
		var payload models.DeletePayload
		if err := json.Unmarshal(item.Data, &payload); err != nil {
			return fmt.Errorf("%w: bad delete payload: %w", ErrUnprocessable, err)
		}
		if payload.ProjectID != "" {
			if err := p.remote.DeleteWordsByProject(ctx, payload.ProjectID); err != nil && !errors.Is(err, clientapi.ErrNotFound) {
				return err
			}
			return nil
		}
		if err := p.remote.DeleteWord(ctx, payload.ID); err != nil && !errors.Is(err, clientapi.ErrNotFound) {
			return err
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown combination %s/%s", ErrUnprocessable, item.Table, item.Operation)
	}
}

// remove удаляет элемент очереди; ошибка удаления только логируется,
// элемент будет обработан повторно на следующем проходе
func (p *QueueProcessor) remove(ctx context.Context, id uint64) {
	if err := p.queue.RemoveQueueItem(ctx, id); err != nil {
		p.logger.Error("failed to remove queue item", "item_id", id, "error", err)
	}
}
