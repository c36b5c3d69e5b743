package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/connectivity"
	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

// FullSyncInterval максимальный возраст последней реконсилиации, после
// которого full sync считается просроченным. Реконсилиация стоит O(все
// данные), поэтому выполняется не чаще раза в час, но при смене аккаунта
// или первом запуске — всегда.
const FullSyncInterval = time.Hour

// ShouldRunFullSync решает, пора ли выполнять полную реконсилиацию.
// lastSync — unix millis последней успешной реконсилиации (0 если её не
// было), syncedUserID — для кого она выполнялась, now — текущие unix millis.
// Чистая функция.
func ShouldRunFullSync(lastSync int64, syncedUserID, userID string, now int64) bool {
	// Смена аккаунта всегда форсирует реконсилиацию
	if syncedUserID != userID {
		return true
	}

	if lastSync == 0 {
		return true
	}

	return now-lastSync >= FullSyncInterval.Milliseconds()
}

// Reconciler приводит локальное хранилище в согласие с сервером, когда
// расхождение могло выйти за пределы того, что чинит очередь: свежий логин,
// правки с другого устройства, апгрейд free→pro, впервые давший пользователю
// серверное хранилище.
type Reconciler struct {
	projects storage.ProjectStorage
	words    storage.WordStorage
	queue    storage.QueueStorage
	metadata storage.MetadataStorage
	remote   clientapi.ClientAPI
	online   connectivity.Checker
	logger   *slog.Logger

	// ownerLocks сериализует реконсилиации по владельцу: конкурентные
	// FullSync для одного owner недопустимы во время replace-фазы
	ownerLocks gosync.Map
}

// NewReconciler creates a full-sync reconciler
func NewReconciler(
	projects storage.ProjectStorage,
	words storage.WordStorage,
	queue storage.QueueStorage,
	metadata storage.MetadataStorage,
	remote clientapi.ClientAPI,
	online connectivity.Checker,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		projects: projects,
		words:    words,
		queue:    queue,
		metadata: metadata,
		remote:   remote,
		online:   online,
		logger:   logger,
	}
}

// ShouldSync читает sync-метаданные и решает, нужна ли реконсилиация
// для userID прямо сейчас
func (r *Reconciler) ShouldSync(ctx context.Context, userID string) (bool, error) {
	lastSync, syncedUserID, err := r.metadata.GetLastSync(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get sync metadata: %w", err)
	}

	return ShouldRunFullSync(lastSync, syncedUserID, userID, time.Now().UnixMilli()), nil
}

// FullSync выполняет полную реконсилиацию для владельца.
//
// Порядок фаз:
//  1. push: локальные проекты, неизвестные серверу, уходят на сервер
//     с сохранением id — это защищает данные, созданные офлайн или до
//     появления у пользователя серверного хранилища;
//  2. safety guard: пустой сервер при непустой локальной базе трактуется
//     как подозрение на сбой чтения, а не как "данных нет" — деструктивная
//     замена пропускается;
//  3. replace: локальное состояние владельца атомарно заменяется серверным
//     (после push-фазы сервер — победитель слияния);
//  4. очередь очищается: выполненная реконсилиация перекрывает любые
//     отложенные дельты.
//
// Любая ошибка пробрасывается вызывающему как есть: частичная
// реконсилиация хуже явного отказа, который можно повторить.
func (r *Reconciler) FullSync(ctx context.Context, ownerID string) error {
	lock := r.lockFor(ownerID)
	lock.Lock()
	defer lock.Unlock()

	// Реконсилиация по определению требует сети
	if !r.online.Online(ctx) {
		r.logger.Info("skipping full sync: offline", "owner_id", ownerID)
		return nil
	}

	r.logger.Info("starting full sync", "owner_id", ownerID)

	localBefore, err := r.projects.GetProjects(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to read local projects: %w", err)
	}

	remoteProjects, err := r.remote.GetProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to read remote projects: %w", err)
	}

	remoteIDs := make(map[string]bool, len(remoteProjects))
	for _, p := range remoteProjects {
		remoteIDs[p.ID] = true
	}

	// Push-фаза: локальные проекты, которых нет на сервере
	pushed := 0
	for _, project := range localBefore {
		if remoteIDs[project.ID] {
			continue
		}

		if err := r.pushProject(ctx, project); err != nil {
			return err
		}
		pushed++
	}

	// Перечитываем сервер, чтобы только что отправленные проекты
	// попали в реконсилированный набор
	merged, err := r.remote.GetProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-read remote projects: %w", err)
	}

	// Safety guard: неожиданно пустой сервер при непустой локальной базе.
	// Не стираем локальные данные из-за возможного transient сбоя чтения.
	if len(merged) == 0 && len(localBefore) > 0 {
		r.logger.Warn("remote unexpectedly empty, skipping destructive replace",
			"owner_id", ownerID, "local_projects", len(localBefore))
		return r.saveMetadata(ctx, ownerID)
	}

	// Слова реконсилированного набора забираются одним батчевым вызовом,
	// не по запросу на проект
	var remoteWords []*models.Word
	if len(merged) > 0 {
		mergedIDs := make([]string, 0, len(merged))
		for _, p := range merged {
			p.IsSynced = true
			mergedIDs = append(mergedIDs, p.ID)
		}

		remoteWords, err = r.remote.GetWordsByProjects(ctx, mergedIDs)
		if err != nil {
			return fmt.Errorf("failed to read remote words: %w", err)
		}
	}

	// Replace-фаза: старые локальные проекты и их слова уходят, серверный
	// набор встаёт на их место одной транзакцией
	staleIDs := make([]string, 0, len(localBefore))
	for _, p := range localBefore {
		staleIDs = append(staleIDs, p.ID)
	}

	if err := r.projects.ReplaceOwnerData(ctx, ownerID, merged, remoteWords, staleIDs); err != nil {
		return fmt.Errorf("failed to replace local data: %w", err)
	}

	// Отложенные дельты больше не актуальны
	if err := r.queue.ClearQueue(ctx); err != nil {
		return fmt.Errorf("failed to clear sync queue: %w", err)
	}

	r.logger.Info("full sync completed",
		"owner_id", ownerID,
		"pushed", pushed,
		"projects", len(merged),
		"words", len(remoteWords))

	return r.saveMetadata(ctx, ownerID)
}

// pushProject отправляет на сервер локальный проект вместе со словами,
// сохраняя id
func (r *Reconciler) pushProject(ctx context.Context, project *models.Project) error {
	if err := r.remote.CreateProjectWithID(ctx, project); err != nil && !errors.Is(err, clientapi.ErrAlreadyExists) {
		return fmt.Errorf("failed to push project %s: %w", project.ID, err)
	}

	words, err := r.words.GetWords(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("failed to read local words of %s: %w", project.ID, err)
	}

	if len(words) > 0 {
		if err := r.remote.CreateWordsWithIDs(ctx, project.ID, words); err != nil && !errors.Is(err, clientapi.ErrAlreadyExists) {
			return fmt.Errorf("failed to push words of %s: %w", project.ID, err)
		}
	}

	return nil
}

// saveMetadata фиксирует момент и владельца реконсилиации
func (r *Reconciler) saveMetadata(ctx context.Context, ownerID string) error {
	if err := r.metadata.SaveLastSync(ctx, time.Now().UnixMilli(), ownerID); err != nil {
		return fmt.Errorf("failed to save sync metadata: %w", err)
	}
	return nil
}

// lockFor возвращает mutex владельца
func (r *Reconciler) lockFor(ownerID string) *gosync.Mutex {
	lock, _ := r.ownerLocks.LoadOrStore(ownerID, &gosync.Mutex{})
	return lock.(*gosync.Mutex)
}
