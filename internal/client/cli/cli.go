package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/auth"
	"github.com/carlos0768/lexisync/internal/client/connectivity"
	"github.com/carlos0768/lexisync/internal/client/extract"
	"github.com/carlos0768/lexisync/internal/client/iocli"
	"github.com/carlos0768/lexisync/internal/client/repository"
	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/client/sync"
	"github.com/carlos0768/lexisync/internal/models"
)

// queueDrainer прогоняет очередь отложенных операций через сервер.
type queueDrainer interface {
	Process(ctx context.Context) (*sync.Result, error)
}

// reconciler выполняет полную сверку локальных данных с сервером.
type reconciler interface {
	ShouldSync(ctx context.Context, userID string) (bool, error)
	FullSync(ctx context.Context, ownerID string) error
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	remote      clientapi.ClientAPI
	online      connectivity.Checker
	hybrid      repository.Repository
	local       repository.Repository
	extractor   extract.Extractor // nil если scan-бэкенд не сконфигурирован
	queue       storage.QueueStorage
	metadata    storage.MetadataStorage
	processor   queueDrainer
	reconciler  reconciler
}

func New(
	io iocli.IO,
	authService auth.Service,
	remote clientapi.ClientAPI,
	online connectivity.Checker,
	hybrid, local repository.Repository,
	extractor extract.Extractor,
	queue storage.QueueStorage,
	metadata storage.MetadataStorage,
	processor *sync.QueueProcessor,
	rec *sync.Reconciler,
) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		remote:      remote,
		online:      online,
		hybrid:      hybrid,
		local:       local,
		extractor:   extractor,
		queue:       queue,
		metadata:    metadata,
		processor:   processor,
		reconciler:  rec,
	}
}

// currentSession возвращает сохранённую сессию или понятную ошибку
// для неавторизованного пользователя.
func (c *Cli) currentSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'lexisync login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// repoFor выбирает repository по тарифу текущей сессии:
// active получает hybrid (local + cloud), остальные — чисто локальный.
func (c *Cli) repoFor(session *storage.Session) repository.Repository {
	return repository.Select(models.SubscriptionTier(session.Tier), c.hybrid, c.local)
}

func PrintUsage() {
	fmt.Println("LexiSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lexisync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: lexisync-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                         Register new user")
	fmt.Println("  login                            Login to server")
	fmt.Println("  logout                           Logout and delete local session")
	fmt.Println("  status                           Show session and sync status")
	fmt.Println("  project add <title>              Create a vocabulary project")
	fmt.Println("  project list                     List your projects")
	fmt.Println("  project favorite <id>            Mark project as favorite")
	fmt.Println("  project unfavorite <id>          Remove favorite mark")
	fmt.Println("  project delete <id>              Delete project and all its words")
	fmt.Println("  word add <project-id>            Add a word interactively")
	fmt.Println("  word list <project-id>           List words in a project")
	fmt.Println("  word favorite <id>               Mark word as favorite")
	fmt.Println("  word delete <id>                 Delete a word")
	fmt.Println("  scan <project-id> <image-file>   Import words from a photo")
	fmt.Println("  share <project-id>               Generate a public share link")
	fmt.Println("  import <share-id>                Import a shared project")
	fmt.Println("  sync                             Synchronize with server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  lexisync register")
	fmt.Println("  lexisync login")
	fmt.Println("  lexisync project add \"TOEIC Unit 5\"")
	fmt.Println("  lexisync word add b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  lexisync scan b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 notebook.jpg")
	fmt.Println("  lexisync --server https://example.com sync")
}
