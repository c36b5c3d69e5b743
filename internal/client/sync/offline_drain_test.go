package sync

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/connectivity"
	"github.com/carlos0768/lexisync/internal/client/repository"
	"github.com/carlos0768/lexisync/internal/client/storage/boltdb"
	"github.com/carlos0768/lexisync/internal/models"
)

// Сквозной offline-сценарий поверх настоящего bolt-хранилища:
// записи в offline ложатся в durable очередь, Process доносит их
// до сервера с теми же id и опустошает очередь.
func TestProcess_DrainsOfflineMutations(t *testing.T) {
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	offline := &connectivity.CheckerMock{
		OnlineFunc: func(ctx context.Context) bool { return false },
	}
	// В offline сервер не должен быть тронут вообще
	unreachable := &clientapi.ClientAPIMock{
		CreateProjectWithIDFunc: func(ctx context.Context, p *models.Project) error {
			t.Fatal("remote must not be called while offline")
			return nil
		},
		CreateWordsWithIDsFunc: func(ctx context.Context, projectID string, words []*models.Word) error {
			t.Fatal("remote must not be called while offline")
			return nil
		},
	}

	hybrid := repository.NewHybridRepository(store, store, store, unreachable, offline, testLogger())

	project, err := hybrid.CreateProject(ctx, "user-1", "Business English")
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)

	words, err := hybrid.CreateWords(ctx, project.ID, []models.WordEntry{
		{English: "ledger", Japanese: "台帳"},
		{English: "invoice", Japanese: "請求書"},
	})
	require.NoError(t, err)
	require.Len(t, words, 2)

	pending, err := store.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending, "project create and words create must be queued")

	// Сеть вернулась: прогоняем очередь против сервера
	var remoteProject *models.Project
	var remoteWords []*models.Word
	reachable := &clientapi.ClientAPIMock{
		CreateProjectWithIDFunc: func(ctx context.Context, p *models.Project) error {
			remoteProject = p
			return nil
		},
		CreateWordsWithIDsFunc: func(ctx context.Context, projectID string, ws []*models.Word) error {
			remoteWords = ws
			return nil
		},
	}

	processor := NewQueueProcessor(store, reachable, testLogger())
	result, err := processor.Process(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)

	// Сервер получил те же id, что живут в локальной копии
	require.NotNil(t, remoteProject)
	assert.Equal(t, project.ID, remoteProject.ID)
	assert.Equal(t, "Business English", remoteProject.Title)

	require.Len(t, remoteWords, 2)
	assert.Equal(t, words[0].ID, remoteWords[0].ID)
	assert.Equal(t, words[1].ID, remoteWords[1].ID)

	pending, err = store.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending, "drained queue must be empty")
}
