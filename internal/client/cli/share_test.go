package cli

import (
	"context"
	"testing"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runShare_Success(t *testing.T) {
	ctx := context.Background()

	remote := &clientapi.ClientAPIMock{
		GenerateShareIDFunc: func(ctx context.Context, projectID string) (string, error) {
			return "share-abc123", nil
		},
	}
	mockIO, output := testIO()

	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(true),
		remote:      remote,
	}

	err := cli.runShare(ctx, []string{"proj-1"})
	require.NoError(t, err)

	require.Len(t, remote.GenerateShareIDCalls(), 1)
	assert.Equal(t, "proj-1", remote.GenerateShareIDCalls()[0].ProjectID)
	assert.Contains(t, output(), "Share ID: share-abc123")
	assert.Contains(t, output(), "lexisync import share-abc123")
}

func TestCli_runShare_FreeTier(t *testing.T) {
	mockIO, _ := testIO()
	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(freeSession()),
	}

	err := cli.runShare(context.Background(), []string{"proj-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a plan with cloud sync")
}

func TestCli_runShare_Offline(t *testing.T) {
	mockIO, _ := testIO()
	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(false),
	}

	err := cli.runShare(context.Background(), []string{"proj-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestCli_runImport_Success(t *testing.T) {
	ctx := context.Background()

	remote := &clientapi.ClientAPIMock{
		ImportSharedProjectFunc: func(ctx context.Context, shareID string) (*models.Project, []*models.Word, error) {
			return &models.Project{ID: "proj-copy", Title: "TOEIC Unit 5"},
				[]*models.Word{{ID: "w-1"}, {ID: "w-2"}}, nil
		},
	}
	rec := &reconcilerStub{}
	mockIO, output := testIO()

	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(true),
		remote:      remote,
		reconciler:  rec,
	}

	err := cli.runImport(ctx, []string{"share-abc123"})
	require.NoError(t, err)

	require.Len(t, remote.ImportSharedProjectCalls(), 1)
	assert.Equal(t, "share-abc123", remote.ImportSharedProjectCalls()[0].ShareID)
	assert.Equal(t, 1, rec.syncCalls)

	out := output()
	assert.Contains(t, out, "Project imported")
	assert.Contains(t, out, "Title: TOEIC Unit 5")
	assert.Contains(t, out, "Words: 2")
}

// Неудавшаяся сверка после импорта не считается ошибкой команды:
// копия уже создана на сервере
func TestCli_runImport_SyncFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()

	remote := &clientapi.ClientAPIMock{
		ImportSharedProjectFunc: func(ctx context.Context, shareID string) (*models.Project, []*models.Word, error) {
			return &models.Project{ID: "proj-copy", Title: "TOEIC Unit 5"}, nil, nil
		},
	}
	rec := &reconcilerStub{syncErr: assert.AnError}
	mockIO, output := testIO()

	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(true),
		remote:      remote,
		reconciler:  rec,
	}

	err := cli.runImport(ctx, []string{"share-abc123"})
	require.NoError(t, err)
	assert.Contains(t, output(), "Warning: sync failed")
}

func TestCli_runImport_FreeTier(t *testing.T) {
	mockIO, _ := testIO()
	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(freeSession()),
	}

	err := cli.runImport(context.Background(), []string{"share-abc123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a plan with cloud sync")
}
