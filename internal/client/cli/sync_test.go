package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/carlos0768/lexisync/internal/client/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runSync_Success(t *testing.T) {
	ctx := context.Background()

	rec := &reconcilerStub{}
	mockIO, output := testIO()

	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(true),
		processor: drainerFunc(func(ctx context.Context) (*sync.Result, error) {
			return &sync.Result{Succeeded: 2, Failed: 1}, nil
		}),
		reconciler: rec,
	}

	err := cli.runSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.syncCalls)

	out := output()
	assert.Contains(t, out, "Pushed:  2 operation(s)")
	assert.Contains(t, out, "Failed:  1 operation(s)")
	assert.Contains(t, out, "Synchronization completed successfully")
}

// Офлайн-запуск не трогает очередь: retry counters остаются нетронутыми
func TestCli_runSync_Offline(t *testing.T) {
	ctx := context.Background()

	rec := &reconcilerStub{}
	mockIO, output := testIO()

	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(false),
		processor: drainerFunc(func(ctx context.Context) (*sync.Result, error) {
			t.Fatal("queue must not be processed while offline")
			return nil, nil
		}),
		reconciler: rec,
	}

	err := cli.runSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.syncCalls)
	assert.Contains(t, output(), "Server is unreachable")
}

func TestCli_runSync_FreeTier(t *testing.T) {
	ctx := context.Background()

	mockIO, _ := testIO()
	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(freeSession()),
	}

	err := cli.runSync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not include cloud sync")
}

func TestCli_runSync_QueueError(t *testing.T) {
	ctx := context.Background()

	mockIO, _ := testIO()
	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(true),
		processor: drainerFunc(func(ctx context.Context) (*sync.Result, error) {
			return nil, errors.New("queue storage corrupted")
		}),
		reconciler: &reconcilerStub{},
	}

	err := cli.runSync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process sync queue")
}

func TestCli_runSync_FullSyncError(t *testing.T) {
	ctx := context.Background()

	mockIO, _ := testIO()
	cli := &Cli{
		io:          mockIO,
		authService: authWithSession(activeSession()),
		online:      checkerOnline(true),
		processor: drainerFunc(func(ctx context.Context) (*sync.Result, error) {
			return &sync.Result{}, nil
		}),
		reconciler: &reconcilerStub{syncErr: errors.New("remote read failed")},
	}

	err := cli.runSync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synchronization failed")
}
