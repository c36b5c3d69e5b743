package cli

import (
	"context"
	"testing"

	"github.com/carlos0768/lexisync/internal/client/repository"
	"github.com/carlos0768/lexisync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordRepo() *repository.RepositoryMock {
	return &repository.RepositoryMock{
		GetProjectFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return &models.Project{ID: id, Title: "TOEIC Unit 5"}, nil
		},
		CreateWordsFunc: func(ctx context.Context, projectID string, entries []models.WordEntry) ([]*models.Word, error) {
			words := make([]*models.Word, 0, len(entries))
			for i, e := range entries {
				words = append(words, &models.Word{
					ID:        string(rune('a' + i)),
					ProjectID: projectID,
					English:   e.English,
					Japanese:  e.Japanese,
					Status:    models.WordStatusNew,
				})
			}
			return words, nil
		},
	}
}

func TestCli_runWord_Add(t *testing.T) {
	ctx := context.Background()

	local := wordRepo()
	mockIO, output := testIO("apple", "りんご", "I ate an apple.")

	cli := &Cli{io: mockIO, authService: authWithSession(freeSession()), local: local}

	err := cli.runWord(ctx, []string{"add", "proj-1"})
	require.NoError(t, err)

	require.Len(t, local.CreateWordsCalls(), 1)
	call := local.CreateWordsCalls()[0]
	assert.Equal(t, "proj-1", call.ProjectID)
	require.Len(t, call.Entries, 1)
	assert.Equal(t, "apple", call.Entries[0].English)
	assert.Equal(t, "りんご", call.Entries[0].Japanese)
	assert.Equal(t, "I ate an apple.", call.Entries[0].ExampleSentence)

	assert.Contains(t, output(), "Word added")
}

func TestCli_runWord_Add_EmptyEnglish(t *testing.T) {
	ctx := context.Background()

	local := wordRepo()
	mockIO, _ := testIO("", "りんご")

	cli := &Cli{io: mockIO, authService: authWithSession(freeSession()), local: local}

	err := cli.runWord(ctx, []string{"add", "proj-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "english cannot be empty")
	assert.Empty(t, local.CreateWordsCalls())
}

func TestCli_runWord_List(t *testing.T) {
	ctx := context.Background()

	local := wordRepo()
	local.GetWordsFunc = func(ctx context.Context, projectID string) ([]*models.Word, error) {
		return []*models.Word{
			{ID: "w-1", English: "apple", Japanese: "りんご", Status: models.WordStatusNew, IsFavorite: true, ExampleSentence: "I ate an apple."},
			{ID: "w-2", English: "run", Japanese: "走る", Status: models.WordStatusMastered},
		}, nil
	}
	mockIO, output := testIO()

	cli := &Cli{io: mockIO, authService: authWithSession(freeSession()), local: local}

	err := cli.runWord(ctx, []string{"list", "proj-1"})
	require.NoError(t, err)

	out := output()
	assert.Contains(t, out, "=== TOEIC Unit 5 ===")
	assert.Contains(t, out, "Found 2 word(s)")
	assert.Contains(t, out, "★ w-1  apple — りんご  [new]")
	assert.Contains(t, out, "I ate an apple.")
	assert.Contains(t, out, "w-2  run — 走る  [mastered]")
}

func TestCli_runWord_List_Empty(t *testing.T) {
	ctx := context.Background()

	local := wordRepo()
	local.GetWordsFunc = func(ctx context.Context, projectID string) ([]*models.Word, error) {
		return nil, nil
	}
	mockIO, output := testIO()

	cli := &Cli{io: mockIO, authService: authWithSession(freeSession()), local: local}

	err := cli.runWord(ctx, []string{"list", "proj-1"})
	require.NoError(t, err)
	assert.Contains(t, output(), "No words yet")
}

func TestCli_runWord_Favorite(t *testing.T) {
	ctx := context.Background()

	local := &repository.RepositoryMock{
		UpdateWordFunc: func(ctx context.Context, id string, update models.WordUpdate) error {
			return nil
		},
	}
	mockIO, _ := testIO()

	cli := &Cli{io: mockIO, authService: authWithSession(freeSession()), local: local}

	err := cli.runWord(ctx, []string{"favorite", "w-1"})
	require.NoError(t, err)

	require.Len(t, local.UpdateWordCalls(), 1)
	call := local.UpdateWordCalls()[0]
	assert.Equal(t, "w-1", call.Id)
	require.NotNil(t, call.Update.IsFavorite)
	assert.True(t, *call.Update.IsFavorite)
}

func TestCli_runWord_Delete(t *testing.T) {
	ctx := context.Background()

	local := &repository.RepositoryMock{
		DeleteWordFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	mockIO, output := testIO()

	cli := &Cli{io: mockIO, authService: authWithSession(freeSession()), local: local}

	err := cli.runWord(ctx, []string{"delete", "w-1"})
	require.NoError(t, err)
	assert.Len(t, local.DeleteWordCalls(), 1)
	assert.Contains(t, output(), "Word deleted")
}

func TestCli_runWord_MissingID(t *testing.T) {
	mockIO, _ := testIO()
	cli := &Cli{io: mockIO}

	err := cli.runWord(context.Background(), []string{"delete"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing word id")
}
