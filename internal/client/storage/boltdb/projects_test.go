package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

func TestCreateProject_MintsID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	project := &models.Project{
		OwnerID:   "user-1",
		Title:     "TOEIC 頻出単語",
		CreatedAt: time.Now(),
	}

	require.NoError(t, store.CreateProject(ctx, project))
	assert.NotEmpty(t, project.ID, "storage must mint a UUID when id is empty")

	got, err := store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "TOEIC 頻出単語", got.Title)
	assert.Equal(t, "user-1", got.OwnerID)
}

func TestCreateProject_KeepsSuppliedID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	project := &models.Project{
		ID:      "remote-id-1",
		OwnerID: "user-1",
		Title:   "Imported",
	}

	require.NoError(t, store.CreateProject(ctx, project))

	got, err := store.GetProject(ctx, "remote-id-1")
	require.NoError(t, err)
	assert.Equal(t, "remote-id-1", got.ID)
}

func TestGetProject_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetProject(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrProjectNotFound)
}

func TestGetProjects_FiltersByOwner(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateProject(ctx, &models.Project{OwnerID: "user-1", Title: "A"}))
	require.NoError(t, store.CreateProject(ctx, &models.Project{OwnerID: "user-1", Title: "B"}))
	require.NoError(t, store.CreateProject(ctx, &models.Project{OwnerID: "user-2", Title: "C"}))

	projects, err := store.GetProjects(ctx, "user-1")

	require.NoError(t, err)
	assert.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, "user-1", p.OwnerID)
	}
}

func TestUpdateProject_PartialUpdate(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	project := &models.Project{OwnerID: "user-1", Title: "Old title"}
	require.NoError(t, store.CreateProject(ctx, project))

	favorite := true
	err := store.UpdateProject(ctx, project.ID, models.ProjectUpdate{IsFavorite: &favorite})
	require.NoError(t, err)

	got, err := store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)
	assert.Equal(t, "Old title", got.Title, "untouched fields must survive the update")
}

func TestUpdateProject_NotFound(t *testing.T) {
	store := createTestStorage(t)

	title := "New"
	err := store.UpdateProject(context.Background(), "missing", models.ProjectUpdate{Title: &title})

	assert.ErrorIs(t, err, storage.ErrProjectNotFound)
}

func TestDeleteProject_CascadesToWords(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	project := &models.Project{OwnerID: "user-1", Title: "Deck"}
	require.NoError(t, store.CreateProject(ctx, project))

	other := &models.Project{OwnerID: "user-1", Title: "Other"}
	require.NoError(t, store.CreateProject(ctx, other))

	require.NoError(t, store.CreateWords(ctx, []*models.Word{
		{ProjectID: project.ID, English: "doomed", Japanese: "運の尽きた"},
		{ProjectID: other.ID, English: "survivor", Japanese: "生存者"},
	}))

	require.NoError(t, store.DeleteProject(ctx, project.ID))

	_, err := store.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, storage.ErrProjectNotFound)

	orphans, err := store.GetWords(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "words must not survive their project")

	kept, err := store.GetWords(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "cascade must not touch other projects")
}

func TestDeleteProject_NotFound(t *testing.T) {
	store := createTestStorage(t)

	err := store.DeleteProject(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrProjectNotFound)
}

func TestGetUnsyncedProjects(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	synced := &models.Project{OwnerID: "user-1", Title: "Synced", IsSynced: true}
	pending := &models.Project{OwnerID: "user-1", Title: "Pending"}
	require.NoError(t, store.CreateProject(ctx, synced))
	require.NoError(t, store.CreateProject(ctx, pending))

	projects, err := store.GetUnsyncedProjects(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, pending.ID, projects[0].ID)
}

func TestMarkProjectSynced(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	project := &models.Project{OwnerID: "user-1", Title: "Deck"}
	require.NoError(t, store.CreateProject(ctx, project))

	require.NoError(t, store.MarkProjectSynced(ctx, project.ID))

	got, err := store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSynced)
}

func TestReplaceOwnerData(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Локальное состояние до реконсилиации
	stale := &models.Project{OwnerID: "user-1", Title: "Stale"}
	require.NoError(t, store.CreateProject(ctx, stale))
	require.NoError(t, store.CreateWords(ctx, []*models.Word{
		{ProjectID: stale.ID, English: "obsolete", Japanese: "廃れた"},
	}))

	// Чужие данные не должны пострадать
	foreign := &models.Project{OwnerID: "user-2", Title: "Foreign"}
	require.NoError(t, store.CreateProject(ctx, foreign))
	require.NoError(t, store.CreateWords(ctx, []*models.Word{
		{ProjectID: foreign.ID, English: "untouched", Japanese: "手つかずの"},
	}))

	fresh := &models.Project{ID: "remote-1", OwnerID: "user-1", Title: "Fresh", IsSynced: true}
	freshWord := &models.Word{ID: "word-1", ProjectID: "remote-1", English: "fresh", Japanese: "新しい"}

	err := store.ReplaceOwnerData(ctx, "user-1",
		[]*models.Project{fresh}, []*models.Word{freshWord}, []string{stale.ID})
	require.NoError(t, err)

	projects, err := store.GetProjects(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "remote-1", projects[0].ID)

	staleWords, err := store.GetWords(ctx, stale.ID)
	require.NoError(t, err)
	assert.Empty(t, staleWords, "stale words must be purged")

	words, err := store.GetWords(ctx, "remote-1")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "word-1", words[0].ID)

	foreignProjects, err := store.GetProjects(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, foreignProjects, 1, "other owners must be untouched")

	foreignWords, err := store.GetWords(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Len(t, foreignWords, 1)
}

func TestReplaceOwnerData_EmptySet(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	project := &models.Project{OwnerID: "user-1", Title: "Deck"}
	require.NoError(t, store.CreateProject(ctx, project))

	err := store.ReplaceOwnerData(ctx, "user-1", nil, nil, []string{project.ID})
	require.NoError(t, err)

	projects, err := store.GetProjects(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, projects)
}
