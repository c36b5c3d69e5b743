package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos0768/lexisync/internal/client/storage"
	"github.com/carlos0768/lexisync/internal/models"
)

func TestCreateWords_Batch(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	words := []*models.Word{
		{ProjectID: "proj-1", English: "perseverance", Japanese: "忍耐", Status: models.WordStatusNew},
		{ID: "fixed-id", ProjectID: "proj-1", English: "grit", Japanese: "根性", Status: models.WordStatusNew},
	}

	require.NoError(t, store.CreateWords(ctx, words))

	assert.NotEmpty(t, words[0].ID, "empty id must be minted")
	assert.Equal(t, "fixed-id", words[1].ID, "supplied id must be kept")

	got, err := store.GetWords(ctx, "proj-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetWord_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetWord(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrWordNotFound)
}

func TestGetWordsByProjects(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateWords(ctx, []*models.Word{
		{ProjectID: "proj-1", English: "a", Japanese: "あ"},
		{ProjectID: "proj-2", English: "b", Japanese: "い"},
		{ProjectID: "proj-3", English: "c", Japanese: "う"},
	}))

	words, err := store.GetWordsByProjects(ctx, []string{"proj-1", "proj-3"})

	require.NoError(t, err)
	assert.Len(t, words, 2)
	for _, w := range words {
		assert.NotEqual(t, "proj-2", w.ProjectID)
	}
}

func TestUpdateWord_OpaqueReviewPayload(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	word := &models.Word{ProjectID: "proj-1", English: "interval", Japanese: "間隔", Status: models.WordStatusNew}
	require.NoError(t, store.CreateWords(ctx, []*models.Word{word}))

	// Планировщик повторений пишет свой payload как есть
	review := json.RawMessage(`{"interval_days":3,"due":"2026-09-02T00:00:00Z"}`)
	status := models.WordStatusReviewing
	err := store.UpdateWord(ctx, word.ID, models.WordUpdate{Status: &status, Review: review})
	require.NoError(t, err)

	got, err := store.GetWord(ctx, word.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WordStatusReviewing, got.Status)
	assert.JSONEq(t, string(review), string(got.Review), "review payload must round-trip untouched")
	assert.Equal(t, "interval", got.English)
}

func TestUpdateWord_NotFound(t *testing.T) {
	store := createTestStorage(t)

	english := "ghost"
	err := store.UpdateWord(context.Background(), "missing", models.WordUpdate{English: &english})

	assert.ErrorIs(t, err, storage.ErrWordNotFound)
}

func TestDeleteWord(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	word := &models.Word{ProjectID: "proj-1", English: "fleeting", Japanese: "束の間の"}
	require.NoError(t, store.CreateWords(ctx, []*models.Word{word}))

	require.NoError(t, store.DeleteWord(ctx, word.ID))

	_, err := store.GetWord(ctx, word.ID)
	assert.ErrorIs(t, err, storage.ErrWordNotFound)
}

func TestDeleteWord_NotFound(t *testing.T) {
	store := createTestStorage(t)

	err := store.DeleteWord(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrWordNotFound)
}

func TestDeleteWordsByProject(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateWords(ctx, []*models.Word{
		{ProjectID: "proj-1", English: "a", Japanese: "あ"},
		{ProjectID: "proj-1", English: "b", Japanese: "い"},
		{ProjectID: "proj-2", English: "c", Japanese: "う"},
	}))

	require.NoError(t, store.DeleteWordsByProject(ctx, "proj-1"))

	gone, err := store.GetWords(ctx, "proj-1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := store.GetWords(ctx, "proj-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
