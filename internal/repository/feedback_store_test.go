package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clearlabel/clearlabel/internal/models"
	"github.com/clearlabel/clearlabel/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []models.FeedbackEntry {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []models.FeedbackEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	return entries
}

func TestFileFeedbackStore_Append(t *testing.T) {
	log := logger.New("error")
	ctx := context.Background()

	t.Run("creates file on first append", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feedbacks.json")
		store := NewFileFeedbackStore(path, log)

		entry := models.FeedbackEntry{
			ID:         "f-1",
			ProductKey: "ors",
			Name:       "anonymous",
			Comment:    "easy to prepare",
			Timestamp:  time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		}
		require.NoError(t, store.Append(ctx, entry))

		entries := readEntries(t, path)
		require.Len(t, entries, 1)
		assert.Equal(t, entry, entries[0])
	})

	t.Run("second append preserves the first entry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feedbacks.json")
		store := NewFileFeedbackStore(path, log)

		first := models.FeedbackEntry{ID: "f-1", ProductKey: "ors", Name: "ana", Comment: "good"}
		second := models.FeedbackEntry{ID: "f-2", ProductKey: "zinc", Name: "ben", Comment: "bitter"}
		require.NoError(t, store.Append(ctx, first))
		require.NoError(t, store.Append(ctx, second))

		entries := readEntries(t, path)
		require.Len(t, entries, 2)
		assert.Equal(t, first, entries[0])
		assert.Equal(t, second, entries[1])
	})

	t.Run("corrupt file is treated as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feedbacks.json")
		require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

		store := NewFileFeedbackStore(path, log)
		require.NoError(t, store.Append(ctx, models.FeedbackEntry{ID: "f-1", ProductKey: "ors"}))

		entries := readEntries(t, path)
		require.Len(t, entries, 1)
		assert.Equal(t, "f-1", entries[0].ID)
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "feedbacks.json")
		store := NewFileFeedbackStore(path, log)

		require.NoError(t, store.Append(ctx, models.FeedbackEntry{ID: "f-1"}))
		assert.Len(t, readEntries(t, path), 1)
	})
}
