package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/clearlabel/clearlabel/internal/models"
)

// FeedbackStore persists consumer feedback. Entries are append-only; the
// running application never reads them back.
type FeedbackStore interface {
	Append(ctx context.Context, entry models.FeedbackEntry) error
}

// FileFeedbackStore appends entries to a single JSON array file using
// read-modify-write. The mutex serializes writers within this process;
// separate processes sharing the file still race (last writer wins).
type FileFeedbackStore struct {
	path string
	mu   sync.Mutex
	log  *slog.Logger
}

// NewFileFeedbackStore creates a store writing to path. The file is created
// on first append.
func NewFileFeedbackStore(path string, log *slog.Logger) *FileFeedbackStore {
	return &FileFeedbackStore{
		path: path,
		log:  log,
	}
}

// Append loads the existing array, appends entry, and rewrites the file.
// A missing or unparsable file is treated as an empty array, so a corrupt
// feedback file is overwritten rather than blocking new submissions.
func (s *FileFeedbackStore) Append(ctx context.Context, entry models.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []models.FeedbackEntry
	if data, err := os.ReadFile(s.path); err == nil {
		if err := json.Unmarshal(data, &entries); err != nil {
			s.log.Warn("feedback file is not a valid JSON array, starting fresh", "path", s.path, "error", err)
			entries = nil
		}
	}

	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feedback entries: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create feedback directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write feedback file: %w", err)
	}

	return nil
}
