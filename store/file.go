package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/m3rciful/shiftbot/core/logger"
	"github.com/m3rciful/shiftbot/roster"
	"log/slog"
)

// FileStore keeps the roster document in a single JSON file, matching the
// legacy data.json layout. Writes go through a temp file plus rename so a
// reader never observes a torn document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. A missing, unreadable, or corrupt file
// is replaced with a persisted fresh default; the caller always receives a
// usable document.
func (s *FileStore) Load(ctx context.Context) (*roster.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.heal(ctx, err)
	}

	doc := roster.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return s.heal(ctx, err)
	}
	doc.Normalize()
	return doc, nil
}

// heal substitutes and persists a default document after a failed read.
func (s *FileStore) heal(ctx context.Context, cause error) (*roster.Document, error) {
	if !os.IsNotExist(cause) {
		logger.Warn(ctx, "store", "load.heal",
			slog.String("driver", "file"),
			slog.String("path", s.path),
			slog.String("err", cause.Error()),
		)
	}
	doc := roster.NewDocument()
	if err := s.write(doc); err != nil {
		logger.Error(ctx, "store", "heal.save",
			slog.String("driver", "file"),
			slog.String("path", s.path),
			slog.String("err", err.Error()),
		)
	}
	return doc, nil
}

// Save durably persists the document, replacing any prior version.
func (s *FileStore) Save(ctx context.Context, d *roster.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(d); err != nil {
		logger.Error(ctx, "store", "save",
			slog.String("driver", "file"),
			slog.String("path", s.path),
			slog.String("err", err.Error()),
		)
		return err
	}
	return nil
}

func (s *FileStore) write(d *roster.Document) error {
	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace document file: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
