package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m3rciful/shiftbot/roster"
)

func tempStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	return NewFileStore(path), path
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, _ := tempStore(t)
	ctx := context.Background()

	doc := roster.NewDocument()
	doc.Active = true
	doc.List = []string{"Пост 1", "Пост 2"}
	doc.SetStatus(1, roster.StatusReady)
	doc.MarkSubmitted(100)
	doc.AdminState = roster.WorkflowDelete

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Equal(doc) {
		t.Fatalf("loaded %+v; want %+v", loaded, doc)
	}
}

func TestFileStoreHealsMissingFile(t *testing.T) {
	s, path := tempStore(t)

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !doc.Equal(roster.NewDocument()) {
		t.Fatalf("expected default document, got %+v", doc)
	}

	// The default must have been persisted so the next reader finds it.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("healed file missing: %v", err)
	}
	var onDisk roster.Document
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("healed file corrupt: %v", err)
	}
}

func TestFileStoreHealsCorruptFile(t *testing.T) {
	s, path := tempStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !doc.Equal(roster.NewDocument()) {
		t.Fatalf("expected default document, got %+v", doc)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read healed file: %v", err)
	}
	if strings.Contains(string(data), "not json") {
		t.Fatal("corrupt content survived heal")
	}
}

func TestFileStoreNormalizesPartialDocument(t *testing.T) {
	s, path := tempStore(t)
	if err := os.WriteFile(path, []byte(`{"active":true}`), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !doc.Active {
		t.Fatal("active flag lost")
	}
	if doc.List == nil || doc.Statuses == nil || doc.SubmittedUsers == nil {
		t.Fatalf("collections not normalized: %+v", doc)
	}
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	s, path := tempStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, roster.NewDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(path) {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected directory contents: %v", names)
	}
}

func TestFileStoreLegacyLayout(t *testing.T) {
	// Field names follow the pre-existing data.json schema.
	s, path := tempStore(t)
	ctx := context.Background()

	doc := roster.NewDocument()
	doc.Active = true
	doc.List = []string{"A"}
	doc.SetStatus(1, roster.StatusOff)
	doc.MarkSubmitted(7)
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, key := range []string{`"active"`, `"list"`, `"statuses"`, `"submitted_users"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("serialized document missing key %s: %s", key, data)
		}
	}
}
