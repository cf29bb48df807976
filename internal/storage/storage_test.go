package storage_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tiliavir/clocked/internal/storage"
)

func TestSaveAndLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "events.json")
	records := []json.RawMessage{
		json.RawMessage(`{"status":"in","_id":"2024-01-01T09:00:00Z","description":"work","tags":["acme"]}`),
		json.RawMessage(`{"_id":"2024-01-01T10:00:00Z"}`),
	}

	if err := storage.SaveSnapshot(path, records); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	loaded, err := storage.LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("records = %d, want 2", len(loaded))
	}
	if loaded[0].Status == nil || *loaded[0].Status != "in" {
		t.Errorf("status = %v", loaded[0].Status)
	}
	if loaded[1].Status != nil {
		t.Errorf("status-less record gained a status: %v", *loaded[1].Status)
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	if _, err := storage.LoadSnapshot(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestLoadSnapshotCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := storage.LoadSnapshot(path); err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}
}

func TestSaveSnapshotKeepsRecordsAsSent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	records := []json.RawMessage{
		json.RawMessage(`{"status":"out","id":"2017-03-01T16:00:00.250000Z","color":"blue"}`),
		json.RawMessage(`{"_id":"2017-03-01T17:00:00Z"}`),
	}
	if err := storage.SaveSnapshot(path, records); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, `"color": "blue"`) {
		t.Errorf("unknown field dropped:\n%s", content)
	}
	if strings.Count(content, `"_id"`) != 1 {
		t.Errorf("legacy record gained an _id key:\n%s", content)
	}
	if strings.Contains(content, "null") {
		t.Errorf("status-less record gained a null status:\n%s", content)
	}

	loaded, err := storage.LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if loaded[0].Key() != "2017-03-01T16:00:00.250000Z" {
		t.Errorf("legacy key = %q", loaded[0].Key())
	}
}
