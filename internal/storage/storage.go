// Package storage keeps raw event snapshots on disk so reports can be
// rendered without contacting the time service.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/clocked/internal/model"
)

// BaseDir returns the root data directory (~/.clocked).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".clocked"), nil
}

// LoadSnapshot reads a JSON array of raw event records.
func LoadSnapshot(path string) ([]model.RawEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var raw []model.RawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("corrupt JSON in %s: %w", path, err)
	}
	return raw, nil
}

// SaveSnapshot atomically writes records to path as a JSON array. Each record
// keeps its own fields; only whitespace is normalized.
func SaveSnapshot(path string, records []json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
