// Package storage provides SettingsStore adapters and their factory
package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"weathertext.app/pkg/errors"
)

// FileSettingsStore keeps the settings blob in a single JSON file
type FileSettingsStore struct {
	path string
	mu   sync.Mutex
}

func NewFileSettingsStore(path string) (*FileSettingsStore, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("settings file path cannot be empty", nil)
	}
	return &FileSettingsStore{path: path}, nil
}

// Load returns the file contents, or nil when the file does not exist
func (s *FileSettingsStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewStorageError("failed to read settings file", err)
	}
	return data, nil
}

// Save replaces the file through a temporary file in the same directory
func (s *FileSettingsStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewStorageError("failed to create settings directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return errors.NewStorageError("failed to create temporary settings file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.NewStorageError("failed to write settings file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.NewStorageError("failed to write settings file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.NewStorageError("failed to replace settings file", err)
	}

	return nil
}

// GetStoreName returns the name of this store
func (s *FileSettingsStore) GetStoreName() string {
	return "file"
}

// Path returns the location of the settings file
func (s *FileSettingsStore) Path() string {
	return s.path
}
